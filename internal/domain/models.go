package domain

import "slices"

// CategoryAll is the category filter value that matches every document
const CategoryAll = "all"

// DefaultPageSize is the page size used when none is configured
const DefaultPageSize = 20

// PageSizes lists the page sizes the API accepts from the UI
var PageSizes = []int{10, 20, 50, 100}

// ValidPageSize reports whether n is one of PageSizes
func ValidPageSize(n int) bool {
	return slices.Contains(PageSizes, n)
}

// Document is the metadata of one FNET regulatory document
type Document struct {
	ID            int    `json:"id"`
	Category      string `json:"categoria"`
	Type          string `json:"tipo"`
	DeliveredAt   string `json:"data_entrega"`
	ReferenceDate string `json:"data_referencia"`
	Status        string `json:"status,omitempty"`
	DownloadPath  string `json:"url_download"`
	ExternalURL   string `json:"url_fnet"`
}

// SearchResult is one page of documents listed for a ticker
type SearchResult struct {
	Ticker         string     `json:"ticker"`
	RegistrationID *string    `json:"cnpj"`
	TotalAvailable int        `json:"total_fnet"`
	ListedCount    int        `json:"listados"`
	Documents      []Document `json:"documentos"`
	FetchedAt      string     `json:"consultado_em"`
}

// Consistent reports whether the listed count matches the documents and
// does not exceed the total available.
func (r *SearchResult) Consistent() bool {
	return r.ListedCount == len(r.Documents) && r.ListedCount <= r.TotalAvailable
}

// Document returns the document with the given id
func (r *SearchResult) Document(id int) (Document, bool) {
	if r == nil {
		return Document{}, false
	}
	for _, doc := range r.Documents {
		if doc.ID == id {
			return doc, true
		}
	}
	return Document{}, false
}

// Registration returns the registration id or an empty string
func (r *SearchResult) Registration() string {
	if r == nil || r.RegistrationID == nil {
		return ""
	}
	return *r.RegistrationID
}

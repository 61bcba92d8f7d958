package state

import (
	"strings"

	"fnetgrip/internal/domain"
	"fnetgrip/internal/ui/logic"
)

// DownloadFailedMessage is the fixed text of the download failure alert
const DownloadFailedMessage = "download failed"

// AppState contains all the application state. It is owned by the
// bubbletea Update loop and must not be touched from other goroutines.
type AppState struct {
	// Search input
	TickerInput string
	PageSize    int

	// Search outcome
	IsLoading    bool
	SearchTicker string // ticker of the search in flight or last applied
	ErrorMessage string
	LastResult   *domain.SearchResult

	// CategoryFilter is domain.CategoryAll or one category name
	CategoryFilter string

	// Request generations. Only the completion carrying the latest issued
	// generation is applied; older ones are stale.
	SearchGeneration   uint64
	DownloadGeneration uint64
	Downloads          map[int]uint64 // document id -> generation of its in-flight download

	// UI state
	Alert         string // modal message; empty when no alert is shown
	StatusMessage string
	APIOnline     *bool
	ShowHelp      bool
}

// NewAppState creates a new application state
func NewAppState(pageSize int) *AppState {
	if !domain.ValidPageSize(pageSize) {
		pageSize = domain.DefaultPageSize
	}
	return &AppState{
		PageSize:       pageSize,
		CategoryFilter: domain.CategoryAll,
		Downloads:      make(map[int]uint64),
	}
}

// NormalizeTicker trims and uppercases user input
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CanSearch reports whether a search may be started now
func (s *AppState) CanSearch() bool {
	return !s.IsLoading && NormalizeTicker(s.TickerInput) != ""
}

// BeginSearch starts a new search and returns its generation and ticker.
// ok is false when the search is a no-op (empty ticker or already loading).
func (s *AppState) BeginSearch() (generation uint64, ticker string, ok bool) {
	if !s.CanSearch() {
		return 0, "", false
	}
	ticker = NormalizeTicker(s.TickerInput)
	s.TickerInput = ticker
	s.SearchTicker = ticker
	s.SearchGeneration++
	s.IsLoading = true
	s.ErrorMessage = ""
	s.LastResult = nil
	s.CategoryFilter = domain.CategoryAll
	return s.SearchGeneration, ticker, true
}

// CompleteSearch applies a search outcome. It returns false and changes
// nothing when the generation is not the latest one issued.
func (s *AppState) CompleteSearch(generation uint64, result *domain.SearchResult, errMessage string) bool {
	if generation != s.SearchGeneration {
		return false
	}
	s.IsLoading = false
	if errMessage != "" || result == nil {
		if errMessage == "" {
			errMessage = "invalid response from API"
		}
		s.ErrorMessage = errMessage
		s.LastResult = nil
		return true
	}
	s.ErrorMessage = ""
	s.LastResult = result
	return true
}

// BeginDownload marks a document busy and returns the generation of this request
func (s *AppState) BeginDownload(docID int) uint64 {
	s.DownloadGeneration++
	s.Downloads[docID] = s.DownloadGeneration
	return s.DownloadGeneration
}

// CompleteDownload clears the busy mark of a document. It returns false when
// a newer download of the same document was started after this one.
func (s *AppState) CompleteDownload(docID int, generation uint64, failed bool) bool {
	current, busy := s.Downloads[docID]
	if !busy || current != generation {
		return false
	}
	delete(s.Downloads, docID)
	if failed {
		s.Alert = DownloadFailedMessage
	}
	return true
}

// IsDownloading reports whether a document has a download in flight
func (s *AppState) IsDownloading(docID int) bool {
	_, ok := s.Downloads[docID]
	return ok
}

// DismissAlert closes the modal alert
func (s *AppState) DismissAlert() {
	s.Alert = ""
}

// SetPageSize changes the page size used by the next search
func (s *AppState) SetPageSize(n int) bool {
	if !domain.ValidPageSize(n) {
		return false
	}
	s.PageSize = n
	return true
}

// SetCategoryFilter selects a category; unknown values fall back to "all"
func (s *AppState) SetCategoryFilter(category string) {
	if category == domain.CategoryAll || s.LastResult == nil {
		s.CategoryFilter = domain.CategoryAll
		return
	}
	for _, c := range logic.Categories(s.LastResult.Documents) {
		if c == category {
			s.CategoryFilter = category
			return
		}
	}
	s.CategoryFilter = domain.CategoryAll
}

// Documents returns the documents of the last result
func (s *AppState) Documents() []domain.Document {
	if s.LastResult == nil {
		return nil
	}
	return s.LastResult.Documents
}

// FilteredDocuments returns the documents matching the category filter
func (s *AppState) FilteredDocuments() []domain.Document {
	return logic.FilterDocuments(s.Documents(), s.CategoryFilter)
}

// CategoryOptions returns the entries of the category selector
func (s *AppState) CategoryOptions() []logic.CategoryOption {
	return logic.CategoryOptions(s.Documents())
}

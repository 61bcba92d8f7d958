package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested   EventType = "SearchRequested"
	EventSearchCompleted   EventType = "SearchCompleted"
	EventDownloadRequested EventType = "DownloadRequested"
	EventDownloadCompleted EventType = "DownloadCompleted"
	EventHealthRequested   EventType = "HealthRequested"
	EventHealthChecked     EventType = "HealthChecked"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent asks the documents service to list documents for a ticker.
// Generation identifies the request so stale completions can be dropped.
type SearchRequestedEvent struct {
	Generation uint64
	Ticker     string
	PageSize   int
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent carries either a result or the user-facing error message
type SearchCompletedEvent struct {
	Generation uint64
	Ticker     string
	Result     *SearchResult
	Err        error
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// DownloadRequestedEvent asks the documents service to fetch and save one document
type DownloadRequestedEvent struct {
	Generation uint64
	Ticker     string
	Document   Document
}

func (e DownloadRequestedEvent) Type() EventType { return EventDownloadRequested }

// DownloadCompletedEvent is emitted when a download finished, successfully or not
type DownloadCompletedEvent struct {
	Generation uint64
	DocumentID int
	Path       string
	Pages      int
	Err        error
}

func (e DownloadCompletedEvent) Type() EventType { return EventDownloadCompleted }

// HealthRequestedEvent asks for a new API health probe
type HealthRequestedEvent struct{}

func (e HealthRequestedEvent) Type() EventType { return EventHealthRequested }

// HealthCheckedEvent reports whether the API answered its health probe
type HealthCheckedEvent struct {
	Online bool
}

func (e HealthCheckedEvent) Type() EventType { return EventHealthChecked }

// ErrorEvent is emitted when an error occurs outside a request/response pair
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

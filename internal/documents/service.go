// Package documents runs searches and downloads requested over the event bus.
package documents

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"fnetgrip/internal/domain"
	"fnetgrip/internal/download"
	"fnetgrip/internal/eventbus"
	"fnetgrip/internal/logging"
)

// Fetcher is the subset of the API client the service needs
type Fetcher interface {
	Search(ctx context.Context, ticker string, pageSize int) (*domain.SearchResult, error)
	Download(ctx context.Context, doc domain.Document) (io.ReadCloser, error)
	Health(ctx context.Context) error
}

// Service performs API work in response to request events
type Service struct {
	ctx     context.Context
	bus     eventbus.EventBus
	fetcher Fetcher
	saver   *download.Saver
	probes  singleflight.Group
	logger  zerolog.Logger
}

// NewService creates the service and subscribes it to request events.
// ctx bounds every request started by the service.
func NewService(ctx context.Context, bus eventbus.EventBus, fetcher Fetcher, saver *download.Saver) *Service {
	s := &Service{
		ctx:     ctx,
		bus:     bus,
		fetcher: fetcher,
		saver:   saver,
		logger:  logging.Component("documents"),
	}

	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			s.bus.Publish(s.Search(event))
		}
	})

	bus.Subscribe(eventbus.EventDownloadRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DownloadRequestedEvent); ok {
			s.bus.Publish(s.Download(event))
		}
	})

	bus.Subscribe(eventbus.EventHealthRequested, func(eventbus.DomainEvent) {
		s.CheckHealth()
	})

	return s
}

// Search runs one search and returns its completion event
func (s *Service) Search(req domain.SearchRequestedEvent) domain.SearchCompletedEvent {
	s.logger.Info().
		Uint64("generation", req.Generation).
		Str("ticker", req.Ticker).
		Int("page_size", req.PageSize).
		Msg("searching")

	result, err := s.fetcher.Search(s.ctx, req.Ticker, req.PageSize)
	if err != nil {
		s.logger.Warn().Uint64("generation", req.Generation).Str("ticker", req.Ticker).Err(err).Msg("search failed")
	}
	return domain.SearchCompletedEvent{
		Generation: req.Generation,
		Ticker:     req.Ticker,
		Result:     result,
		Err:        err,
	}
}

// Download fetches and saves one document and returns its completion event
func (s *Service) Download(req domain.DownloadRequestedEvent) domain.DownloadCompletedEvent {
	saved, err := s.fetch(req)

	done := domain.DownloadCompletedEvent{
		Generation: req.Generation,
		DocumentID: req.Document.ID,
		Err:        err,
	}
	if err != nil {
		s.logger.Warn().
			Int("document", req.Document.ID).
			Uint64("generation", req.Generation).
			Err(err).
			Msg("download failed")
		return done
	}

	done.Path = saved.Path
	done.Pages = saved.Pages
	return done
}

func (s *Service) fetch(req domain.DownloadRequestedEvent) (download.Saved, error) {
	body, err := s.fetcher.Download(s.ctx, req.Document)
	if err != nil {
		return download.Saved{}, err
	}
	defer body.Close()
	return s.saver.Save(req.Ticker, req.Document.ID, body)
}

// CheckHealth probes the API and publishes the outcome. Probes that overlap,
// such as the startup probe and a manual one, share a single request.
func (s *Service) CheckHealth() {
	_, err, shared := s.probes.Do("health", func() (interface{}, error) {
		return nil, s.fetcher.Health(s.ctx)
	})
	if err != nil {
		s.logger.Info().Err(err).Bool("shared", shared).Msg("API health probe failed")
	}
	s.bus.Publish(domain.HealthCheckedEvent{Online: err == nil})
}


package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/models"
	"github.com/atinyakov/tinyapp/internal/storage"
)

//go:generate mockgen -source=urlService.go -destination=../../mocks/mock_url_service.go -package=mocks

// URLServiceIface is the set of URL operations used by the HTTP handlers.
type URLServiceIface interface {
	CreateURL(ctx context.Context, longURL, userID string) (*models.URLRecord, error)
	GetURL(ctx context.Context, short string) (*models.URLRecord, error)
	GetOwnedURL(ctx context.Context, short, userID string) (*models.URLRecord, error)
	ListURLs(ctx context.Context, userID string) []models.URLRecord
	UpdateURL(ctx context.Context, short, longURL, userID string) (*models.URLRecord, error)
	DeleteURL(ctx context.Context, short, userID string) error
	Visit(ctx context.Context, short, visitorID string) (string, error)
	Stats(ctx context.Context) models.StatsResponse
	ShortURL(short string) string
}

type userCounter interface {
	Count(context.Context) int
}

type URLService struct {
	repository Storage
	users      userCounter
	clock      Clock
	logger     *zap.Logger
	baseURL    string
	ch         chan<- models.Visit
}

// NewURL creates the URL service. Visits are sent to ch, which is read by the
// visit recorder.
func NewURL(repo Storage, users userCounter, ch chan<- models.Visit, clock Clock, logger *zap.Logger, baseURL string) *URLService {
	return &URLService{
		repository: repo,
		users:      users,
		clock:      clock,
		logger:     logger,
		baseURL:    baseURL,
		ch:         ch,
	}
}

// ShortURL returns the public redirect address of short.
func (s *URLService) ShortURL(short string) string {
	return s.baseURL + "/u/" + short
}

func (s *URLService) CreateURL(ctx context.Context, longURL, userID string) (*models.URLRecord, error) {
	if longURL == "" {
		return nil, storage.ErrEmptyField
	}

	rec, err := s.repository.Create(ctx, longURL, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("short url created", zap.String("short", rec.Short), zap.String("user", userID))
	return rec, nil
}

func (s *URLService) GetURL(ctx context.Context, short string) (*models.URLRecord, error) {
	return s.repository.Get(ctx, short)
}

// GetOwnedURL returns the record only when userID owns it.
func (s *URLService) GetOwnedURL(ctx context.Context, short, userID string) (*models.URLRecord, error) {
	owned, err := s.repository.IsOwnedBy(ctx, short, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, storage.ErrOwnership
	}
	return s.repository.Get(ctx, short)
}

func (s *URLService) ListURLs(ctx context.Context, userID string) []models.URLRecord {
	return s.repository.ListByOwner(ctx, userID)
}

func (s *URLService) UpdateURL(ctx context.Context, short, longURL, userID string) (*models.URLRecord, error) {
	if longURL == "" {
		return nil, storage.ErrEmptyField
	}
	if err := s.repository.Update(ctx, short, longURL, userID); err != nil {
		return nil, err
	}
	return s.repository.Get(ctx, short)
}

func (s *URLService) DeleteURL(ctx context.Context, short, userID string) error {
	return s.repository.Delete(ctx, short, userID)
}

// Visit resolves the destination of short and hands a visit by visitorID to
// the recorder.
func (s *URLService) Visit(ctx context.Context, short, visitorID string) (string, error) {
	rec, err := s.repository.Get(ctx, short)
	if err != nil {
		return "", err
	}

	v := models.Visit{Short: short, VisitorID: visitorID, At: s.clock.Now()}
	select {
	case s.ch <- v:
	case <-ctx.Done():
		return rec.Original, fmt.Errorf("record visit: %w", ctx.Err())
	}
	return rec.Original, nil
}

func (s *URLService) Stats(ctx context.Context) models.StatsResponse {
	return models.StatsResponse{
		URLs:  s.repository.Count(ctx),
		Users: s.users.Count(ctx),
	}
}

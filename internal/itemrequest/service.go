package itemrequest

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shareit-go/shareit/internal/user"
)

// UserDirectory resolves requestors.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

type Service interface {
	Create(ctx context.Context, requestorID int64, description string) (*Request, error)
	GetByID(ctx context.Context, id int64) (*Request, error)
	ListOwn(ctx context.Context, requestorID int64) ([]*Request, error)
	ListOthers(ctx context.Context, requestorID int64) ([]*Request, error)
}

type service struct {
	repo  Repository
	users UserDirectory
	log   zerolog.Logger
	now   func() time.Time
}

func NewService(repo Repository, users UserDirectory, log zerolog.Logger) Service {
	return &service{
		repo:  repo,
		users: users,
		log:   log.With().Str("component", "request_service").Logger(),
		now:   time.Now,
	}
}

func (s *service) Create(ctx context.Context, requestorID int64, description string) (*Request, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	requestor, err := s.users.GetByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Description:   strings.TrimSpace(description),
		RequestorID:   requestor.ID,
		RequestorName: requestor.Name,
		Created:       s.now(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.log.Info().Int64("request_id", req.ID).Int64("user_id", requestorID).Msg("item request created")
	return req, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Request, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListOwn(ctx context.Context, requestorID int64) ([]*Request, error) {
	if _, err := s.users.GetByID(ctx, requestorID); err != nil {
		return nil, err
	}
	return s.repo.ListByRequestor(ctx, requestorID)
}

func (s *service) ListOthers(ctx context.Context, requestorID int64) ([]*Request, error) {
	if _, err := s.users.GetByID(ctx, requestorID); err != nil {
		return nil, err
	}
	return s.repo.ListExcludingRequestor(ctx, requestorID)
}

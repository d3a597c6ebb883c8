package item

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shareit-go/shareit/internal/user"
)

// UserDirectory resolves owners and comment authors.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

type CreateRequest struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *int64
}

// UpdateRequest applies only the fields that are present.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// BookingInfo supplies booking-derived facts about an item. Implemented
// by the booking repository and wired in the application container.
type BookingInfo interface {
	// LastAndNextForItem returns the start timestamps of the item's last
	// and next bookings relative to now. Either may be nil.
	LastAndNextForItem(ctx context.Context, itemID int64, now time.Time) (last, next *time.Time, err error)
	// HasFinishedBooking reports whether the user has a booking of the
	// item that ended before now.
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type Service interface {
	Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error)
	Update(ctx context.Context, itemID, actorID int64, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	Details(ctx context.Context, id int64) (*Details, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*Item, error)
	Search(ctx context.Context, text string) ([]*Item, error)
	Delete(ctx context.Context, id int64) error
	AddComment(ctx context.Context, authorID, itemID int64, text string) (*Comment, error)
}

type service struct {
	repo     Repository
	users    UserDirectory
	bookings BookingInfo
	log      zerolog.Logger
}

func NewService(repo Repository, users UserDirectory, bookings BookingInfo, log zerolog.Logger) Service {
	return &service{
		repo:     repo,
		users:    users,
		bookings: bookings,
		log:      log.With().Str("component", "item_service").Logger(),
	}
}

func (s *service) Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error) {
	if err := validateNew(req); err != nil {
		s.log.Warn().Int64("owner_id", ownerID).Err(err).Msg("rejected invalid item")
		return nil, err
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	it := &Item{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Available:   *req.Available,
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	s.log.Info().Int64("item_id", it.ID).Int64("owner_id", ownerID).Msg("item created")
	return it, nil
}

func (s *service) Update(ctx context.Context, itemID, actorID int64, req UpdateRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != actorID {
		s.log.Warn().Int64("item_id", itemID).Int64("user_id", actorID).Msg("item update denied")
		return nil, ErrNotOwner
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		it.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		it.Description = strings.TrimSpace(*req.Description)
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}

	s.log.Info().Int64("item_id", it.ID).Msg("item updated")
	return it, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Details(ctx context.Context, id int64) (*Details, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	last, next, err := s.bookings.LastAndNextForItem(ctx, id, now)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Details{
		Item:        *it,
		LastBooking: last,
		NextBooking: next,
		Comments:    comments,
	}, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64) ([]*Item, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) Search(ctx context.Context, text string) ([]*Item, error) {
	// Blank search text is an empty result, not an error.
	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, strings.TrimSpace(text))
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("item_id", id).Msg("item deleted")
	return nil
}

func (s *service) AddComment(ctx context.Context, authorID, itemID int64, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrCommentTextRequired
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	now := time.Now()
	finished, err := s.bookings.HasFinishedBooking(ctx, authorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !finished {
		s.log.Warn().Int64("item_id", itemID).Int64("user_id", authorID).Msg("comment denied")
		return nil, ErrCommentNotAllowed
	}

	comment := &Comment{
		Text:       strings.TrimSpace(text),
		ItemID:     itemID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    now,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().Int64("item_id", itemID).Int64("comment_id", comment.ID).Msg("comment added")
	return comment, nil
}

func validateNew(req CreateRequest) error {
	if req.Available == nil {
		return ErrAvailableRequired
	}
	if strings.TrimSpace(req.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(req.Description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shareit-go/shareit/internal/item"
	"github.com/shareit-go/shareit/internal/user"
)

// UserDirectory is the slice of the user service the booking engine
// needs: resolving bookers and listing users by id.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// ItemDirectory resolves items for availability and ownership checks.
type ItemDirectory interface {
	GetByID(ctx context.Context, id int64) (*item.Item, error)
}

type CreateRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type Service interface {
	Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error)
	Approve(ctx context.Context, actorID, bookingID int64, approved bool) (*Booking, error)
	GetForParticipant(ctx context.Context, actorID, bookingID int64) (*Booking, error)
	ListForBooker(ctx context.Context, bookerID int64, state State) ([]*Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, state State) ([]*Booking, error)
}

type service struct {
	repo  Repository
	users UserDirectory
	items ItemDirectory
	log   zerolog.Logger
	now   func() time.Time
}

func NewService(repo Repository, users UserDirectory, items ItemDirectory, log zerolog.Logger) Service {
	return &service{
		repo:  repo,
		users: users,
		items: items,
		log:   log.With().Str("component", "booking_service").Logger(),
		now:   time.Now,
	}
}

func (s *service) Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error) {
	if req.Start.IsZero() {
		return nil, ErrStartRequired
	}
	if req.End.IsZero() {
		return nil, ErrEndRequired
	}
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidTimeRange
	}

	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	it, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available {
		s.log.Warn().Int64("item_id", it.ID).Int64("user_id", bookerID).Msg("booking rejected, item unavailable")
		return nil, ErrItemUnavailable
	}

	b := &Booking{
		Start:       req.Start,
		End:         req.End,
		Status:      StatusWaiting,
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    booker.ID,
		BookerName:  booker.Name,
		BookerEmail: booker.Email,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info().Int64("booking_id", b.ID).Int64("item_id", it.ID).Int64("booker_id", bookerID).Msg("booking created")
	return b, nil
}

// Approve flips the booking to APPROVED or REJECTED. Only the item owner
// may decide. A terminal booking can be re-decided; every call persists
// a write (last write wins, no version check).
func (s *service) Approve(ctx context.Context, actorID, bookingID int64, approved bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ItemOwnerID != actorID {
		s.log.Warn().Int64("booking_id", bookingID).Int64("user_id", actorID).Msg("approval denied, not the item owner")
		return nil, ErrNotOwner
	}

	if approved {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}
	if err := s.repo.UpdateStatus(ctx, b.ID, b.Status); err != nil {
		return nil, err
	}

	s.log.Info().Int64("booking_id", b.ID).Str("status", string(b.Status)).Msg("booking status updated")
	return b, nil
}

func (s *service) GetForParticipant(ctx context.Context, actorID, bookingID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID != actorID && b.ItemOwnerID != actorID {
		s.log.Warn().Int64("booking_id", bookingID).Int64("user_id", actorID).Msg("view denied, not a participant")
		return nil, ErrNotParticipant
	}
	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID int64, state State) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, bookerID); err != nil {
		return nil, err
	}
	return s.repo.ListByBooker(ctx, bookerID, state, s.now())
}

func (s *service) ListForOwner(ctx context.Context, ownerID int64, state State) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, ownerID, state, s.now())
}

package booking

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit-go/shareit/internal/item"
	"github.com/shareit-go/shareit/internal/user"
)

type fakeUsers struct {
	users map[int64]*user.User
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

type fakeItems struct {
	items map[int64]*item.Item
}

func (f *fakeItems) GetByID(_ context.Context, id int64) (*item.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, item.ErrNotFound
	}
	return it, nil
}

type fakeRepo struct {
	nextID   int64
	bookings map[int64]*Booking

	lastListState State
	lastListNow   time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, bookings: map[int64]*Booking{}}
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	b.ID = f.nextID
	f.nextID++
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status Status) error {
	b, ok := f.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) ListByBooker(_ context.Context, bookerID int64, state State, now time.Time) ([]*Booking, error) {
	f.lastListState = state
	f.lastListNow = now
	var out []*Booking
	for _, b := range f.bookings {
		if b.BookerID == bookerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, ownerID int64, state State, now time.Time) ([]*Booking, error) {
	f.lastListState = state
	f.lastListNow = now
	var out []*Booking
	for _, b := range f.bookings {
		if b.ItemOwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) LastAndNextForItem(context.Context, int64, time.Time) (*time.Time, *time.Time, error) {
	return nil, nil, nil
}

func (f *fakeRepo) HasFinishedBooking(context.Context, int64, int64, time.Time) (bool, error) {
	return false, nil
}

const (
	ownerID    = int64(1)
	bookerID   = int64(2)
	strangerID = int64(3)
)

func newTestService(t *testing.T) (*service, *fakeRepo) {
	t.Helper()

	users := &fakeUsers{users: map[int64]*user.User{
		ownerID:    {ID: ownerID, Name: "owner", Email: "owner@example.com"},
		bookerID:   {ID: bookerID, Name: "booker", Email: "booker@example.com"},
		strangerID: {ID: strangerID, Name: "stranger", Email: "stranger@example.com"},
	}}
	items := &fakeItems{items: map[int64]*item.Item{
		10: {ID: 10, Name: "drill", Description: "cordless drill", Available: true, OwnerID: ownerID, OwnerName: "owner"},
		11: {ID: 11, Name: "ladder", Description: "step ladder", Available: false, OwnerID: ownerID, OwnerName: "owner"},
	}}

	repo := newFakeRepo()
	svc := NewService(repo, users, items, zerolog.Nop()).(*service)
	return svc, repo
}

func validRequest() CreateRequest {
	start := time.Now().Add(time.Hour)
	return CreateRequest{ItemID: 10, Start: start, End: start.Add(time.Hour)}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates waiting booking with resolved snapshots", func(t *testing.T) {
		svc, repo := newTestService(t)

		b, err := svc.Create(ctx, bookerID, validRequest())
		require.NoError(t, err)

		assert.Equal(t, StatusWaiting, b.Status)
		assert.Equal(t, bookerID, b.BookerID)
		assert.Equal(t, "booker", b.BookerName)
		assert.Equal(t, int64(10), b.ItemID)
		assert.Equal(t, "drill", b.ItemName)
		assert.Equal(t, ownerID, b.ItemOwnerID)
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("unavailable item is rejected and nothing is persisted", func(t *testing.T) {
		svc, repo := newTestService(t)

		req := validRequest()
		req.ItemID = 11
		_, err := svc.Create(ctx, bookerID, req)

		assert.ErrorIs(t, err, ErrItemUnavailable)
		assert.Empty(t, repo.bookings)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc, repo := newTestService(t)

		req := validRequest()
		req.ItemID = 99
		_, err := svc.Create(ctx, bookerID, req)

		assert.ErrorIs(t, err, item.ErrNotFound)
		assert.Empty(t, repo.bookings)
	})

	t.Run("unknown booker", func(t *testing.T) {
		svc, repo := newTestService(t)

		_, err := svc.Create(ctx, 99, validRequest())

		assert.ErrorIs(t, err, user.ErrNotFound)
		assert.Empty(t, repo.bookings)
	})

	t.Run("missing start or end", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRequest()
		req.Start = time.Time{}
		_, err := svc.Create(ctx, bookerID, req)
		assert.ErrorIs(t, err, ErrStartRequired)

		req = validRequest()
		req.End = time.Time{}
		_, err = svc.Create(ctx, bookerID, req)
		assert.ErrorIs(t, err, ErrEndRequired)
	})

	t.Run("start must precede end", func(t *testing.T) {
		svc, repo := newTestService(t)

		req := validRequest()
		req.End = req.Start
		_, err := svc.Create(ctx, bookerID, req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		req = validRequest()
		req.Start, req.End = req.End, req.Start
		_, err = svc.Create(ctx, bookerID, req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		assert.Empty(t, repo.bookings)
	})
}

func TestApproveBooking(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*service, *fakeRepo, int64) {
		svc, repo := newTestService(t)
		b, err := svc.Create(ctx, bookerID, validRequest())
		require.NoError(t, err)
		return svc, repo, b.ID
	}

	t.Run("owner approves", func(t *testing.T) {
		svc, repo, id := setup(t)

		b, err := svc.Approve(ctx, ownerID, id, true)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, b.Status)
		assert.Equal(t, StatusApproved, repo.bookings[id].Status)
	})

	t.Run("owner rejects", func(t *testing.T) {
		svc, repo, id := setup(t)

		b, err := svc.Approve(ctx, ownerID, id, false)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, b.Status)
		assert.Equal(t, StatusRejected, repo.bookings[id].Status)
	})

	t.Run("non-owner is denied and status is untouched", func(t *testing.T) {
		svc, repo, id := setup(t)

		_, err := svc.Approve(ctx, bookerID, id, true)
		assert.ErrorIs(t, err, ErrNotOwner)

		_, err = svc.Approve(ctx, strangerID, id, true)
		assert.ErrorIs(t, err, ErrNotOwner)

		assert.Equal(t, StatusWaiting, repo.bookings[id].Status)
	})

	t.Run("re-approval overwrites a terminal status", func(t *testing.T) {
		svc, repo, id := setup(t)

		_, err := svc.Approve(ctx, ownerID, id, true)
		require.NoError(t, err)

		b, err := svc.Approve(ctx, ownerID, id, false)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, b.Status)
		assert.Equal(t, StatusRejected, repo.bookings[id].Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.Approve(ctx, ownerID, 999, true)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetForParticipant(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(t)
	b, err := svc.Create(ctx, bookerID, validRequest())
	require.NoError(t, err)

	t.Run("booker may view", func(t *testing.T) {
		got, err := svc.GetForParticipant(ctx, bookerID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("item owner may view", func(t *testing.T) {
		got, err := svc.GetForParticipant(ctx, ownerID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("third party is denied", func(t *testing.T) {
		_, err := svc.GetForParticipant(ctx, strangerID, b.ID)
		assert.ErrorIs(t, err, ErrNotParticipant)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.GetForParticipant(ctx, bookerID, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user fails fast", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.ListForBooker(ctx, 99, StateAll)
		assert.ErrorIs(t, err, user.ErrNotFound)

		_, err = svc.ListForOwner(ctx, 99, StateAll)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("state and now reach the repository", func(t *testing.T) {
		svc, repo := newTestService(t)
		fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return fixed }

		_, err := svc.ListForBooker(ctx, bookerID, StateCurrent)
		require.NoError(t, err)
		assert.Equal(t, StateCurrent, repo.lastListState)
		assert.Equal(t, fixed, repo.lastListNow)

		_, err = svc.ListForOwner(ctx, ownerID, StateRejected)
		require.NoError(t, err)
		assert.Equal(t, StateRejected, repo.lastListState)
	})

	t.Run("scopes by booker and by owner", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, bookerID, validRequest())
		require.NoError(t, err)
		_, err = svc.Create(ctx, strangerID, validRequest())
		require.NoError(t, err)

		byBooker, err := svc.ListForBooker(ctx, bookerID, StateAll)
		require.NoError(t, err)
		assert.Len(t, byBooker, 1)

		byOwner, err := svc.ListForOwner(ctx, ownerID, StateAll)
		require.NoError(t, err)
		assert.Len(t, byOwner, 2)
	})
}

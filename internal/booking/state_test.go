package booking

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		raw  string
		want State
	}{
		{"ALL", StateAll},
		{"CURRENT", StateCurrent},
		{"PAST", StatePast},
		{"FUTURE", StateFuture},
		{"WAITING", StateWaiting},
		{"REJECTED", StateRejected},
		{"current", StateCurrent},
		{"Rejected", StateRejected},
		{"  future  ", StateFuture},
		// Unknown and empty values never fail, they mean ALL.
		{"bogus", StateAll},
		{"", StateAll},
		{"APPROVED", StateAll},
	}

	for _, tt := range tests {
		t.Run("state "+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseState(tt.raw))
		})
	}
}

func TestStateString(t *testing.T) {
	for _, s := range []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected} {
		assert.Equal(t, s, ParseState(s.String()))
	}
}

func stateSQL(t *testing.T, s State, now time.Time) (string, []any) {
	t.Helper()
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("b.id").
		From("bookings b").
		Where(squirrel.Eq{"b.booker_id": int64(7)})
	sql, args, err := s.apply(q, now).ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestStateApply(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("all adds no conditions", func(t *testing.T) {
		sql, args := stateSQL(t, StateAll, now)
		assert.Equal(t, "SELECT b.id FROM bookings b WHERE b.booker_id = $1", sql)
		assert.Equal(t, []any{int64(7)}, args)
	})

	t.Run("current straddles now", func(t *testing.T) {
		sql, args := stateSQL(t, StateCurrent, now)
		assert.Contains(t, sql, "b.start_date <= $2")
		assert.Contains(t, sql, "b.end_date >= $3")
		assert.Equal(t, []any{int64(7), now, now}, args)
	})

	t.Run("past ends strictly before now", func(t *testing.T) {
		sql, args := stateSQL(t, StatePast, now)
		assert.Contains(t, sql, "b.end_date < $2")
		assert.Equal(t, []any{int64(7), now}, args)
	})

	t.Run("future starts strictly after now", func(t *testing.T) {
		sql, args := stateSQL(t, StateFuture, now)
		assert.Contains(t, sql, "b.start_date > $2")
		assert.Equal(t, []any{int64(7), now}, args)
	})

	t.Run("waiting filters by status", func(t *testing.T) {
		sql, args := stateSQL(t, StateWaiting, now)
		assert.Contains(t, sql, "b.status = $2")
		assert.Equal(t, []any{int64(7), StatusWaiting}, args)
	})

	t.Run("rejected filters by status", func(t *testing.T) {
		sql, args := stateSQL(t, StateRejected, now)
		assert.Contains(t, sql, "b.status = $2")
		assert.Equal(t, []any{int64(7), StatusRejected}, args)
	})
}

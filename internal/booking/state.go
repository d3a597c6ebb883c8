package booking

import (
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
)

// State classifies bookings for listing, either by their temporal
// relationship to now (CURRENT, PAST, FUTURE) or by status (WAITING,
// REJECTED). APPROVED bookings are only reachable through ALL.
type State int

const (
	StateAll State = iota
	StateCurrent
	StatePast
	StateFuture
	StateWaiting
	StateRejected
)

// ParseState resolves a state query parameter, case-insensitively.
// Unknown or empty values fall back to ALL; this is a permissive
// default, never an error.
func ParseState(raw string) State {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CURRENT":
		return StateCurrent
	case "PAST":
		return StatePast
	case "FUTURE":
		return StateFuture
	case "WAITING":
		return StateWaiting
	case "REJECTED":
		return StateRejected
	default:
		return StateAll
	}
}

func (s State) String() string {
	switch s {
	case StateCurrent:
		return "CURRENT"
	case StatePast:
		return "PAST"
	case StateFuture:
		return "FUTURE"
	case StateWaiting:
		return "WAITING"
	case StateRejected:
		return "REJECTED"
	default:
		return "ALL"
	}
}

// apply narrows a bookings select to the state, evaluated against now.
// CURRENT means the window straddles now: start <= now <= end.
func (s State) apply(q squirrel.SelectBuilder, now time.Time) squirrel.SelectBuilder {
	switch s {
	case StateCurrent:
		return q.
			Where(squirrel.LtOrEq{"b.start_date": now}).
			Where(squirrel.GtOrEq{"b.end_date": now})
	case StatePast:
		return q.Where(squirrel.Lt{"b.end_date": now})
	case StateFuture:
		return q.Where(squirrel.Gt{"b.start_date": now})
	case StateWaiting:
		return q.Where(squirrel.Eq{"b.status": StatusWaiting})
	case StateRejected:
		return q.Where(squirrel.Eq{"b.status": StatusRejected})
	case StateAll:
		return q
	}
	return q
}

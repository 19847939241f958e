package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// InvariantViolation signals an internal inconsistency: a move asked for a
// card that is not where it claims, or bookkeeping went negative. It is a
// defect signal, never an expected outcome, so it is delivered by panic
// and terminates the current search branch. Recoverable conditions use
// ordinary error values instead.
type InvariantViolation struct {
	Op     string
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation in %s: %s", e.Op, e.Detail)
}

// fail dumps diagnostic context and panics with an *InvariantViolation.
func (gs *GameState) fail(op, detail string) {
	event := log.Error().
		Str("op", op).
		Str("detail", detail).
		Int("turn", gs.Turn).
		Int("player", gs.CurrentPlayer)
	for i := range gs.players {
		p := &gs.players[i]
		event = event.
			Str(fmt.Sprintf("hand%d", i), handContents(&p.hand)).
			Int(fmt.Sprintf("draw%d", i), p.draw.Size()).
			Int(fmt.Sprintf("discard%d", i), p.discard.Size())
	}
	event.Strs("recent", recentHistory(gs.history, 10)).Msg("invariant violation")

	panic(&InvariantViolation{Op: op, Detail: detail})
}

func handContents(hand *Zone) string {
	names := make([]string, 0, hand.Size())
	for _, c := range hand.Cards() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

func recentHistory(history []string, n int) []string {
	if len(history) > n {
		return history[len(history)-n:]
	}
	return history
}

package game

import "golang.org/x/exp/rand"

// Zone is an ordered pile of cards belonging to one (player, zone kind)
// pair, or shared between players (supply, trash). Index 0 is the top of
// the pile for draw purposes. A card must live in exactly one zone at a
// time; the GameState is the only component that moves cards between
// zones.
type Zone struct {
	cards []Card
}

// Add appends a card to the bottom of the zone.
func (z *Zone) Add(c Card) {
	z.cards = append(z.cards, c)
}

// RemoveTop removes and returns the top card.
func (z *Zone) RemoveTop() (Card, bool) {
	if len(z.cards) == 0 {
		return Card{}, false
	}
	c := z.cards[0]
	z.cards = z.cards[1:]
	return c, true
}

// RemoveAll empties the zone and returns its cards in order.
func (z *Zone) RemoveAll() []Card {
	cards := z.cards
	z.cards = nil
	return cards
}

// FirstOfType returns the first card of the given type without removing it.
func (z *Zone) FirstOfType(t CardType) (Card, bool) {
	for _, c := range z.cards {
		if c.Type == t {
			return c, true
		}
	}
	return Card{}, false
}

// RemoveFirstOfType removes and returns the first card of the given type,
// preserving the order of the rest.
func (z *Zone) RemoveFirstOfType(t CardType) (Card, bool) {
	for i, c := range z.cards {
		if c.Type == t {
			z.cards = append(z.cards[:i], z.cards[i+1:]...)
			return c, true
		}
	}
	return Card{}, false
}

// Remove removes the given card instance, matching by ID.
func (z *Zone) Remove(card Card) bool {
	for i, c := range z.cards {
		if c.ID == card.ID {
			z.cards = append(z.cards[:i], z.cards[i+1:]...)
			return true
		}
	}
	return false
}

func (z *Zone) Size() int {
	return len(z.cards)
}

func (z *Zone) Contains(t CardType) bool {
	_, ok := z.FirstOfType(t)
	return ok
}

// Count returns how many cards of the given type the zone holds.
func (z *Zone) Count(t CardType) int {
	n := 0
	for _, c := range z.cards {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Cards returns a copy of the zone contents in order.
func (z *Zone) Cards() []Card {
	cards := make([]Card, len(z.cards))
	copy(cards, z.cards)
	return cards
}

// Shuffle reorders the zone in place. The generator is supplied by the
// caller; the zone never draws on process-wide randomness, so two states
// seeded identically shuffle identically.
func (z *Zone) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(z.cards), func(i, j int) {
		z.cards[i], z.cards[j] = z.cards[j], z.cards[i]
	})
}

// Copy returns a structurally independent copy of the zone.
func (z *Zone) Copy() Zone {
	cards := make([]Card, len(z.cards))
	copy(cards, z.cards)
	return Zone{cards: cards}
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpecialEffects(t *testing.T) {
	// The effect tag on a card and the choice it queues are distinct
	// enumerations; playing each card must bridge them correctly.
	require.Equal(t, MilitiaAttack, Militia.SpecialEffect())
	require.Equal(t, WorkshopGainEffect, Workshop.SpecialEffect())
	require.Equal(t, ChapelTrashEffect, Chapel.SpecialEffect())
	require.Equal(t, NoEffect, Smithy.SpecialEffect())

	gs := newTestState(t, 60)
	setHand(gs, 0, Workshop)
	gs2 := gs.Play(PlayCard{Type: Workshop, Player: 0}).(*GameState)
	require.Equal(t, []Choice{{Type: WorkshopGain, Player: 0}}, gs2.PendingChoices())
}

func TestParseCardType(t *testing.T) {
	got, ok := ParseCardType("Laboratory")
	require.True(t, ok)
	require.Equal(t, Laboratory, got)

	_, ok = ParseCardType("Throne Room")
	require.False(t, ok)
}

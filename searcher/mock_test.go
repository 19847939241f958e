package searcher

import "dominion/game"

type mockMove struct {
	id         int
	stochastic bool
}

func (m mockMove) Execute(gs *game.GameState) bool {
	return true
}

func (m mockMove) Copy() game.Move {
	return m
}

func (m mockMove) IsDeterministic() bool {
	return !m.stochastic
}

func (m mockMove) String() string {
	return "mock"
}

type mockState struct {
	player string
	moves  []game.Move
	played []game.Move
	hash   game.StateHash
	winner string
}

func (m mockState) Player() string {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	return mockState{
		player: m.player,
		moves:  m.moves,
		played: append(append([]game.Move{}, m.played...), move),
		hash:   m.hash,
		winner: m.winner,
	}
}

func (m mockState) Hash() game.StateHash {
	return m.hash
}

func (m mockState) Winner() string {
	return m.winner
}

func (m mockState) Determinize(seed uint64) game.State {
	return m
}

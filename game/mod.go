package game

// Move represents one atomic, replayable state transition. Implementations
// hold only primitive identifiers (card type, player index, phase) and
// never references into a GameState, so they are safely copyable, usable
// as map keys, and comparable with ==.
type Move interface {
	// Execute locates the cards it needs inside gs by type, performs the
	// zone mutations, and records itself in the history. A required card
	// that cannot be located is an invariant violation, not a normal
	// failure: legality is checked by the move-generation layer before
	// Execute is ever called.
	Execute(gs *GameState) bool
	// Copy returns a move equal in all observable respects.
	Copy() Move
	// IsDeterministic reports whether replaying the move from equal states
	// always produces equal outcomes (false for moves that may trigger a
	// reshuffle).
	IsDeterministic() bool
	String() string
}

type StateHash uint64

// State is the forward-model contract consumed by search agents.
// Operations on State always return a new copy; the receiver is never
// mutated.
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
	// Determinize returns a copy whose future shuffle randomness is
	// reseeded, so repeated playthroughs of stochastic moves sample
	// different outcomes while each seed stays reproducible.
	Determinize(seed uint64) State
}

// Evaluate scores a game state between -1 and 1 indicating how favorable
// the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64

// internal/game/types.go
//
// Core type definitions for the word game engine.
// Defines:
//   - Mark: per-letter result of a guess (exact/present/absent).
//   - State: coarse lifecycle of a round (playing/won/lost).
//   - Round: state for a single in-progress or finished round.

package game

// Mark classifies a single guessed letter against the solution.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the solution at a different position,
//     within the remaining unmatched-occurrence budget.
//   - "absent":  letter has no remaining unmatched occurrence in the solution.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// State reports where a round is in its lifecycle.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Vocabulary is the allowed-guess collaborator for a Round.
// The grader itself never checks membership; rounds do.
type Vocabulary interface {
	// IsAllowed reports whether w is a permitted guess word.
	IsAllowed(w string) bool
}

// Round holds the state of a single word game round.
// Construct with NewRound; the solution, guess budget and vocabulary are
// fixed at construction and never mutated afterwards.
type Round struct {
	ID       string   // Unique round identifier (random hex string).
	Solution string   // The hidden word (always lowercase).
	MaxTries int      // Maximum number of guesses allowed (typically 6).
	Guesses  []string // Guesses accepted so far (lowercased).
	Finished bool     // True once the round is over (won or lost).
	Won      bool     // True if the round finished with a win.

	vocab Vocabulary
}

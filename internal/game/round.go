// internal/game/round.go
//
// A single word game round: validate guesses against a configured
// vocabulary, grade them, and track state transitions playing → won/lost.
//
// Re-architecture notes versus the usual global-variable layout:
//   - The vocabulary is a constructor parameter, not a package singleton.
//   - The answer pick uses a caller-supplied seedable *rand.Rand, so rounds
//     are deterministic under a fixed seed.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	mrand "math/rand"
	"strings"
)

const defaultMaxTries = 6

// Validation and lifecycle errors surfaced by Apply. All of them are
// recoverable at the prompt: the caller re-prompts without consuming a try.
var (
	ErrRoundOver       = errors.New("round already finished")
	ErrInvalidGuess    = errors.New("guess must be the right length and alphabetic")
	ErrNotInVocabulary = errors.New("word not in allowed list")
)

// RoundConfig carries everything a round needs at construction time.
type RoundConfig struct {
	// Vocab is the allowed-guess set. Required.
	Vocab Vocabulary

	// Solution forces the hidden word (lowercased). When empty, one is
	// picked from Answers using Rand.
	Solution string

	// Answers is the pool to pick a solution from when none is forced.
	Answers []string

	// Rand picks the solution from Answers. When nil, a crypto/rand pick
	// is used instead.
	Rand *mrand.Rand

	// MaxTries bounds the number of guesses. Zero means the default of 6.
	MaxTries int
}

// NewRound constructs a round from cfg.
// Returns an error when no solution is forced and the answer pool is empty.
func NewRound(cfg RoundConfig) (*Round, error) {
	solution := strings.ToLower(strings.TrimSpace(cfg.Solution))
	if solution == "" {
		if len(cfg.Answers) == 0 {
			return nil, errors.New("no answers to pick a solution from")
		}
		solution = cfg.Answers[pick(len(cfg.Answers), cfg.Rand)]
	}
	tries := cfg.MaxTries
	if tries <= 0 {
		tries = defaultMaxTries
	}
	return &Round{
		ID:       randomID(),
		Solution: solution,
		MaxTries: tries,
		Guesses:  []string{},
		vocab:    cfg.Vocab,
	}, nil
}

// Apply validates and grades a guess, mutating the round state.
// Returns the per-letter marks and the new state.
//
// Validation rules:
//   - Round must not be finished.
//   - Guess must be exactly len(Solution) letters and alphabetic a-z.
//   - Guess must be present in the vocabulary (when one is configured).
//
// State transitions:
//   - All marks exact → Finished, Won.
//   - Else if the guess count reaches MaxTries → Finished (loss).
func (r *Round) Apply(guess string) ([]Mark, State, error) {
	if r.Finished {
		return nil, r.State(), ErrRoundOver
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != len(r.Solution) || !isAlpha(guess) {
		return nil, r.State(), ErrInvalidGuess
	}
	if r.vocab != nil && !r.vocab.IsAllowed(guess) {
		return nil, r.State(), ErrNotInVocabulary
	}

	marks, err := Grade(r.Solution, guess)
	if err != nil {
		return nil, r.State(), err
	}
	r.Guesses = append(r.Guesses, guess)

	if AllExact(marks) {
		r.Finished, r.Won = true, true
	} else if len(r.Guesses) >= r.MaxTries {
		r.Finished = true
	}
	return marks, r.State(), nil
}

// State reports the coarse lifecycle state of the round.
func (r *Round) State() State {
	if r.Finished {
		if r.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// pick chooses an index in [0, n). A nil rng falls back to crypto/rand so
// unseeded play stays unpredictable.
func pick(n int, rng *mrand.Rand) int {
	if rng != nil {
		return rng.Intn(n)
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(nBig.Int64())
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// internal/numbers/numbers.go
//
// Engine for the guess-the-number game.
// Responsibilities:
//   - Difficulty tiers (guessing range + attempt budget), embedded defaults
//     with an optional YAML override file.
//   - Session state: hidden target, attempt accounting, higher/lower hints.
//
// The session takes its random source at construction, so games are
// deterministic under a fixed seed. All prompting and input parsing lives
// in the CLI layer; a session only ever sees whole numbers.

package numbers

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Outcome is the verdict for a single numeric guess.
type Outcome string

const (
	TooLow        Outcome = "too_low"
	TooHigh       Outcome = "too_high"
	Correct       Outcome = "correct"
	OutOfAttempts Outcome = "out_of_attempts"
)

// Tier is one difficulty setting: targets are drawn from [1, High] and the
// player has Attempts tries.
type Tier struct {
	Name     string `yaml:"name"`
	High     int    `yaml:"high"`
	Attempts int    `yaml:"attempts"`
}

// tiersFile is the YAML document shape accepted by LoadTiers.
type tiersFile struct {
	Tiers []Tier `yaml:"tiers"`
}

// DefaultTiers returns the built-in difficulty table.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "easy", High: 10, Attempts: 6},
		{Name: "medium", High: 50, Attempts: 8},
		{Name: "hard", High: 100, Attempts: 10},
	}
}

// LoadTiers reads a replacement difficulty table from a YAML file.
// The file must define at least one tier, and every tier needs a name, a
// range upper bound of at least 2 and a positive attempt budget.
func LoadTiers(path string) ([]Tier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tiers file: %w", err)
	}
	var doc tiersFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse tiers file: %w", err)
	}
	if len(doc.Tiers) == 0 {
		return nil, errors.New("tiers file defines no tiers")
	}
	for i, tier := range doc.Tiers {
		if tier.Name == "" {
			return nil, fmt.Errorf("tier %d: missing name", i)
		}
		if tier.High < 2 {
			return nil, fmt.Errorf("tier %q: high must be at least 2", tier.Name)
		}
		if tier.Attempts < 1 {
			return nil, fmt.Errorf("tier %q: attempts must be positive", tier.Name)
		}
	}
	return doc.Tiers, nil
}

// Session is one run of the number game against a single tier.
type Session struct {
	tier     Tier
	target   int
	attempts int
	outcome  Outcome // set once the session reaches a terminal outcome
}

// NewSession draws a target in [1, tier.High] using rng.
func NewSession(tier Tier, rng *rand.Rand) *Session {
	return &Session{
		tier:   tier,
		target: rng.Intn(tier.High) + 1,
	}
}

// Guess consumes an attempt and compares n to the hidden target.
// Returns Correct or OutOfAttempts as terminal outcomes; TooLow/TooHigh
// otherwise. Guessing after the session finished returns the terminal
// outcome again without consuming anything.
func (s *Session) Guess(n int) Outcome {
	if s.outcome != "" {
		return s.outcome
	}
	s.attempts++
	switch {
	case n == s.target:
		s.outcome = Correct
	case s.attempts >= s.tier.Attempts:
		s.outcome = OutOfAttempts
	case n < s.target:
		return TooLow
	default:
		return TooHigh
	}
	return s.outcome
}

// Attempts returns the number of guesses consumed so far.
func (s *Session) Attempts() int { return s.attempts }

// Remaining returns how many guesses are left.
func (s *Session) Remaining() int { return s.tier.Attempts - s.attempts }

// Target reveals the hidden number; used when the player runs out.
func (s *Session) Target() int { return s.target }

// Tier returns the difficulty this session was created with.
func (s *Session) Tier() Tier { return s.tier }

// Finished reports whether the session reached a terminal outcome.
func (s *Session) Finished() bool { return s.outcome != "" }

// Won reports whether the session finished on a correct guess.
func (s *Session) Won() bool { return s.outcome == Correct }

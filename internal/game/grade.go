// internal/game/grade.go
//
// The feedback grader: scores a guess against a solution using the
// classic two-pass counting algorithm so repeated letters are handled
// correctly in both the solution and the guess.
//
// Grade is a pure function of its inputs. It holds no shared state and is
// safe to call concurrently from independent rounds.

package game

import (
	"errors"
	"strings"
)

// ErrLengthMismatch is returned by Grade when solution and guess differ in
// length. The call produces no partial feedback; inputs are never truncated
// or padded.
var ErrLengthMismatch = errors.New("solution and guess must be the same length")

// Grade scores guess against solution and returns one Mark per position.
//
// Both inputs are lowercased before comparison, so grading is
// case-insensitive. Returns ErrLengthMismatch when the lengths differ.
//
// Pass 1:
//   - Mark exact matches.
//   - Count the remaining (non-exact) solution letters by letter index.
//
// Pass 2:
//   - For each non-exact guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Absent.
//
// The first pass fully completes before the second begins. Interleaving the
// passes would mis-grade a letter that matches exactly later in the string
// but loosely earlier, and the counters are what keep the total number of
// Exact+Present marks for any letter within that letter's occurrence count
// in the solution.
func Grade(solution, guess string) ([]Mark, error) {
	solutionRunes := []rune(strings.ToLower(solution))
	guessRunes := []rune(strings.ToLower(guess))
	if len(solutionRunes) != len(guessRunes) {
		return nil, ErrLengthMismatch
	}

	n := len(guessRunes)
	res := make([]Mark, n)

	// Letter frequency for the non-exact solution positions (a-z).
	var counts [26]int

	// First pass: mark exact matches and collect counts for the rest.
	for i := 0; i < n; i++ {
		if guessRunes[i] == solutionRunes[i] {
			res[i] = MarkExact
		} else if j := idx(solutionRunes[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	// Second pass: resolve present/absent for the non-exact positions.
	for i := 0; i < n; i++ {
		if res[i] == MarkExact {
			continue
		}
		if j := idx(guessRunes[i]); j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res, nil
}

// idx maps a lowercase ASCII letter rune to 0..25.
// Out-of-range results are guarded at the call sites.
func idx(r rune) int { return int(r - 'a') }

// AllExact returns true if every mark is MarkExact.
func AllExact(marks []Mark) bool {
	for _, m := range marks {
		if m != MarkExact {
			return false
		}
	}
	return true
}

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// internal/game/selftest.go
//
// Fixed battery of known (solution, guess, expected feedback) triples used
// by the --selftest CLI flag for a quick deterministic sanity check of the
// grader outside the test suite.

package game

import "fmt"

type selfTestCase struct {
	solution string
	guess    string
	expected []Mark
}

var selfTests = []selfTestCase{
	{"apple", "apple", marks("EEEEE")},
	{"crane", "crate", marks("EEEAE")},
	{"arrow", "rarer", marks("PPEAA")},
	{"sense", "seeds", marks("EEPAP")},
}

// SelfTest grades every battery entry and returns an error describing the
// first mismatch, or nil when all entries pass.
func SelfTest() error {
	for _, tc := range selfTests {
		got, err := Grade(tc.solution, tc.guess)
		if err != nil {
			return fmt.Errorf("selftest %s/%s: %w", tc.solution, tc.guess, err)
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				return fmt.Errorf("selftest %s/%s: position %d got %s, want %s",
					tc.solution, tc.guess, i, got[i], tc.expected[i])
			}
		}
	}
	return nil
}

// marks decodes a compact E/P/A string into a Mark slice.
func marks(s string) []Mark {
	out := make([]Mark, 0, len(s))
	for _, c := range s {
		switch c {
		case 'E':
			out = append(out, MarkExact)
		case 'P':
			out = append(out, MarkPresent)
		default:
			out = append(out, MarkAbsent)
		}
	}
	return out
}

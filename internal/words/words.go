// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Build a Vocabulary from embedded defaults and/or caller-provided files.
//   - Optionally augment the allowed set from a wordlists directory and from
//     common system dictionaries.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//
// Word lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Construction behavior (Load):
//   1. If AnswersFile and AllowedFile are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only AllowedFile is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set,
//      fall back to the embedded defaults.
//   Then, regardless of the case taken, merge WordlistsDir files and (when
//   enabled) system dictionaries into the allowed set only.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a-z); everything else is skipped.
//   • Lists are normalized to lowercase.
//   • A Vocabulary is immutable after Load returns.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// WordLen is the fixed word length accepted in every list.
const WordLen = 5

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_allowed.txt
var embeddedAllowed string

// systemDictPaths are common locations of plain-text word lists shipped with
// Unix-like systems. Missing or unreadable ones are skipped.
var systemDictPaths = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
	"/usr/dict/web2",
	"/usr/share/dict/web2",
}

// Options selects the sources a Vocabulary is built from.
type Options struct {
	AnswersFile  string // answers list, one word per line
	AllowedFile  string // allowed guesses, one word per line
	WordlistsDir string // directory of extra allowed-guess files
	SystemDict   bool   // also scan systemDictPaths for guesses
}

// Vocabulary is an immutable word set pair: canonical answers and the
// allowed guesses superset. Built once by Load and never mutated after,
// so lookups are safe from any goroutine.
type Vocabulary struct {
	answers    []string
	answersSet map[string]struct{}
	allowed    map[string]struct{} // answers ∪ guesses
}

// Load builds a Vocabulary from opts.
// Returns an error if the answers list ends up empty.
func Load(opts Options) (*Vocabulary, error) {
	var ansList, allowList []string

	switch {
	// Case 1: both lists provided
	case opts.AnswersFile != "" && opts.AllowedFile != "":
		var err error
		ansList, err = readWordFile(opts.AnswersFile)
		if err != nil {
			return nil, err
		}
		allowList, err = readWordFile(opts.AllowedFile)
		if err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case opts.AnswersFile == "" && opts.AllowedFile != "":
		var err error
		allowList, err = readWordFile(opts.AllowedFile)
		if err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 3: fallback to embedded defaults
	default:
		ansList = normalizeLines(embeddedAnswers)
		if embeddedAllowed != "" {
			allowList = normalizeLines(embeddedAllowed)
		} else {
			allowList = ansList
		}
	}

	v := &Vocabulary{
		answers:    ansList,
		answersSet: toSet(ansList),
		allowed:    toSet(ansList),
	}
	for _, w := range allowList {
		v.allowed[w] = struct{}{}
	}

	if opts.WordlistsDir != "" {
		if err := v.mergeDir(opts.WordlistsDir); err != nil {
			return nil, err
		}
	}
	if opts.SystemDict {
		for _, p := range systemDictPaths {
			// Best effort: systems without a dict are fine.
			if ws, err := readWordFile(p); err == nil {
				for _, w := range ws {
					v.allowed[w] = struct{}{}
				}
			}
		}
	}

	if len(v.answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	return v, nil
}

// mergeDir adds every valid word found in the regular files of dir to the
// allowed set. The directory must exist; individual unreadable files fail
// the load rather than silently shrinking the vocabulary.
func (v *Vocabulary) mergeDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		ws, err := readWordFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		for _, w := range ws {
			v.allowed[w] = struct{}{}
		}
	}
	return nil
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (v *Vocabulary) IsAllowed(w string) bool {
	_, ok := v.allowed[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (v *Vocabulary) IsAnswer(w string) bool {
	_, ok := v.answersSet[strings.ToLower(w)]
	return ok
}

// Answers returns a copy of the canonical answers list.
func (v *Vocabulary) Answers() []string {
	return append([]string{}, v.answers...)
}

// Stats returns counts of loaded words: (answers, allowed).
func (v *Vocabulary) Stats() (answersCount int, allowedCount int) {
	return len(v.answers), len(v.allowed)
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := normalize(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string
// into a slice of valid lowercase 5-letter words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w := normalize(line); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// normalize lowercases and trims a candidate word, returning "" when it is
// not exactly 5 ASCII letters.
func normalize(line string) string {
	w := strings.TrimSpace(strings.ToLower(line))
	if len(w) != WordLen || !isAlpha(w) {
		return ""
	}
	return w
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// internal/cli/wordle.go
//
// The wordle subcommand: one interactive round of the word game.
//
// Flags:
//   --word          force the solution (deterministic play / testing)
//   --seed          seed the random answer pick
//   --selftest      run the grader battery and exit (non-zero on mismatch)
//   --answers-file  answers list file (default $WORDS_ANSWERS_FILE)
//   --allowed-file  allowed-guess list file (default $WORDS_ALLOWED_FILE)
//   --wordlists-dir directory of extra allowed-guess files
//   --system-dict   also accept 5-letter words from system dictionaries

package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vsworlde/vsworlde/internal/game"
	"github.com/vsworlde/vsworlde/internal/store"
	"github.com/vsworlde/vsworlde/internal/words"
)

type wordleOptions struct {
	word         string
	seed         int64
	seedSet      bool
	answersFile  string
	allowedFile  string
	wordlistsDir string
	systemDict   bool
}

func newWordleCmd(app *App) *cobra.Command {
	var (
		opts     wordleOptions
		selftest bool
	)

	cmd := &cobra.Command{
		Use:   "wordle",
		Short: "Guess the hidden 5-letter word",
		RunE: func(cmd *cobra.Command, args []string) error {
			if selftest {
				if err := game.SelfTest(); err != nil {
					return &ExitError{Code: 2, Err: err}
				}
				fmt.Fprintln(app.Out, "All self-tests passed.")
				return nil
			}
			opts.seedSet = cmd.Flags().Changed("seed")
			if err := app.playWordle(opts); err != nil {
				if errors.Is(err, errQuit) {
					app.sayGoodbye()
					return nil
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.word, "word", "", "force the solution word (for testing)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for deterministic runs")
	cmd.Flags().BoolVar(&selftest, "selftest", false, "run internal self-tests and exit")
	cmd.Flags().StringVar(&opts.answersFile, "answers-file", envOr("WORDS_ANSWERS_FILE", ""),
		"path to an answers list, one word per line")
	cmd.Flags().StringVar(&opts.allowedFile, "allowed-file", envOr("WORDS_ALLOWED_FILE", ""),
		"path to an allowed-guess list, one word per line")
	cmd.Flags().StringVar(&opts.wordlistsDir, "wordlists-dir", "",
		"directory of extra allowed-guess files")
	cmd.Flags().BoolVar(&opts.systemDict, "system-dict", false,
		"augment allowed guesses from system dictionaries")
	return cmd
}

// playWordle runs one round: build the vocabulary, pick or force a solution,
// then prompt until the round is won, lost, or input ends.
func (a *App) playWordle(opts wordleOptions) error {
	vocab, err := words.Load(words.Options{
		AnswersFile:  opts.answersFile,
		AllowedFile:  opts.allowedFile,
		WordlistsDir: opts.wordlistsDir,
		SystemDict:   opts.systemDict,
	})
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	answersCount, allowedCount := vocab.Stats()
	log.Debug().Int("answers", answersCount).Int("allowed", allowedCount).Msg("word lists loaded")

	if opts.word != "" {
		w := strings.ToLower(strings.TrimSpace(opts.word))
		if len(w) != words.WordLen {
			return &ExitError{Code: 2, Err: fmt.Errorf("--word must be a %d-letter word", words.WordLen)}
		}
		opts.word = w
	}

	var rng *rand.Rand
	if opts.seedSet {
		rng = rand.New(rand.NewSource(opts.seed))
	}

	round, err := game.NewRound(game.RoundConfig{
		Vocab:    vocab,
		Solution: opts.word,
		Answers:  vocab.Answers(),
		Rand:     rng,
	})
	if err != nil {
		return err
	}
	log.Debug().Str("round", round.ID).Str("solution", round.Solution).Msg("round started")

	fmt.Fprintf(a.Out, "Welcome to vsworlde — guess the %d-letter word!\n", words.WordLen)
	fmt.Fprintf(a.Out, "You have %d guesses. Feedback: %s=correct, %s=present, %s=absent\n",
		round.MaxTries, glyphExact, glyphPresent, glyphAbsent)

	for attempt := 1; !round.Finished; attempt++ {
		marks, state, err := a.promptGuess(round, attempt)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.Out, renderMarks(marks))

		switch state {
		case game.StateWon:
			fmt.Fprintf(a.Out, "Nice! You guessed the word in %d guesses.\n", attempt)
		case game.StateLost:
			fmt.Fprintf(a.Out, "Out of guesses — the word was: %s\n", round.Solution)
		}
	}

	return a.record(store.Result{
		ID:       round.ID,
		Kind:     store.KindWordle,
		Won:      round.Won,
		Attempts: len(round.Guesses),
	})
}

// promptGuess re-prompts until the round accepts a guess. Rejections
// (length, alphabet, vocabulary) are explained and never consume a try.
func (a *App) promptGuess(round *game.Round, attempt int) ([]game.Mark, game.State, error) {
	for {
		guess, err := a.promptLine(fmt.Sprintf("Guess %d/%d: ", attempt, round.MaxTries))
		if err != nil {
			return nil, round.State(), err
		}
		marks, state, err := round.Apply(guess)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			fmt.Fprintf(a.Out, "Please enter a %d-letter word.\n", len(round.Solution))
		case errors.Is(err, game.ErrNotInVocabulary):
			fmt.Fprintln(a.Out, "Word not in allowed list. Try another word.")
		case err != nil:
			return nil, state, err
		default:
			return marks, state, nil
		}
	}
}

// record saves a finished game, logging rather than failing the command when
// the store rejects it.
func (a *App) record(r store.Result) error {
	if err := a.Results.Save(r); err != nil {
		log.Warn().Err(err).Msg("could not record result")
	}
	return nil
}

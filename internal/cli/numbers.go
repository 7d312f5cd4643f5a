// internal/cli/numbers.go
//
// The numbers subcommand: guess-the-number with difficulty tiers.
//
// Flags:
//   --tiers  YAML file replacing the built-in difficulty table
//   --seed   seed the target pick

package cli

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vsworlde/vsworlde/internal/numbers"
	"github.com/vsworlde/vsworlde/internal/store"
)

type numbersOptions struct {
	tiersFile string
	seed      int64
	seedSet   bool
}

func newNumbersCmd(app *App) *cobra.Command {
	var opts numbersOptions

	cmd := &cobra.Command{
		Use:   "numbers",
		Short: "Guess the hidden number",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			if err := app.playNumbers(opts); err != nil {
				if errors.Is(err, errQuit) {
					app.sayGoodbye()
					return nil
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.tiersFile, "tiers", "", "YAML file with custom difficulty tiers")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for deterministic runs")
	return cmd
}

// playNumbers loops: pick a difficulty, play a session, offer another game.
// Returns errQuit when input ends; 'q' at the difficulty prompt returns nil.
func (a *App) playNumbers(opts numbersOptions) error {
	tiers := numbers.DefaultTiers()
	if opts.tiersFile != "" {
		var err error
		tiers, err = numbers.LoadTiers(opts.tiersFile)
		if err != nil {
			return err
		}
		log.Debug().Int("tiers", len(tiers)).Str("file", opts.tiersFile).Msg("custom tiers loaded")
	}

	rng := newRand(opts)

	fmt.Fprintln(a.Out, "Welcome to Guess the Number!")
	for {
		tier, quit, err := a.promptTier(tiers)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if err := a.playNumberSession(tier, rng); err != nil {
			return err
		}

		again, err := a.promptLine("Play again? (y/n): ")
		if err != nil {
			return err
		}
		if strings.ToLower(again) != "y" {
			return nil
		}
	}
}

// promptTier shows the difficulty menu and re-prompts on bad choices.
func (a *App) promptTier(tiers []numbers.Tier) (numbers.Tier, bool, error) {
	for {
		fmt.Fprint(a.Out, "Choose difficulty:")
		for i, tier := range tiers {
			fmt.Fprintf(a.Out, " %d) %s (1-%d, %d tries)", i+1, tier.Name, tier.High, tier.Attempts)
		}
		fmt.Fprintln(a.Out)

		choice, err := a.promptLine(fmt.Sprintf("Enter 1-%d (or q to return): ", len(tiers)))
		if err != nil {
			return numbers.Tier{}, false, err
		}
		if strings.ToLower(choice) == "q" {
			return numbers.Tier{}, true, nil
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(tiers) {
			fmt.Fprintln(a.Out, "Invalid choice. Try again.")
			continue
		}
		return tiers[n-1], false, nil
	}
}

// playNumberSession runs one session to a terminal outcome.
// Non-numeric input re-prompts without consuming an attempt.
func (a *App) playNumberSession(tier numbers.Tier, rng *mrand.Rand) error {
	s := numbers.NewSession(tier, rng)
	log.Debug().Str("tier", tier.Name).Int("target", s.Target()).Msg("session started")

	fmt.Fprintf(a.Out, "I'm thinking of a number between 1 and %d.\n", tier.High)
	for !s.Finished() {
		line, err := a.promptLine(fmt.Sprintf("Attempt %d/%d. Your guess: ", s.Attempts()+1, tier.Attempts))
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(a.Out, "Please enter a whole number.")
			continue
		}

		switch s.Guess(n) {
		case numbers.Correct:
			fmt.Fprintf(a.Out, "Correct! You found it in %d attempts.\n", s.Attempts())
		case numbers.OutOfAttempts:
			fmt.Fprintf(a.Out, "Out of attempts! The number was %d.\n", s.Target())
		case numbers.TooLow:
			fmt.Fprintln(a.Out, "Too low.")
		case numbers.TooHigh:
			fmt.Fprintln(a.Out, "Too high.")
		}
	}

	return a.record(store.Result{
		ID:       sessionID(),
		Kind:     store.KindNumbers,
		Won:      s.Won(),
		Attempts: s.Attempts(),
	})
}

// sessionID returns a compact 16-hex-char identifier for a number session.
func sessionID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// newRand builds the target-pick source: seeded when --seed was given,
// otherwise seeded from crypto/rand so repeated sessions differ.
func newRand(opts numbersOptions) *mrand.Rand {
	if opts.seedSet {
		return mrand.New(mrand.NewSource(opts.seed))
	}
	var b [8]byte
	_, _ = rand.Read(b[:])
	return mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// internal/cli/root.go
//
// Command-line surface for the terminal games.
// Responsibilities:
//   - Root command: log-level flag, interactive menu when run bare.
//   - Shared App state: input reader, output writer, session result store.
//   - Graceful exit on interrupt/end-of-input at any prompt.
//
// Subcommands live in wordle.go and numbers.go.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vsworlde/vsworlde/internal/store"
)

// errQuit signals a user abort (end-of-input or an explicit quit choice).
// It is handled at the outermost loop and never reaches the user as an error.
var errQuit = errors.New("quit")

// ExitError carries a specific process exit code through cobra's error
// return. main inspects it with errors.As.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// App bundles the I/O and session state shared by every command.
type App struct {
	In      *bufio.Reader
	Out     io.Writer
	Results store.Store
}

// NewApp constructs an App reading stdin and writing stdout.
func NewApp() *App {
	return &App{
		In:      bufio.NewReader(os.Stdin),
		Out:     os.Stdout,
		Results: store.NewMemoryStore(),
	}
}

// NewRootCmd builds the vsworlde command tree.
func NewRootCmd(app *App) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "vsworlde",
		Short: "Terminal word and number guessing games",
		Long: `vsworlde hosts two small terminal games:

  wordle   guess a hidden 5-letter word in 6 tries, with tile feedback
  numbers  guess a hidden number, with difficulty tiers

Run without a subcommand for an interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if lvl, err := zerolog.ParseLevel(logLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runMenu()
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", envOr("LOG_LEVEL", "warn"),
		"log level (trace, debug, info, warn, error)")

	root.AddCommand(newWordleCmd(app))
	root.AddCommand(newNumbersCmd(app))
	return root
}

// HandleInterrupts prints a goodbye and exits when the process receives
// SIGINT/SIGTERM at a prompt. Interactive reads block on stdin, so this is
// the terminal user-abort path rather than a cancellation point.
func HandleInterrupts() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nGoodbye.")
		os.Exit(1)
	}()
}

// runMenu is the bare-invocation interactive menu. Loops until the player
// quits, then prints the session summary.
func (a *App) runMenu() error {
	fmt.Fprintln(a.Out, "vsworlde — terminal games")
	for {
		fmt.Fprintln(a.Out, "\nMenu:\n  1) Wordle\n  2) Guess the Number\n  q) Quit")
		choice, err := a.promptLine("Choose an option: ")
		if err != nil {
			a.sayGoodbye()
			return nil
		}
		switch strings.ToLower(choice) {
		case "1":
			if err := a.playWordle(wordleOptions{}); err != nil {
				if errors.Is(err, errQuit) {
					a.sayGoodbye()
					return nil
				}
				return err
			}
		case "2":
			if err := a.playNumbers(numbersOptions{}); err != nil {
				if errors.Is(err, errQuit) {
					a.sayGoodbye()
					return nil
				}
				return err
			}
		case "q":
			a.sayGoodbye()
			return nil
		default:
			fmt.Fprintln(a.Out, "Unknown option. Please choose 1, 2 or q.")
		}
	}
}

// promptLine writes prompt and reads one trimmed line.
// Returns errQuit on end-of-input.
func (a *App) promptLine(prompt string) (string, error) {
	fmt.Fprint(a.Out, prompt)
	line, err := a.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			// Final line without a trailing newline still counts.
			return strings.TrimSpace(line), nil
		}
		log.Debug().Err(err).Msg("input closed")
		return "", errQuit
	}
	return strings.TrimSpace(line), nil
}

// sayGoodbye prints the session summary (when anything was played) and a
// farewell.
func (a *App) sayGoodbye() {
	if s := a.Results.Summary(); s.Played > 0 {
		fmt.Fprintf(a.Out, "Session: %d played, %d won.\n", s.Played, s.Won)
	}
	fmt.Fprintln(a.Out, "Thanks for playing — goodbye!")
}

// envOr returns the environment value for k, or def when unset.
func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

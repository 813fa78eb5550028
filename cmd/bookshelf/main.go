// Package main provides the bookshelf CLI entry point: an interactive
// terminal tool for browsing, searching, and checking out books from a
// small personal catalog persisted to a JSON file.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bookshelf/cmd/bookshelf/ui"
	"bookshelf/internal/logging"
	"bookshelf/internal/session"
	"bookshelf/internal/store"
)

const version = "1.0.0"

// rootCmd launches the interactive session. The catalog path is
// fixed; there is no flag or environment surface that moves it.
var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "bookshelf - personal library management tool",
	Long: `bookshelf is an interactive console tool for a small personal book
catalog: browse the shelf, search by title, author, or ISBN, and check
books out.

The catalog lives in library.json in the working directory. It is
written when a new catalog is seeded, after every successful checkout,
and again at clean exit. Session logs go to bookshelf.log, since the
terminal belongs to the UI.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bookshelf version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bookshelf %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// runSession wires the store, session, and UI together, runs the
// program to completion, and performs the shutdown save.
func runSession() error {
	logger, err := logging.New(logging.DefaultPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	st := store.NewFileStore(store.DefaultPath, logger.Named("store"))
	sess := session.New(st, logger.Named("session"))

	program := tea.NewProgram(ui.New(sess), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	// A load failure aborts startup; it reaches the user here, after
	// the terminal has been restored.
	if err := sess.Err(); err != nil {
		return err
	}

	// Final save at clean shutdown. Checkouts were already persisted
	// as they happened, so this is a last consistency pass; a failure
	// here must not be silent.
	if lib := sess.Library(); lib != nil {
		if err := st.Save(lib); err != nil {
			return fmt.Errorf("save catalog on exit: %w", err)
		}
		logger.Info("catalog saved on exit", zap.Int("books", len(lib.Books)))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

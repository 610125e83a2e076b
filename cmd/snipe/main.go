package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lucaspeixotot/snipe/internal/config"
	"github.com/lucaspeixotot/snipe/internal/history"
	"github.com/lucaspeixotot/snipe/internal/logging"
	"github.com/lucaspeixotot/snipe/internal/theme"
	"github.com/lucaspeixotot/snipe/internal/tui"
)

// exitCancelled mirrors the shell convention for interrupted interactive
// commands, so scripts can tell "picked nothing" from "broke".
const exitCancelled = 130

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("snipe: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		alphabet  string
		maxRows   int
		noHistory bool
		debug     bool
	)
	cmd := &cobra.Command{
		Use:   "snipe [file]",
		Short: "Pick one line by hint tag",
		Long: `Reads candidate lines from stdin or a file, labels each visible row with a
short keystroke tag, and prints the picked line to stdout.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return run(source, alphabet, maxRows, noHistory, debug)
		},
	}
	cmd.Flags().StringVar(&alphabet, "alphabet", "", "override the tag alphabet")
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "override rows per page")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "skip selection history")
	cmd.Flags().BoolVar(&debug, "debug", false, "write a debug log")
	return cmd
}

func run(source, alphabetFlag string, maxRowsFlag int, noHistory, debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if alphabetFlag != "" {
		cfg.Picker.Alphabet = alphabetFlag
	}
	if maxRowsFlag > 0 {
		cfg.Picker.MaxRows = maxRowsFlag
	}
	if noHistory {
		cfg.History.Enabled = false
	}

	alphabet, dups, err := cfg.BuildAlphabet()
	if err != nil {
		return err
	}
	if len(dups) > 0 {
		fmt.Fprintf(os.Stderr, "snipe: alphabet has duplicate symbols %q, using each once\n", string(dups))
	}

	labels, err := readLines(source)
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return fmt.Errorf("no items to pick")
	}

	logger, err := logging.New(cfg.Log.Path, debug)
	if err != nil {
		return err
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			logger.WithError(err).Warn("history unavailable")
			store = nil
		} else {
			defer store.Close()
			sorted, err := store.Sort(labels)
			if err != nil {
				logger.WithError(err).Warn("history sort failed")
			} else {
				labels = sorted
			}
		}
	}

	th, err := theme.Load(cfg.UI.ThemePath)
	if err != nil {
		logger.WithError(err).Warn("theme fell back to defaults")
	}

	model := tui.New(labels, tui.Options{
		Alphabet:  alphabet,
		NavKeys:   cfg.NavKeys(),
		FilterKey: cfg.Keys.Filter,
		MaxRows:   cfg.Picker.MaxRows,
		Theme:     th,
		Log:       logger,
	})

	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		// stdin is the item pipe, not the keyboard
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("open tty: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return err
	}
	m := final.(*tui.Model)
	if err := m.Err(); err != nil {
		return err
	}
	if m.Cancelled() {
		os.Exit(exitCancelled)
	}
	idx, ok := m.Choice()
	if !ok {
		os.Exit(exitCancelled)
	}
	if store != nil {
		if err := store.Touch(labels[idx]); err != nil {
			logger.WithError(err).Warn("history record failed")
		}
	}
	fmt.Println(labels[idx])
	return nil
}

// readLines collects non-empty candidate lines from a file, or stdin when
// no file is given.
func readLines(source string) ([]string, error) {
	var r io.Reader = os.Stdin
	if source != "" {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

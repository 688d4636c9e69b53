// Command sudoku-dlx solves Sudoku boards of block dimension 2 or 3 by
// reducing them to exact cover and running the dancing-links search. All
// solutions are printed, not just the first.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/exactcover/internal/sudoku"
)

func newRootCmd() *cobra.Command {
	var levelStr string
	cmd := &cobra.Command{
		Use:   "sudoku-dlx dim board [print_as_string=T/F]",
		Short: "Solve a Sudoku board via exact cover",
		Long: `Solve a Sudoku board of block dimension dim (board side dim^2).

board is a string representation of the dim^2 by dim^2 board, read from
left-to-right and top-to-bottom, with 0 representing an empty entry. For
example, the following board:

    _ 7 _ | 2 8 5 | _ 1 _
    _ _ 8 | 9 _ 3 | 5 _ _
    _ _ _ | _ _ _ | _ _ _
    ------+-------+------
    5 _ _ | _ 1 _ | _ _ 8
    _ 1 _ | _ _ _ | _ 9 _
    9 _ _ | _ 4 _ | _ _ 3
    ------+-------+------
    _ _ _ | _ _ _ | _ _ _
    _ _ 2 | 4 _ 8 | 6 _ _
    _ 9 _ | 6 3 2 | _ 8 _

has string representation
"070285010008903500000000000500010008010000090900040003000000000002408600090632080".

If print_as_string is F (the default), each solution is printed as an
easy-to-read bordered grid; with T, as a string in the same format as the
board argument.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, newLogger(levelStr))
		},
	}
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	return cmd
}

func newLogger(levelStr string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func run(cmd *cobra.Command, args []string, logger *slog.Logger) error {
	dim, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("argument dim must be an integer, got %q", args[0])
	}
	asString := len(args) > 2 && args[2] == "T"

	p, err := sudoku.Build(args[1], dim)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	start := time.Now()
	count := 0
	for sol := range p.Solutions(cmd.Context()) {
		count++
		grid := p.Decode(sol)
		if asString {
			fmt.Fprintln(out, sudoku.FlatString(grid))
		} else {
			fmt.Fprintln(out, "SOLUTION:")
			fmt.Fprintln(out, sudoku.GridString(grid, dim))
		}
	}
	st := p.Stats()
	logger.Debug("search finished",
		"solutions", count,
		"nodes", st.Nodes,
		"dur", time.Since(start).Round(time.Millisecond),
	)
	if count == 0 {
		logger.Info("no solution", "dim", dim)
	}
	return nil
}

func main() {
	cmd := newRootCmd()
	cmd.SetOut(os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

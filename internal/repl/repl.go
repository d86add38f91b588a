package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/leengari/mini-dataframe/internal/engine"
	"github.com/leengari/mini-dataframe/internal/executor"
	"github.com/leengari/mini-dataframe/internal/parser"
)

// Start reads commands from in until quit or end of input, printing
// results and errors to out. The engine is closed on return.
func Start(eng *engine.Engine, in io.Reader, out io.Writer) error {
	defer eng.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	fmt.Fprintln(out, "dfshell: delimited-text dataframes")
	fmt.Fprintln(out, "Type 'help' for commands, 'quit' to leave.")

	for {
		fmt.Fprint(out, eng.Prompt())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(line), "help") {
			printHelp(out)
			continue
		}

		result, err := eng.Execute(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		PrintResult(out, result)
		if result.Quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		slog.Error("input read failed", "error", err)
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	for _, line := range parser.Usage() {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w, "  <table>   switch the active table")
}

func PrintResult(w io.Writer, res *executor.Result) {
	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}

	if len(res.Rows) > 0 || len(res.Columns) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

		// Header - show type if metadata available
		for i, col := range res.Columns {
			if i < len(res.Metadata) && res.Metadata[i].Type != "" {
				// Show column with type
				fmt.Fprintf(tw, "%s (%s)", col, res.Metadata[i].Type)
			} else {
				// Just column name
				fmt.Fprintf(tw, "%s", col)
			}
			if i < len(res.Columns)-1 {
				fmt.Fprintf(tw, "\t")
			}
		}
		fmt.Fprintln(tw)

		// Separator
		for i := range res.Columns {
			fmt.Fprintf(tw, "---")
			if i < len(res.Columns)-1 {
				fmt.Fprintf(tw, "\t")
			}
		}
		fmt.Fprintln(tw)

		// Rows
		for _, row := range res.Rows {
			for i := range res.Columns {
				val, ok := row.Get(i)
				if !ok {
					fmt.Fprintf(tw, "NULL")
				} else {
					fmt.Fprintf(tw, "%s", val)
				}
				if i < len(res.Columns)-1 {
					fmt.Fprintf(tw, "\t")
				}
			}
			fmt.Fprintln(tw)
		}
		tw.Flush()
	}
}

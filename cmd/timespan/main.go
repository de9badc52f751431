package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rrgmc/timespan"
)

var version = "dev" // set via -ldflags

var output string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "timespan <duration string>...",
		Short: "Parse free-form duration strings into exact seconds and nanoseconds",
		Long: `timespan parses human-written duration strings such as "1 day -1 hour" or
"15days20seconds100milliseconds" into an exact amount of whole seconds and
sub-second nanoseconds. All arguments are joined into a single input.
Inputs starting with a negative value must be preceded by "--".`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    run,
		Version: version,
	}
	root.Flags().StringVarP(&output, "output", "o", "human", "Output format: human, seconds, nanos, go, json")
	root.SilenceUsage = true
	root.SilenceErrors = true
	return root
}

func run(cmd *cobra.Command, args []string) error {
	span, err := timespan.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	out, err := formatSpan(span, output)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func formatSpan(span timespan.Span, format string) (string, error) {
	switch format {
	case "human":
		seconds := humanize.BigComma(new(big.Int).SetUint64(span.Seconds))
		if span.Nanoseconds == 0 {
			return fmt.Sprintf("%s seconds", seconds), nil
		}
		return fmt.Sprintf("%s seconds %s nanoseconds",
			seconds, humanize.Comma(int64(span.Nanoseconds))), nil
	case "seconds":
		return span.String(), nil
	case "nanos":
		total := new(big.Int).SetUint64(span.Seconds)
		total.Mul(total, big.NewInt(1_000_000_000))
		total.Add(total, big.NewInt(int64(span.Nanoseconds)))
		return total.String(), nil
	case "go":
		d, err := span.Duration()
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case "json":
		out, err := json.Marshal(struct {
			Seconds     uint64 `json:"seconds"`
			Nanoseconds uint32 `json:"nanoseconds"`
		}{span.Seconds, span.Nanoseconds})
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

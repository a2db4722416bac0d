package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.trai.ch/streak/internal/adapters/svg"
	"go.trai.ch/zerr"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <username>",
		Short: "Print the contribution streak of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			stats, err := c.app.Stats(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(stats, "", "  ")
				if err != nil {
					return zerr.Wrap(err, "failed to encode stats")
				}
				_, _ = fmt.Fprintln(out, string(data))
				return nil
			}

			_, _ = fmt.Fprintf(out, "Total contributions: %s%s\n",
				humanize.Comma(int64(stats.TotalContributions)), since(stats.FirstContribution))
			_, _ = fmt.Fprintf(out, "Current streak:      %s%s\n",
				days(stats.CurrentStreak), within(svg.FormatRange(stats.CurrentStreakStart, stats.CurrentStreakEnd)))
			_, _ = fmt.Fprintf(out, "Longest streak:      %s%s\n",
				days(stats.LongestStreak), within(svg.FormatRange(stats.LongestStreakStart, stats.LongestStreakEnd)))
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the stats as JSON")
	return cmd
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return humanize.Comma(int64(n)) + " days"
}

func since(first string) string {
	if first == "" {
		return ""
	}
	return " (since " + first + ")"
}

func within(r string) string {
	if r == "" {
		return ""
	}
	return " (" + r + ")"
}

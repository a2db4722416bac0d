package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card <username>",
		Short: "Render the streak card of a user as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			theme, _ := flags.GetString("theme")
			hideBorder, _ := flags.GetBool("hide-border")
			titleColor, _ := flags.GetString("title-color")
			textColor, _ := flags.GetString("text-color")
			bgColor, _ := flags.GetString("bg-color")
			borderColor, _ := flags.GetString("border-color")
			output, _ := flags.GetString("output")

			opts := domain.CardOptions{
				Theme:       theme,
				TitleColor:  titleColor,
				TextColor:   textColor,
				BgColor:     bgColor,
				BorderColor: borderColor,
			}
			if hideBorder {
				opts.HideBorder = "true"
			}

			card, err := c.app.Card(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), card)
				return nil
			}
			if err := os.WriteFile(output, []byte(card), 0o644); err != nil { //nolint:gosec // cards are public images
				return zerr.With(zerr.Wrap(err, "failed to write card"), "path", output)
			}
			return nil
		},
	}
	cmd.Flags().String("theme", domain.DefaultTheme, "Card theme")
	cmd.Flags().Bool("hide-border", false, "Hide the card border")
	cmd.Flags().String("title-color", "", "Title colour as hex without '#'")
	cmd.Flags().String("text-color", "", "Text colour as hex without '#'")
	cmd.Flags().String("bg-color", "", "Background colour as hex without '#'")
	cmd.Flags().String("border-color", "", "Border colour as hex without '#'")
	cmd.Flags().StringP("output", "o", "", "Write the card to a file instead of stdout")
	return cmd
}

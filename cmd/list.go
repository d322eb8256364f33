package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/techfolio/internal/content"
	"github.com/Zachkp/techfolio/internal/page"
	"github.com/Zachkp/techfolio/internal/section"
	"github.com/Zachkp/techfolio/internal/tui"
)

var listWidth int

var listCmd = &cobra.Command{
	Use:       "list [code|tips|links|humor]",
	Short:     "Print one section of the page",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"code", "tips", "links", "humor"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s := section.Initial
		if len(args) == 1 {
			var err error
			if s, err = section.Parse(args[0]); err != nil {
				return err
			}
		}

		catalog, err := content.Default()
		if err != nil {
			return err
		}
		p := page.New(catalog, nil)
		if err := p.Select(s); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, s.TabLabel())
		fmt.Fprintln(out)
		fmt.Fprintln(out, tui.RenderPanel(p.View().VisiblePanel(), listWidth))
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listWidth, "width", "w", 80, "output width")
	rootCmd.AddCommand(listCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zachkp/techfolio/internal/clipboard"
	"github.com/Zachkp/techfolio/internal/content"
	"github.com/Zachkp/techfolio/internal/logger"
	"github.com/Zachkp/techfolio/internal/page"
	"github.com/Zachkp/techfolio/internal/section"
	"github.com/Zachkp/techfolio/internal/tui"
)

var tuiSection string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the portfolio page in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := content.Default()
		if err != nil {
			return err
		}

		// The alternate screen owns the terminal; keep log output off it.
		p := page.New(catalog, clipboard.NewCopier(clipboard.System{}, nil, logger.NewNop()))
		if tuiSection != "" {
			s, err := section.Parse(tuiSection)
			if err != nil {
				return err
			}
			if err := p.Select(s); err != nil {
				return err
			}
		}

		m := tui.New(p, tui.Options{
			ToastDuration: appConfig.ToastDuration,
			GithubURL:     appConfig.GithubURL,
			Email:         appConfig.ContactEmail,
			Website:       appConfig.Website,
		})
		if err := tui.Run(m); err != nil {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("the terminal UI requires a real terminal")
			}
			return fmt.Errorf("error running terminal UI: %w", err)
		}
		return nil
	},
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiSection, "section", "s", "", "initial section: code, tips, links or humor")
	rootCmd.AddCommand(tuiCmd)
}

package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Zachkp/techfolio/internal/clipboard"
	"github.com/Zachkp/techfolio/internal/content"
	"github.com/Zachkp/techfolio/internal/page"
	"github.com/Zachkp/techfolio/internal/section"
)

var errCopyFailed = errors.New("copy failed")

var copyCmd = &cobra.Command{
	Use:   "copy <number|title>",
	Short: "Copy a code snippet to the system clipboard",
	Long: `Copy places a code snippet on the system clipboard. Snippets are picked
by their position (1-based, as in "techfolio list code") or by title.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := content.Default()
		if err != nil {
			return err
		}

		index, err := snippetIndex(catalog, args[0])
		if err != nil {
			return err
		}

		p := page.New(catalog, clipboard.NewCopier(clipboard.System{}, nil, log))
		ch, err := p.Copy(cmd.Context(), section.Code, index)
		if err != nil {
			return err
		}

		res := <-ch
		if !res.OK() {
			fmt.Fprintln(cmd.ErrOrStderr(), res.Notification.Message)
			return errCopyFailed
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Notification.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

// snippetIndex resolves a 1-based position or a title to a catalog index.
func snippetIndex(c *content.Catalog, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if _, ok := c.Snippet(n - 1); !ok {
			return 0, fmt.Errorf("%w: %d (have %d)", page.ErrNoSuchSnippet, n, len(c.Snippets()))
		}
		return n - 1, nil
	}
	i, _, ok := c.SnippetByTitle(arg)
	if !ok {
		return 0, fmt.Errorf("%w: %q", page.ErrNoSuchSnippet, arg)
	}
	return i, nil
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/brogergvhs/teamx/internal/providers"
	"github.com/brogergvhs/teamx/internal/providers/team1x1"
	"github.com/brogergvhs/teamx/internal/ui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagRange string
	flagList  string
)

func init() {
	detailsCmd := &cobra.Command{
		Use:   "details <series-url>",
		Short: "Show the details of a series",
		Args:  cobra.ExactArgs(1),
		RunE:  runDetails,
	}

	chaptersCmd := &cobra.Command{
		Use:   "chapters <series-url>",
		Short: "List the chapters of a series, following every chapter-list page",
		Args:  cobra.ExactArgs(1),
		RunE:  runChapters,
	}
	chaptersCmd.Flags().StringVar(&flagRange, "range", "", "only chapters in this 1-based range (e.g. 5-12)")
	chaptersCmd.Flags().StringVar(&flagList, "list", "", "only these 1-based chapter positions (e.g. 1,3,5)")

	pagesCmd := &cobra.Command{
		Use:   "pages <chapter-url>",
		Short: "List the page images of a chapter",
		Args:  cobra.ExactArgs(1),
		RunE:  runPages,
	}

	rootCmd.AddCommand(detailsCmd, chaptersCmd, pagesCmd)
}

func runDetails(cmd *cobra.Command, args []string) error {
	mangaURL, err := relativeURL(args[0])
	if err != nil {
		return err
	}

	sess, err := newSession(team1x1.Options{})
	if err != nil {
		return err
	}

	return run(func(ctx context.Context) error {
		d, err := sess.source.Details(ctx, mangaURL)
		if err != nil {
			return err
		}

		return writeDetails(os.Stdout, *d, sess.json())
	})
}

func runChapters(cmd *cobra.Command, args []string) error {
	mangaURL, err := relativeURL(args[0])
	if err != nil {
		return err
	}

	var spinner *ui.PageSpinner
	sess, err := newSession(team1x1.Options{
		OnChapterPage: func(n int, pageURL string) {
			if spinner != nil {
				spinner.Page(n, pageURL)
			}
		},
	})
	if err != nil {
		return err
	}

	if !sess.json() && !sess.cfg.Debug && isatty.IsTerminal(os.Stderr.Fd()) {
		spinner = ui.NewPageSpinner("Collecting chapters")
	}

	return run(func(ctx context.Context) error {
		all, err := sess.source.Chapters(ctx, mangaURL)
		if spinner != nil {
			spinner.Done()
		}
		if err != nil {
			return err
		}

		selected := providers.Filter(all, flagRange, flagList)
		if len(selected) == 0 && len(all) > 0 {
			return fmt.Errorf("no chapters match the selection (found %d chapters)", len(all))
		}

		sess.log.Debugf("%d chapters, %d selected\n", len(all), len(selected))
		return writeChapters(os.Stdout, selected, sess.json())
	})
}

func runPages(cmd *cobra.Command, args []string) error {
	chapterURL, err := relativeURL(args[0])
	if err != nil {
		return err
	}

	sess, err := newSession(team1x1.Options{})
	if err != nil {
		return err
	}

	return run(func(ctx context.Context) error {
		pages, err := sess.source.Pages(ctx, chapterURL)
		if err != nil {
			return err
		}

		if len(pages) == 0 {
			sess.log.Warnf("no page images found at %s\n", chapterURL)
		}
		return writePages(os.Stdout, pages, sess.json())
	})
}

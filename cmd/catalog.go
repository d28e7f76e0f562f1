package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/teamx/internal/providers"
	"github.com/brogergvhs/teamx/internal/providers/team1x1"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	flagPage int
	flagPick bool
)

func init() {
	popularCmd := &cobra.Command{
		Use:   "popular",
		Short: "List the series catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListing(func(ctx context.Context, src *team1x1.Source) (*providers.MangasPage, error) {
				return src.PopularManga(ctx, flagPage)
			})
		},
	}
	popularCmd.Flags().IntVar(&flagPage, "page", 1, "catalog page number")

	latestCmd := &cobra.Command{
		Use:   "latest",
		Short: "List the latest updated series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListing(func(ctx context.Context, src *team1x1.Source) (*providers.MangasPage, error) {
				return src.LatestUpdates(ctx, flagPage)
			})
		},
	}
	latestCmd.Flags().IntVar(&flagPage, "page", 1, "page number (the site serves a single latest page)")

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search series by title",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}
	searchCmd.Flags().BoolVar(&flagPick, "pick", false, "choose a result interactively and show its details")

	rootCmd.AddCommand(popularCmd, latestCmd, searchCmd)
}

func runListing(fetch func(context.Context, *team1x1.Source) (*providers.MangasPage, error)) error {
	if flagPage < 1 {
		return fmt.Errorf("--page must be 1 or greater")
	}

	sess, err := newSession(team1x1.Options{})
	if err != nil {
		return err
	}

	return run(func(ctx context.Context) error {
		page, err := fetch(ctx, sess.source)
		if err != nil {
			return err
		}

		sess.log.Debugf("%d entries, next page: %t\n", len(page.Entries), page.HasNextPage)
		return writeMangasPage(os.Stdout, page, sess.json())
	})
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("empty search query")
	}

	sess, err := newSession(team1x1.Options{})
	if err != nil {
		return err
	}

	return run(func(ctx context.Context) error {
		page, err := sess.source.Search(ctx, query)
		if err != nil {
			return err
		}

		if !flagPick {
			return writeMangasPage(os.Stdout, page, sess.json())
		}
		if len(page.Entries) == 0 {
			sess.log.Warnf("no results for %q\n", query)
			return nil
		}

		items := make([]string, 0, len(page.Entries))
		for _, e := range page.Entries {
			items = append(items, pickerLabel(e))
		}

		prompt := promptui.Select{
			Label: "Select series",
			Items: items,
			Size:  10,
		}

		idx, _, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("selection cancelled")
		}

		chosen := page.Entries[idx]
		d, err := sess.source.Details(ctx, chosen.URL)
		if err != nil {
			return err
		}

		if !sess.json() {
			_, _ = dimStyle.Println(chosen.URL)
		}
		return writeDetails(os.Stdout, *d, sess.json())
	})
}

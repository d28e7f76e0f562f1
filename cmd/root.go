package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool

	flagOutput          string
	flagBaseURL         string
	flagUserAgent       string
	flagCookie          string
	flagCookieFile      string
	flagTimeout         time.Duration
	flagMaxChapterPages int
)

var rootCmd = &cobra.Command{
	Use:           "teamx",
	Short:         "Browse the team1x1 (teamx.fun) manga catalog from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging")
	pf.BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")

	pf.StringVarP(&flagOutput, "output", "o", "", "output format: table or json")
	pf.StringVar(&flagBaseURL, "base-url", "", "site root, e.g. a mirror of https://teamx.fun")
	pf.StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	pf.StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	pf.StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	pf.DurationVar(&flagTimeout, "timeout", 0, "HTTP timeout per request (e.g. 20s)")
	pf.IntVar(&flagMaxChapterPages, "max-chapter-pages", 0, "stop following chapter-list pages after this many")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

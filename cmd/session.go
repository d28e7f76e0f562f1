package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/brogergvhs/teamx/internal/config"
	"github.com/brogergvhs/teamx/internal/providers/team1x1"
	"github.com/brogergvhs/teamx/internal/ui"
	"github.com/brogergvhs/teamx/internal/util"
)

// session is what every browsing command needs: the merged config, a
// logger and a ready adapter.
type session struct {
	cfg    *config.Config
	log    *ui.Logger
	source *team1x1.Source
}

func loadConfig() (*config.Config, string, error) {
	return config.LoadMerged(config.Options{
		IgnoreConfig:    flagIgnoreConfig,
		Debug:           flagDebug,
		BaseURL:         flagBaseURL,
		UserAgent:       flagUserAgent,
		Cookie:          flagCookie,
		CookieFile:      flagCookieFile,
		Timeout:         flagTimeout,
		MaxChapterPages: flagMaxChapterPages,
		Output:          flagOutput,
	})
}

func newSession(opts team1x1.Options) (*session, error) {
	cfg, usedPath, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("config: %s\n", usedPath)

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		BypassCloudflare: cfg.BypassCloudflare,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return nil, err
	}

	opts.BaseURL = cfg.BaseURL
	opts.MaxChapterPages = cfg.MaxChapterPages
	opts.DebugLogger = logSvc

	return &session{
		cfg:    cfg,
		log:    logSvc,
		source: team1x1.New(client, opts),
	}, nil
}

func (s *session) json() bool {
	return s.cfg.Output == "json"
}

// run executes fn under a context cancelled on interrupt.
func run(fn func(ctx context.Context) error) error {
	ctx, cancel := util.InterruptContext(context.Background())
	defer cancel()

	return fn(ctx)
}

// relativeURL accepts either a stored relative URL or a full site link.
func relativeURL(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("missing url")
	}

	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return util.StripDomain(arg), nil
	}
	if !strings.HasPrefix(arg, "/") {
		arg = "/" + arg
	}

	return arg, nil
}

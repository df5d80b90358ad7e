package cmd

import (
	"fmt"
	"net/http"

	"github.com/brogergvhs/questgraph/internal/config"
	"github.com/brogergvhs/questgraph/internal/ui"
	"github.com/brogergvhs/questgraph/internal/util"
)

// loadConfig layers the persistent flags on top of opts and loads the
// active profile.
func loadConfig(opts config.Options) (*config.Config, string, error) {
	opts.IgnoreConfig = flagIgnoreConfig
	opts.Debug = flagDebug
	opts.Cookie = flagCookie
	opts.CookieFile = flagCookieFile
	opts.UserAgent = flagUserAgent
	opts.Cloudflare = flagCloudflare
	opts.Timeout = flagTimeout

	cfg, used, err := config.LoadMerged(opts)
	if err != nil {
		return nil, "", fmt.Errorf("load config: %w", err)
	}
	return cfg, used, nil
}

func newHTTPClient(cfg *config.Config, log *ui.Logger) (*http.Client, error) {
	return util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     cfg.Timeout,
		UserAgent:   cfg.UserAgent,
		Cookie:      cfg.Cookie,
		CookieFile:  cfg.CookieFile,
		Cloudflare:  cfg.Cloudflare,
		DebugLogger: log,
	})
}

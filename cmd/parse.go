package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/brogergvhs/questgraph/internal/config"
	"github.com/brogergvhs/questgraph/internal/export"
	"github.com/brogergvhs/questgraph/internal/questreq"
	"github.com/brogergvhs/questgraph/internal/ui"

	"github.com/spf13/cobra"
)

var flagParseFormat string

func init() {
	parseCmd := &cobra.Command{
		Use:   "parse <file|url>",
		Short: "Parse the requirement table of a single saved or live wiki page",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}

	parseCmd.Flags().StringVar(&flagClass, "class", "", "CSS class of the requirement table")
	parseCmd.Flags().StringVar(&flagParseFormat, "format", "table", "output format (table, "+strings.Join(export.Formats, ", ")+")")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(config.Options{TableClass: flagClass})
	if err != nil {
		return err
	}
	logSvc := ui.NewLogger(cfg.Debug)

	rc, err := openPage(cmd.Context(), args[0], cfg, logSvc)
	if err != nil {
		return err
	}
	defer func() {
		_ = rc.Close()
	}()

	res, err := questreq.Parse(rc, cfg.TableClass)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	if !res.Found {
		logSvc.Warnf("No table with class %q in %s", cfg.TableClass, args[0])
		return nil
	}
	for _, a := range res.Tree.Anomalies() {
		logSvc.Warnf("Empty requirement label under %q (item %d)", a.Parent, a.Position)
	}
	for _, d := range res.Duplicates {
		logSvc.Warnf("%q listed with %v and %v, keeping both", d.Label, d.First, d.Second)
	}

	out := cmd.OutOrStdout()
	if flagParseFormat == "table" {
		ui.PrintAdjacency(out, res.Adjacency.Keys(), func(k string) []string {
			return res.Adjacency[k]
		})
		return nil
	}

	exporter, err := export.New(flagParseFormat)
	if err != nil {
		return err
	}
	return exporter.Export(out, export.Data{Adjacency: res.Adjacency})
}

func openPage(ctx context.Context, src string, cfg *config.Config, log *ui.Logger) (io.ReadCloser, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return os.Open(src)
	}

	client, err := newHTTPClient(cfg, log)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("GET %s: HTTP %d", src, resp.StatusCode)
	}

	return resp.Body, nil
}

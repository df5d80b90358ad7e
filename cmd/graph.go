package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brogergvhs/questgraph/internal/cache"
	"github.com/brogergvhs/questgraph/internal/config"
	"github.com/brogergvhs/questgraph/internal/export"
	"github.com/brogergvhs/questgraph/internal/graph"
	"github.com/brogergvhs/questgraph/internal/questreq"
	"github.com/brogergvhs/questgraph/internal/quests"
	"github.com/brogergvhs/questgraph/internal/scrape"
	"github.com/brogergvhs/questgraph/internal/status"
	"github.com/brogergvhs/questgraph/internal/ui"
	"github.com/brogergvhs/questgraph/internal/util"
	"github.com/brogergvhs/questgraph/internal/wiki"

	"github.com/spf13/cobra"
)

var (
	// selection
	flagUser       string
	flagQuest      string
	flagList       string
	flagIncomplete bool

	// runtime
	flagOutput  string
	flagFormat  string
	flagWorkers int
	flagDryRun  bool
	flagNoCache bool
	flagClass   string
)

func init() {
	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "Scrape quest requirements and export the prerequisite graph. Uses the defaults from the selected config, overwritten by CLI flags",
		Args:  cobra.NoArgs,
		RunE:  runGraph,
	}

	// selection
	graphCmd.Flags().StringVar(&flagUser, "user", "", "RuneScape player name for the quest status feed")
	graphCmd.Flags().StringVar(&flagQuest, "quest", "", "graph a single quest by title")
	graphCmd.Flags().StringVar(&flagList, "list", "", "graph specific quests (comma separated titles)")
	graphCmd.Flags().BoolVar(&flagIncomplete, "incomplete", false, "only quests the player has not completed")

	// runtime
	graphCmd.Flags().StringVar(&flagOutput, "output", "", "output file")
	graphCmd.Flags().StringVar(&flagFormat, "format", "", "output format ("+strings.Join(export.Formats, ", ")+")")
	graphCmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel page fetches")
	graphCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show which pages would be fetched, don't fetch")
	graphCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "bypass the page cache")
	graphCmd.Flags().StringVar(&flagClass, "class", "", "CSS class of the requirement table")

	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := loadConfig(config.Options{
		Username:   flagUser,
		Output:     flagOutput,
		Format:     flagFormat,
		Workers:    flagWorkers,
		NoCache:    flagNoCache,
		TableClass: flagClass,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("Config file: %s", usedPath)

	if cfg.Username == "" && flagQuest == "" && flagList == "" {
		return fmt.Errorf("missing --user and no username in config (or pass --quest/--list)")
	}
	if flagIncomplete && cfg.Username == "" {
		return fmt.Errorf("--incomplete needs a player name")
	}

	exporter, err := export.New(cfg.Format)
	if err != nil {
		return err
	}
	output := cfg.Output
	if output == "" {
		output = "quests." + exporter.Ext()
	} else if filepath.Ext(output) == "" {
		output += "." + exporter.Ext()
	}

	client, err := newHTTPClient(cfg, logSvc)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var statuses *status.Statuses
	if cfg.Username != "" {
		stop := ui.StartSpinner(os.Stderr, "Fetching quest status for "+cfg.Username)
		statuses, err = status.Fetch(ctx, client, cfg.StatusURL, cfg.Username)
		stop()
		if err != nil {
			return fmt.Errorf("quest status: %w", err)
		}
		logSvc.Infof("Player %s: %s", cfg.Username, util.Plural(statuses.Len(), "quest"))
	}

	titles := quests.Filter(statuses.Titles(), flagQuest, flagList, flagIncomplete, statuses)
	if len(titles) == 0 {
		return fmt.Errorf("no quests selected")
	}

	if flagDryRun {
		fmt.Printf("Dry-run: %s selected.\n\n", util.Plural(len(titles), "quest"))
		for i, t := range titles {
			fmt.Printf("%3d) %s\n     %s\n", i+1, t, wiki.PageURL(cfg.WikiURL, t))
		}
		return nil
	}

	var pageCache wiki.PageCache
	if cfg.CachePath != "" {
		c, err := cache.Open(cfg.CachePath, cfg.CacheTTL)
		if err != nil {
			logSvc.Warnf("Page cache disabled: %v", err)
		} else {
			defer func() {
				_ = c.Close()
			}()
			pageCache = c
		}
	}

	util.SetupInterruptHandler(output, cancel)

	src := wiki.NewClient(client, cfg.WikiURL, cfg.TableClass, pageCache, logSvc)
	stats := &ui.Stats{}
	start := time.Now()

	pm := ui.NewProgressManager(os.Stdout)
	handle := pm.Register("Quests", len(titles), stats)

	results, err := scrape.Run(ctx, src, titles, cfg.Workers, func(r scrape.Result) {
		failed := r.Err != nil && !errors.Is(r.Err, wiki.ErrPageNotFound)
		stats.Record(r.Page.Cached, r.Err == nil && r.Page.Result.Found, failed, r.Page.Bytes)
		handle.Increment()
	})
	if err != nil {
		handle.Abort()
		pm.Close()
		return err
	}
	handle.MarkDone()
	pm.Close()

	summary, err := scrape.Merge(results)
	if err != nil {
		var conflict *questreq.ConflictError
		if errors.As(err, &conflict) {
			logSvc.Errorf("%q listed as %v on %s but %v on %s",
				conflict.Key, conflict.Existing, conflict.ExistingSource,
				conflict.Incoming, conflict.IncomingSource)
		}
		return err
	}

	for _, f := range summary.Failures {
		logSvc.Warnf("Skipped %s: %v", f.Title, f.Err)
	}
	for title, anomalies := range summary.Anomalies {
		for _, a := range anomalies {
			logSvc.Warnf("%s: empty requirement label under %q (item %d)", title, a.Parent, a.Position)
		}
	}

	for title, dups := range summary.Duplicates {
		for _, d := range dups {
			logSvc.Warnf("%s: %q listed with %v and %v, keeping both", title, d.Label, d.First, d.Second)
		}
	}

	adj := summary.Adjacency
	g := graph.FromAdjacency(adj)
	if cyc := g.Cycles(); len(cyc) > 0 {
		logSvc.Warnf("Requirement cycle between: %s", strings.Join(cyc, ", "))
	}

	if flagQuest != "" && len(titles) == 1 && g.Has(titles[0]) {
		sub, err := g.Prerequisites(titles[0])
		if err != nil {
			return err
		}
		g, adj = sub, sub.Restrict(adj)

		direct, _ := g.Dependencies(titles[0])
		logSvc.Infof("%s needs %s directly, %s in total",
			titles[0], util.Plural(len(direct), "requirement"), util.Plural(g.Len()-1, "requirement"))
	}

	if err := export.WriteFile(output, exporter, export.Data{
		Adjacency: adj,
		Graph:     g,
		Statuses:  statuses,
	}); err != nil {
		return err
	}

	if statuses != nil {
		fmt.Println()
		ui.PrintAvailable(os.Stdout, g.Available(statuses), statuses, func(id string) int {
			deps, _ := g.Dependents(id)
			return len(deps)
		})
	}

	fmt.Println()
	fmt.Println("Graph Summary:")
	fmt.Printf("Quests:   %d (%d with requirements, %d without)\n", len(titles), summary.Parsed, summary.Missing)
	fmt.Printf("Nodes:    %d\n", g.Len())
	fmt.Printf("Edges:    %d\n", len(g.Edges()))
	fmt.Printf("Roots:    %d (no prerequisites)\n", len(g.Roots()))
	fmt.Printf("Cached:   %d\n", summary.Cached)
	fmt.Printf("Failed:   %d\n", summary.Failed)
	fmt.Printf("Data:     %s\n", util.Human(summary.Bytes))
	fmt.Printf("Time:     %s\n", time.Since(start).Round(time.Second))
	fmt.Printf("\nWrote %s\n", output)

	return nil
}

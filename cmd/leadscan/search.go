package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chanakaprasadcw/Scraping/internal/aggregate"
	"github.com/chanakaprasadcw/Scraping/internal/config"
	"github.com/chanakaprasadcw/Scraping/internal/contact"
	"github.com/chanakaprasadcw/Scraping/internal/database"
	"github.com/chanakaprasadcw/Scraping/internal/export"
	"github.com/chanakaprasadcw/Scraping/internal/extract"
	lslog "github.com/chanakaprasadcw/Scraping/internal/log"
	"github.com/chanakaprasadcw/Scraping/internal/model"
	"github.com/chanakaprasadcw/Scraping/internal/query"
	"github.com/chanakaprasadcw/Scraping/internal/scrape"
	"github.com/chanakaprasadcw/Scraping/internal/search"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search for leads and export them",
		Long: `Search finds business leads and exports them to a file.

Two modes are available. The natural-language mode takes a free-text
description, extracts structured criteria from it, and plans search
queries automatically:

  leadscan search "find CTOs at fintech startups in Berlin"

The structured mode takes explicit criteria via flags or a JSON file:

  # Look up specific people
  leadscan search --names "Jane Doe,John Smith"

  # Find decision makers at one company
  leadscan search --company "Acme Corp" --titles "CEO,CTO"

  # Load criteria from a file
  leadscan search --criteria criteria.json

The modes are mutually exclusive. Results are exported to a timestamped
file in the output directory; use --format to pick csv, json, excel or
markdown.`,
		Args: cobra.ArbitraryArgs,
		RunE: runSearchCmd,
	}

	// Structured mode flags
	cmd.Flags().StringSliceP("names", "n", nil,
		"Person names to look up (structured mode)")
	cmd.Flags().String("company", "",
		"Company to find decision makers at (structured mode)")
	cmd.Flags().StringSlice("titles", nil,
		"Job titles for the company search (default: CEO,CTO,VP,Director,Manager)")
	cmd.Flags().String("criteria", "",
		"JSON file supplying the structured criteria")

	// Pipeline behavior flags
	cmd.Flags().IntP("limit", "l", config.DefaultSearchLimit,
		"Number of results requested per search query")
	cmd.Flags().Int("fetch-limit", config.DefaultFetchLimit,
		"Maximum number of profiles scraped per run")
	cmd.Flags().Duration("delay", config.DefaultRequestDelay,
		"Pause between consecutive outbound requests")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")
	cmd.Flags().Bool("strict-emails", false,
		"Validate extracted email addresses against full address grammar")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .leadscan in current or home directory)")

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputDir,
		"Directory export files are written to")
	cmd.Flags().String("name", config.DefaultOutputName,
		"Base file name for exports")
	cmd.Flags().StringP("format", "f", config.DefaultOutputFormat,
		"Export format: csv, json, excel or markdown")

	// Persistence and logging flags
	cmd.Flags().Bool("save", false,
		"Save the run and its leads to the local database")
	cmd.Flags().Bool("redact", false,
		"Mask email addresses and phone numbers in log output")

	return cmd
}

// runSearchCmd executes the search command.
func runSearchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	cfg.Verbose = getVerboseFlag(cmd)
	logger := lslog.NewLogger(os.Stderr, cfg.Verbose, cfg.RedactContacts)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runSearch(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Query = strings.TrimSpace(strings.Join(args, " "))

	cfg.Names, err = cmd.Flags().GetStringSlice("names")
	if err != nil {
		return nil, err
	}

	cfg.Company, err = cmd.Flags().GetString("company")
	if err != nil {
		return nil, err
	}

	cfg.Titles, err = cmd.Flags().GetStringSlice("titles")
	if err != nil {
		return nil, err
	}

	cfg.CriteriaFile, err = cmd.Flags().GetString("criteria")
	if err != nil {
		return nil, err
	}

	cfg.SearchLimit, err = cmd.Flags().GetInt("limit")
	if err != nil {
		return nil, err
	}

	cfg.FetchLimit, err = cmd.Flags().GetInt("fetch-limit")
	if err != nil {
		return nil, err
	}

	cfg.OutputName, err = cmd.Flags().GetString("name")
	if err != nil {
		return nil, err
	}

	cfg.SaveToDB, err = cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}

	cfg.RedactContacts, err = cmd.Flags().GetBool("redact")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the optional .leadscan file before reading the flags that share
	// a field with it. An explicitly specified path must exist; an
	// auto-discovered one is optional.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
		cfg.ConfigFilePath = configPath
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags sharing a field with the configuration file override it only
	// when explicitly set: precedence is defaults < file < flags.
	if cmd.Flags().Changed("delay") {
		cfg.RequestDelay, err = cmd.Flags().GetDuration("delay")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("strict-emails") {
		cfg.StrictEmails, err = cmd.Flags().GetBool("strict-emails")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("format") {
		cfg.OutputFormat, err = cmd.Flags().GetString("format")
		if err != nil {
			return nil, err
		}
	}

	// A criteria file supplies the structured fields; flags win over it.
	if cfg.CriteriaFile != "" {
		crit, err := config.LoadCriteriaFile(cfg.CriteriaFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load criteria file %s: %w", cfg.CriteriaFile, err)
		}
		if len(cfg.Names) == 0 {
			cfg.Names = crit.Names
		}
		if cfg.Company == "" {
			cfg.Company = crit.Company
		}
		if len(cfg.Titles) == 0 {
			cfg.Titles = crit.Titles
		}
		if crit.Limit > 0 && !cmd.Flags().Changed("fetch-limit") {
			cfg.FetchLimit = crit.Limit
		}
	}

	cfg.DBDir = config.XDGDataDir()

	return cfg, nil
}

// runSearch wires the pipeline components and executes the run.
func runSearch(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	client := scrape.NewHTTPClient(cfg.Timeout)
	finder := contact.NewFinder(contact.WithStrictValidation(cfg.StrictEmails))
	backend := search.NewDuckDuckGo(client, search.WithUserAgent(cfg.UserAgent))
	scraper := scrape.NewProfileScraper(client, finder,
		scrape.WithProfileUserAgent(cfg.UserAgent))

	opts := []aggregate.Option{
		aggregate.WithLogger(logger),
		aggregate.WithRequestDelay(cfg.RequestDelay),
		aggregate.WithMaxQueries(config.DefaultMaxQueriesPerRun),
		aggregate.WithSearchLimit(cfg.SearchLimit),
		aggregate.WithProfileMarker(cfg.ProfileURLMarker),
	}

	var (
		leads []*model.Lead
		err   error
	)

	if cfg.Query != "" {
		extractor := extract.NewExtractor(
			extract.WithVocabulary(loadVocabulary(cfg)),
			extract.WithReferenceYear(cfg.ReferenceYear),
		)
		criteria := extractor.Extract(cfg.Query)
		fmt.Fprintln(cmd.OutOrStdout(), criteria.Summary())

		planner := query.NewPlanner(query.WithProfileSite(cfg.ProfileURLMarker))
		queries := planner.Plan(criteria)
		logger.Info("query plan built", "queries", len(queries))

		opts = append(opts, aggregate.WithProvenance(cfg.Query, criteria.Snapshot()))
		agg := aggregate.New(backend, scraper, opts...)

		leads, err = agg.Aggregate(ctx, queries, cfg.FetchLimit)
	} else {
		// Only the structured flows scan non-profile results for company
		// contacts; the natural-language flow scrapes profiles alone.
		scanner := scrape.NewWebsiteScanner(scraper, finder)
		opts = append(opts, aggregate.WithWebsiteScanner(scanner))
		agg := aggregate.New(backend, scraper, opts...)
		leads, err = agg.SearchByCriteria(ctx, cfg.Names, cfg.Company, cfg.Titles)
	}
	if err != nil {
		return err
	}

	logger.Info("run finished", "leads", len(leads))

	exporter, err := export.New(cfg.OutputFormat, cfg.OutputDir, cfg.OutputName, nil)
	if err != nil {
		return err
	}

	path, err := exporter.Export(leads)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), export.Summarize(leads).String())
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d leads to %s\n", len(leads), path)

	if cfg.SaveToDB {
		db, err := database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		runID, err := db.SaveRun(ctx, describeRun(cfg), leads)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		logger.Info("run saved", "id", runID, "db", db.Path())
	}

	return nil
}

// loadVocabulary builds the extraction vocabulary: the built-in tables
// extended by any entries from the configuration file.
func loadVocabulary(cfg *config.Config) *extract.Vocabulary {
	vocab := extract.DefaultVocabulary()

	if cfg.ConfigFilePath == "" {
		return vocab
	}
	cf, err := config.LoadConfigFile(cfg.ConfigFilePath)
	if err != nil {
		return vocab
	}

	vocab.Positions = appendMissing(vocab.Positions, cf.Vocabulary.Positions)
	vocab.Industries = appendMissing(vocab.Industries, cf.Vocabulary.Industries)
	vocab.Locations = appendMissing(vocab.Locations, cf.Vocabulary.Locations)

	return vocab
}

// appendMissing appends entries not already present, preserving the order
// of both lists. Matching is case-insensitive.
func appendMissing(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, entry := range base {
		seen[strings.ToLower(entry)] = true
	}
	for _, entry := range extra {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" || seen[entry] {
			continue
		}
		seen[entry] = true
		base = append(base, entry)
	}
	return base
}

// describeRun builds the database label for a run from its input.
func describeRun(cfg *config.Config) string {
	if cfg.Query != "" {
		return cfg.Query
	}
	if len(cfg.Names) > 0 {
		return "names: " + strings.Join(cfg.Names, ", ")
	}
	return "company: " + cfg.Company
}

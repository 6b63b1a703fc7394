package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chanakaprasadcw/Scraping/internal/config"
	"github.com/chanakaprasadcw/Scraping/internal/database"
	"github.com/chanakaprasadcw/Scraping/internal/export"
	"github.com/chanakaprasadcw/Scraping/internal/model"
)

// NewRunsCmd creates the runs command.
func NewRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List saved search runs and re-export their leads",
		Long: `Runs lists the search runs saved with 'search --save' and re-exports
their leads without searching again.

Examples:
  # List all saved runs, newest first
  leadscan runs

  # Re-export the leads of run 3 as Excel
  leadscan runs --export 3 --format excel

  # Export every saved lead for one company
  leadscan runs --company "Acme Corp"`,
		RunE: runRunsCmd,
	}

	cmd.Flags().String("db", config.XDGDataDir(),
		"Directory holding the leadscan database")
	cmd.Flags().Int64("export", 0,
		"Run ID whose leads are re-exported")
	cmd.Flags().String("company", "",
		"Export saved leads for this company across all runs")
	cmd.Flags().StringP("output", "o", config.DefaultOutputDir,
		"Directory export files are written to")
	cmd.Flags().String("name", config.DefaultOutputName,
		"Base file name for exports")
	cmd.Flags().StringP("format", "f", config.DefaultOutputFormat,
		"Export format: csv, json, excel or markdown")

	return cmd
}

// runRunsCmd executes the runs command.
func runRunsCmd(cmd *cobra.Command, _ []string) error {
	dbDir, err := cmd.Flags().GetString("db")
	if err != nil {
		return err
	}

	runID, err := cmd.Flags().GetInt64("export")
	if err != nil {
		return err
	}

	company, err := cmd.Flags().GetString("company")
	if err != nil {
		return err
	}

	// Listing never creates a database; a missing one means no run was
	// ever saved.
	db, err := database.Open(dbDir, database.Options{EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	switch {
	case runID != 0:
		leads, err := db.LeadsForRun(ctx, runID)
		if err != nil {
			return err
		}
		if len(leads) == 0 {
			return fmt.Errorf("no leads stored for run %d", runID)
		}
		return exportStored(cmd, leads)
	case company != "":
		leads, err := db.FindLeadsByCompany(ctx, company)
		if err != nil {
			return err
		}
		if len(leads) == 0 {
			return fmt.Errorf("no saved leads for company %q", company)
		}
		return exportStored(cmd, leads)
	default:
		runs, err := db.ListRuns(ctx)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-17s %-7s %s\n", "ID", "Saved", "Leads", "Query")
		for _, run := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6d %-17s %-7d %s\n",
				run.ID, run.Timestamp.Format("2006-01-02 15:04"), run.LeadCount, run.Query)
		}
		return nil
	}
}

// exportStored writes stored leads to a file using the export flags.
func exportStored(cmd *cobra.Command, leads []*model.Lead) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	dir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}

	exporter, err := export.New(format, dir, name, nil)
	if err != nil {
		return err
	}

	path, err := exporter.Export(leads)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d leads to %s\n", len(leads), path)
	return nil
}

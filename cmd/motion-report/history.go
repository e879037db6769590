package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/banshee-data/motion.report/internal/db"
	"github.com/banshee-data/motion.report/internal/monitoring"
)

func runHistory(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(stdout)
	dbPath := fs.String("db", "", "history database (required)")
	sessionName := fs.String("session", "", "only list runs of this session")
	limit := fs.Int("limit", 20, "maximum runs to list (0 = all)")
	show := fs.String("show", "", "print the stored report of this run ID")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *dbPath == "" {
		fmt.Fprintln(stdout, "history: -db is required")
		fs.PrintDefaults()
		return errUsage
	}

	defer monitoring.Mute()()
	database, err := db.NewDB(*dbPath)
	if err != nil {
		return err
	}
	defer database.Close()
	store := db.NewRunStore(database, nil)

	if *show != "" {
		run, err := store.Get(*show)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\n", run.ReportJSON)
		return nil
	}

	runs, err := store.List(*sessionName, *limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(stdout, "no runs recorded")
		return nil
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSESSION\tCREATED\tFRAMES\tSKIPPED\tOMITTED\tSHA256")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			r.RunID,
			r.SessionName,
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.TotalFrames,
			r.SkippedLines,
			omittedSummary(r.OmittedSections),
			shortHash(r.ReportSHA256),
		)
	}
	return tw.Flush()
}

func omittedSummary(sections []string) string {
	if len(sections) == 0 {
		return "-"
	}
	return strings.Join(sections, ",")
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

func runMigrate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(stdout)
	dbPath := fs.String("db", "", "history database (required)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *dbPath == "" || fs.NArg() != 1 {
		fmt.Fprintln(stdout, "Usage: motion-report migrate -db <path> up|status")
		return errUsage
	}

	if action := fs.Arg(0); action != "up" && action != "status" {
		fmt.Fprintf(stdout, "Unknown migrate action: %s\n", action)
		return errUsage
	}

	// Opening the database applies pending migrations, so up and status
	// differ only in intent.
	database, err := db.NewDB(*dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	v, dirty, err := database.MigrateVersion(db.Migrations())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Current version: %d (dirty: %v)\n", v, dirty)
	return nil
}

// Command motion-report analyzes motion-capture session folders and keeps a
// history of analysis runs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/motion.report/internal/config"
	"github.com/banshee-data/motion.report/internal/metrics"
	"github.com/banshee-data/motion.report/internal/monitoring"
	"github.com/banshee-data/motion.report/internal/pipeline"
	"github.com/banshee-data/motion.report/internal/session"
	"github.com/banshee-data/motion.report/internal/version"
)

// errUsage signals that usage was printed and the exit code should be 2.
var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("motion-report: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		printHelp(stdout)
		return errUsage
	}

	switch args[0] {
	case "analyze":
		return runAnalyze(args[1:], stdout)
	case "history":
		return runHistory(args[1:], stdout)
	case "migrate":
		return runMigrate(args[1:], stdout)
	case "version":
		fmt.Fprintln(stdout, version.String())
		return nil
	case "help", "-h", "--help":
		printHelp(stdout)
		return nil
	default:
		fmt.Fprintf(stdout, "Unknown command: %s\n\n", args[0])
		printHelp(stdout)
		return errUsage
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: motion-report <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  analyze    Decode a session folder and write its report")
	fmt.Fprintln(w, "  history    List recorded analysis runs")
	fmt.Fprintln(w, "  migrate    Apply or show history database migrations (up, status)")
	fmt.Fprintln(w, "  version    Print build information")
	fmt.Fprintln(w, "  help       Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  motion-report analyze -session ./sessions/patient-01")
	fmt.Fprintln(w, "  motion-report analyze -session ./s1 -charts ./charts -db history.db")
	fmt.Fprintln(w, "  motion-report history -db history.db -session patient-01")
}

func runAnalyze(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stdout)
	sessionDir := fs.String("session", "", "session folder to analyze (required)")
	configPath := fs.String("config", "", "analysis config JSON (default: built-in defaults)")
	chartsDir := fs.String("charts", "", "write charts under this directory")
	dbPath := fs.String("db", "", "record the run in this history database")
	hipCenter := fs.Bool("hip-center", false, "compute hand and ankle to mid-hip distances")
	quiet := fs.Bool("quiet", false, "suppress diagnostic logging and progress")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *sessionDir == "" {
		fmt.Fprintln(stdout, "analyze: -session is required")
		fs.PrintDefaults()
		return errUsage
	}

	cfg := config.DefaultAnalysisConfig()
	if *configPath != "" {
		loaded, err := config.LoadAnalysisConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *chartsDir != "" {
		cfg.ChartsDir = chartsDir
	}
	if *dbPath != "" {
		cfg.HistoryDB = dbPath
	}

	opts := pipeline.Options{SessionDir: *sessionDir, Config: cfg}
	if *hipCenter {
		opts.HipCenter = metrics.MidHip{}
	}
	if *quiet {
		defer monitoring.Mute()()
	} else {
		opts.OnProgress = func(p session.Progress) {
			fmt.Fprintf(stdout, "[%d/%d] %s %s: %s\n", p.Index, p.Total, p.Family, p.Path, p.Result)
		}
	}

	out, err := pipeline.Run(opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "report: %s\n", out.ReportPath)
	fmt.Fprintf(stdout, "sha256: %s\n", out.ReportSHA256)
	if len(out.Report.OmittedSections) > 0 {
		fmt.Fprintf(stdout, "omitted: %v\n", out.Report.OmittedSections)
	}
	for _, f := range out.ChartFiles {
		fmt.Fprintf(stdout, "chart: %s\n", f)
	}
	if out.RunID != "" {
		fmt.Fprintf(stdout, "run: %s\n", out.RunID)
	}
	return nil
}

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/restitch/restitch"
)

// maxErrorDetails caps the number of error lines printed in the summary.
const maxErrorDetails = 20

// CLI are the cli parameters for the restitch binary
type CLI struct {
	Source      string           `arg:"" name:"source" help:"Path to the backup folder." type:"existingdir"`
	Destination string           `arg:"" name:"destination" optional:"" help:"Destination path for restored files."`
	AnalyzeOnly bool             `short:"a" help:"Analyze only, do not extract."`
	Yes         bool             `short:"y" help:"Skip the confirmation prompt."`
	Verbose     bool             `short:"v" optional:"" help:"Verbose logging."`
	Version     kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
}

// Run is the entrypoint into restitch as a cli tool
func Run(version, commit, date string) {
	ctx := context.Background()
	var cli CLI
	kong.Parse(&cli,
		kong.Description("Consolidate fragmented backup archives into a restored folder hierarchy"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	// check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// setup telemetry hook
	telemetryToLog := func(ctx context.Context, td *restitch.TelemetryData) {
		logger.Debug("extraction run finished", "telemetry", td)
	}

	cfg := restitch.NewConfig(
		restitch.WithLogger(logger),
		restitch.WithTelemetryHook(telemetryToLog),
	)

	if err := run(ctx, &cli, cfg); err != nil {
		logger.Error("restore failed", "error", err)
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cli *CLI, cfg *restitch.Config) error {
	archives, err := restitch.Locate(cli.Source, cfg)
	if err != nil {
		return errors.Wrap(err, "cannot scan backup folder")
	}

	report := restitch.Analyze(archives, cfg)
	printReport(cli.Source, report)

	if cli.AnalyzeOnly || len(archives) == 0 {
		return nil
	}

	if cli.Destination == "" {
		return errors.New("destination path is required for extraction")
	}

	if !cli.Yes && !confirm(cli.Source, cli.Destination) {
		fmt.Println("Cancelled.")
		return nil
	}

	fmt.Printf("\nStarting extraction of %d archives...\n", len(archives))
	fmt.Printf("Destination: %s\n\n", cli.Destination)

	res, err := restitch.Extract(ctx, archives, cli.Destination, cfg)
	if err != nil {
		return errors.Wrap(err, "cannot extract archives")
	}

	printSummary(cli.Destination, res)
	return nil
}

// confirm asks on stdin whether extraction should proceed. Both "y" and the
// German "j" count as consent.
func confirm(source, dest string) bool {
	fmt.Printf("\n  Source: %s\n", source)
	fmt.Printf("  Dest:   %s\n", dest)
	fmt.Print("\nProceed? (y/n): ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "j")
}

// printReport renders the pre-extraction analysis banner.
func printReport(source string, report *restitch.Report) {
	line := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n", line)
	fmt.Println(" Backup Analyzer")
	fmt.Println(line)
	fmt.Printf(" Source directory:  %s\n", source)
	fmt.Printf(" Archives:          %d\n", report.Archives)
	fmt.Printf(" Total size:        %.2f GB\n", float64(report.TotalSize)/(1<<30))

	if report.SampleArchive != "" && len(report.SampleExtensions) > 0 {
		fmt.Printf("\n Sample from: %s\n", filepath.Base(report.SampleArchive))
		for i, ec := range report.SampleExtensions {
			if i >= 10 {
				break
			}
			fmt.Printf("   .%-11s -> %d files\n", ec.Extension, ec.Count)
		}
	}
	fmt.Printf("%s\n\n", line)
}

// printSummary renders the post-extraction summary block with error details
// truncated at maxErrorDetails.
func printSummary(dest string, res *restitch.Result) {
	line := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n", line)
	fmt.Println(" Extraction completed!")
	fmt.Printf(" Files extracted:   %d\n", res.FilesExtracted)
	fmt.Printf(" Errors:            %d\n", len(res.Errors))
	fmt.Printf(" Destination:       %s\n", dest)
	fmt.Println(line)

	if len(res.Errors) == 0 {
		return
	}
	fmt.Println("\nError details:")
	for i, ee := range res.Errors {
		if i >= maxErrorDetails {
			fmt.Printf("  ... and %d more errors\n", len(res.Errors)-maxErrorDetails)
			break
		}
		fmt.Printf("  %s\n", ee)
	}
}

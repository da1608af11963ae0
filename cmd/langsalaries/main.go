package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/langsalaries/internal/client"
	"github.com/fr4nk3nst1ner/langsalaries/internal/config"
	"github.com/fr4nk3nst1ner/langsalaries/internal/models"
	"github.com/fr4nk3nst1ner/langsalaries/internal/scraper"
	"github.com/fr4nk3nst1ner/langsalaries/internal/ui"
)

type options struct {
	envFile  string
	format   string
	proxyURL string
	debug    bool
	silence  bool
	noBanner bool
	progress bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "langsalaries",
		Short: "Average programmer salaries in Moscow by language",
		Long: `langsalaries searches SuperJob and HeadHunter for programmer vacancies
in Moscow for each language of a fixed catalog, estimates a salary for every
vacancy from its salary range and prints per-language averages.

The SuperJob API key is read from SUPERJOB_KEY, optionally loaded from an
env file.`,
		Example: `  langsalaries
  langsalaries --nobanner --format yaml
  langsalaries --proxy http://localhost:8080 --debug`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "Env file to load SUPERJOB_KEY from")
	flags.StringVarP(&opts.format, "format", "f", ui.FormatTable, "Output format (table, json, yaml)")
	flags.StringVar(&opts.proxyURL, "proxy", "", "Proxy URL to use")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug mode")
	flags.BoolVarP(&opts.silence, "silence", "s", false, "Silence the banner")
	flags.BoolVar(&opts.noBanner, "nobanner", false, "Silence the banner (alias for -silence)")
	flags.BoolVar(&opts.progress, "progress", true, "Show a progress bar while querying")

	return cmd
}

// source is a provider together with the title of its table.
type source struct {
	provider scraper.Provider
	title    string
}

// routeDiagnostics keeps log lines off stdout, which carries the reports.
func routeDiagnostics(w io.Writer) {
	pterm.Debug.Writer = w
	pterm.Warning.Writer = w
	pterm.Error.Writer = w
}

func run(ctx context.Context, opts *options) error {
	opts.format = strings.ToLower(opts.format)
	if !ui.IsValidFormat(opts.format) {
		return errors.Errorf("invalid format %q, must be one of: table, json, yaml", opts.format)
	}

	routeDiagnostics(os.Stderr)
	if opts.debug {
		pterm.EnableDebugMessages()
	}

	ui.PrintBanner(opts.silence || opts.noBanner || opts.format != ui.FormatTable)

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	if !cfg.EnvFileLoaded {
		pterm.Warning.Printfln("Env file %s not found, using the process environment", opts.envFile)
	}

	httpClient, err := client.CreateProxyHTTPClient(opts.proxyURL)
	if err != nil {
		return err
	}

	sources := []source{
		{provider: scraper.NewSuperJob(httpClient, cfg.SuperJobKey), title: "SuperJob Moscow"},
		{provider: scraper.NewHeadHunter(httpClient), title: "HeadHunter Moscow"},
	}
	return writeReports(ctx, os.Stdout, sources, config.Languages(), opts.format, opts.progress)
}

// writeReports queries sources in order and writes their reports once all of
// them succeeded. A failing source stops the run before the next one is
// queried and nothing is written.
func writeReports(ctx context.Context, w io.Writer, sources []source, languages []string, format string, progress bool) error {
	reports := make([]*models.Report, 0, len(sources))

	for _, s := range sources {
		var bar *pb.ProgressBar
		if progress {
			bar = pb.Full.Start(len(languages))
		}

		report, err := scraper.BuildReport(ctx, s.provider, languages, bar)
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return err
		}

		report.Title = s.title
		reports = append(reports, report)
	}

	return ui.WriteReports(w, reports, format)
}

// printFatal prints err with the stack trace recorded where it was created.
func printFatal(w io.Writer, err error) {
	fmt.Fprintf(w, "%+v\n", err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		printFatal(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

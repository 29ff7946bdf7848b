package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/soloqlab/lol-insights/internal/analysis"
	"github.com/soloqlab/lol-insights/internal/config"
)

var (
	configPath    = flag.String("config", "", "Path to config file (default: ~/.lol-insights/config.toml)")
	sourcePath    = flag.String("source", "", "Path to the match history export file")
	historyLength = flag.Int("history", 0, "Number of prior games per lag-state")
	targetDate    = flag.String("date", "", "Restrict the daily report to one date (YYYY-MM-DD)")
	outputDir     = flag.String("output", "", "Output directory for charts and exports")
	exportFormat  = flag.String("format", "json", "Export format: json or csv")
	apiPort       = flag.Int("port", 0, "Stats API port for the serve command")
	openBrowser   = flag.Bool("open", false, "Open rendered charts in the browser")
	debugMode     = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	applyFlagOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Source.FilePath == "" {
		fmt.Fprintln(os.Stderr, "No match export file given. Use -source or set source.file_path in the config.")
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	logger := newLogger(cfg.App.DebugMode)
	defer func() { _ = logger.Sync() }()

	session, err := analysis.New(analysis.Config{
		SourcePath:    cfg.Source.FilePath,
		HistoryLength: cfg.Analysis.HistoryLength,
	}, logger)
	if err != nil {
		log.Fatalf("Error creating session: %v", err)
	}
	if err := session.Run(); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	command := flag.Arg(0)
	if command == "" {
		command = "report"
	}

	switch command {
	case "report":
		runReportCommand(session, *targetDate)
	case "charts":
		if err := runChartsCommand(session, cfg); err != nil {
			log.Fatalf("Error rendering charts: %v", err)
		}
	case "export":
		if err := runExportCommand(session, cfg, *exportFormat); err != nil {
			log.Fatalf("Error exporting stats: %v", err)
		}
	case "serve":
		if err := runServeCommand(session, cfg, logger); err != nil {
			log.Fatalf("Error serving stats: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if *configPath != "" {
		return config.LoadFrom(*configPath)
	}
	return config.Load()
}

// applyFlagOverrides lets command line flags win over the config file.
func applyFlagOverrides(cfg *config.Config) {
	if *sourcePath != "" {
		cfg.Source.FilePath = *sourcePath
	}
	if *historyLength > 0 {
		cfg.Analysis.HistoryLength = *historyLength
	}
	if *outputDir != "" {
		cfg.Charts.OutputDir = *outputDir
	}
	if *apiPort > 0 {
		cfg.API.Port = *apiPort
	}
	if *openBrowser {
		cfg.Charts.OpenBrowser = true
	}
	if *debugMode {
		cfg.App.DebugMode = true
	}
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	return logger
}

// runReportCommand prints every statistical view to the console.
func runReportCommand(session *analysis.Session, date string) {
	displaySummary(session)
	displayDailyStats(session, date)
	displaySequenceStats(session)
	displayStateMatrix(session)
	displayVolumeStats(session)
}

func printUsage() {
	fmt.Println("LoL Insights - ranked match history analytics")
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Println("Usage: lol-insights [options] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  report     - Print all statistical views to the console (default)")
	fmt.Println("  charts     - Render the views as interactive HTML charts")
	fmt.Println("  export     - Write the views to JSON or CSV files")
	fmt.Println("  serve      - Serve the views over a read-only REST API")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  lol-insights -source matches.json report")
	fmt.Println("  lol-insights -source matches.json -date 2025-06-01 report")
	fmt.Println("  lol-insights -source matches.json -history 3 -open charts")
	fmt.Println("  lol-insights -source matches.json -format csv -output ./out export")
	fmt.Println("  lol-insights -source matches.json -port 9090 serve")
	fmt.Println()
}

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/pkg/analyzer"
	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/output"
	"github.com/chatlens/chatlens/pkg/parser"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Config   string
	User     string
	Output   string
	TopWords int
	TopUsers int
	Verbose  bool
	Quiet    bool
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <export-file>",
		Short: "Analyse a chat export",
		Long: `Parse a chat export and report descriptive statistics.

Covers the whole conversation by default; use --user to scope the
analysis to a single participant. Notification lines (joins, leaves,
subject changes) are never attributed to a participant.

Exit codes:
  0 - Analysis produced results
  1 - No messages parsed (likely an unsupported export format)
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (defaults to built-in settings)")
	cmd.Flags().StringVarP(&opts.User, "user", "u", "", "Scope analysis to one participant")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVar(&opts.TopWords, "top-words", 0, "Number of common words to report (overrides config)")
	cmd.Flags().IntVar(&opts.TopUsers, "top-users", 0, "Number of busiest users to report (overrides config)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include daily timeline and word-cloud weights")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Top-line statistics only")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	exportPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	// Read the export
	data, err := os.ReadFile(exportPath) // #nosec G304 -- user-provided export path is expected
	if err != nil {
		return fmt.Errorf("reading export file: %w", err)
	}

	// Parse
	p, err := parser.New(cfg.Export.CompiledPattern(), cfg.Export.TimestampLayout)
	if err != nil {
		return fmt.Errorf("creating parser: %w", err)
	}
	records := p.Parse(string(data))

	// Resolve scope
	scope := analyzer.Overall()
	if opts.User != "" {
		if !knownParticipant(records, opts.User) {
			fmt.Fprintf(os.Stderr, "Warning: no messages from %q in this export\n", opts.User)
		}
		scope = analyzer.Participant(opts.User)
	}

	// Analyze
	a := analyzer.New(cfg,
		analyzer.WithTopWords(opts.TopWords),
		analyzer.WithTopUsers(opts.TopUsers))
	result := a.Analyze(scope, records)
	report := output.NewReport(result, exportPath)

	// Render
	formatter, err := newFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.IsEmpty() {
		ExitCode = 1
	}
	return nil
}

// loadConfig resolves the effective configuration: an explicit file when
// given, built-in defaults otherwise.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newFormatter builds the requested output formatter.
func newFormatter(name string, opts output.FormatOptions) (output.Formatter, error) {
	switch name {
	case "text":
		return output.NewTextFormatter(opts), nil
	case "json":
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be text or json)", name)
	}
}

// knownParticipant reports whether the user appears in the record set.
func knownParticipant(records []parser.MessageRecord, user string) bool {
	for _, name := range analyzer.Participants(records) {
		if name == user {
			return true
		}
	}
	return false
}

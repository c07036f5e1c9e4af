package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chatlens/chatlens/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	ShowAll     bool
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <export-file>",
		Short: "Detect the format of a chat export",
		Long: `Analyze a chat export to identify its line format.

The parser accepts only 12-hour "D/M/YY, H:MM am - " exports; anything
else parses to zero records with no error. This command samples lines
from the file, names the format it appears to use, and says whether
chatlens can analyse it.

Recognizes:
  - Android 12-hour exports (supported)
  - Android 24-hour exports
  - Uppercase AM/PM and narrow-space locale variants
  - iOS bracketed exports
  - ISO 8601 application logs

Example:
  chatlens detect chat.txt
  chatlens detect --sample 500 big-chat.txt
  chatlens detect --write-config chatlens.yaml chat.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all detected formats, not just the best match")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	exportPath := args[0]

	data, err := os.ReadFile(exportPath) // #nosec G304 -- user-provided export path is expected
	if err != nil {
		return fmt.Errorf("reading export file: %w", err)
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))
	result := d.Detect(string(data))

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(result, opts.WriteConfig); err != nil {
			return err
		}
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(result, exportPath, opts)
	default:
		return outputDetectText(result, exportPath, opts)
	}
}

func outputDetectText(result *detector.DetectionResult, exportPath string, opts *DetectOptions) error {
	fmt.Println("=== Export Format Detection ===")
	fmt.Println()
	fmt.Printf("File: %s\n", exportPath)
	fmt.Printf("Lines sampled: %d\n", result.SampledLines)
	fmt.Printf("Lines matching a known format: %d\n", result.MatchedLines)
	fmt.Println()

	if !result.HasMatch() {
		fmt.Println("No known export format detected.")
		fmt.Println()
		fmt.Println("Tip: check the first few lines manually; this may not be a chat export.")
		ExitCode = 1
		return nil
	}

	best := result.BestMatch()
	fmt.Printf("Detected format: %s\n", best.Format.Name)
	fmt.Printf("Confidence:      %.0f%% (%d lines)\n", best.Confidence*100, best.MatchCount)
	fmt.Printf("Sample line:     %s\n", best.SampleLine)
	fmt.Println()

	if best.Format.Supported {
		fmt.Println("This format is supported. Run 'chatlens analyze' on the file.")
	} else {
		fmt.Println("This format is NOT supported by the parser.")
		if best.Format.Note != "" {
			fmt.Printf("Note: %s\n", best.Format.Note)
		}
		ExitCode = 1
	}

	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Println()
		fmt.Println("All matching formats:")
		for _, m := range result.Matches {
			fmt.Printf("  %-45s %.0f%% (%d lines)\n", m.Format.Name, m.Confidence*100, m.MatchCount)
		}
	}

	return nil
}

func outputDetectJSON(result *detector.DetectionResult, exportPath string, opts *DetectOptions) error {
	type matchJSON struct {
		Format     string  `json:"format"`
		Supported  bool    `json:"supported"`
		Confidence float64 `json:"confidence"`
		MatchCount int     `json:"match_count"`
		SampleLine string  `json:"sample_line"`
		Note       string  `json:"note,omitempty"`
	}
	payload := struct {
		File         string      `json:"file"`
		SampledLines int         `json:"sampled_lines"`
		MatchedLines int         `json:"matched_lines"`
		Matches      []matchJSON `json:"matches"`
	}{
		File:         exportPath,
		SampledLines: result.SampledLines,
		MatchedLines: result.MatchedLines,
	}

	matches := result.Matches
	if !opts.ShowAll && len(matches) > 1 {
		matches = matches[:1]
	}
	for _, m := range matches {
		payload.Matches = append(payload.Matches, matchJSON{
			Format:     m.Format.Name,
			Supported:  m.Format.Supported,
			Confidence: m.Confidence,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
			Note:       m.Format.Note,
		})
	}

	if best := result.BestMatch(); best == nil || !best.Format.Supported {
		ExitCode = 1
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// writeStarterConfig writes a config file for the detected format. Only
// supported formats produce one; there is no config that makes an
// unsupported export parseable.
func writeStarterConfig(result *detector.DetectionResult, path string) error {
	best := result.BestMatch()
	if best == nil {
		return fmt.Errorf("cannot write config: no export format detected")
	}
	if !best.Format.Supported {
		return fmt.Errorf("cannot write config: %s is not a supported format", best.Format.Name)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists, refusing to overwrite", path)
	}

	starter := map[string]any{
		"export": map[string]any{
			"timestamp_pattern": best.Format.PatternStr,
			"timestamp_layout":  best.Format.Layout,
		},
	}
	data, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("marshaling starter config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing starter config: %w", err)
	}

	fmt.Printf("Starter config written to %s\n", path)
	return nil
}

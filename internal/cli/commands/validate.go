package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a chatlens configuration file without running analysis.

Checks:
  - YAML syntax
  - Timestamp pattern validity (must capture the timestamp)
  - Timestamp layout presence
  - Analysis settings (media placeholder, ranking sizes)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Timestamp pattern: %s\n", cfg.Export.TimestampPattern)
	fmt.Printf("  Timestamp layout:  %s\n", cfg.Export.TimestampLayout)
	fmt.Printf("  Media placeholder: %s\n", cfg.Analysis.MediaPlaceholder)
	fmt.Printf("  Stopwords:         %d\n", len(cfg.Analysis.StopwordSet()))
	fmt.Printf("  Top words:         %d\n", cfg.Analysis.TopWords)
	fmt.Printf("  Top users:         %d\n", cfg.Analysis.TopUsers)

	return nil
}

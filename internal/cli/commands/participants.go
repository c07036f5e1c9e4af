package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/pkg/analyzer"
	"github.com/chatlens/chatlens/pkg/parser"
)

// NewParticipantsCommand creates the participants command.
func NewParticipantsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "participants <export-file>",
		Short: "List participants in a chat export",
		Long: `Parse a chat export and list its participants alphabetically with their
message counts. Notification lines are excluded.

The names printed here are the values accepted by 'analyze --user'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParticipants(cmd, args, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (defaults to built-in settings)")

	return cmd
}

func runParticipants(cmd *cobra.Command, args []string, configPath string) error {
	exportPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(exportPath) // #nosec G304 -- user-provided export path is expected
	if err != nil {
		return fmt.Errorf("reading export file: %w", err)
	}

	p, err := parser.New(cfg.Export.CompiledPattern(), cfg.Export.TimestampLayout)
	if err != nil {
		return fmt.Errorf("creating parser: %w", err)
	}
	records := p.Parse(string(data))

	users := analyzer.Participants(records)
	if len(users) == 0 {
		fmt.Println("No participants found. Run 'chatlens detect' if the export should have messages.")
		ExitCode = 1
		return nil
	}

	a := analyzer.New(cfg)
	fmt.Printf("Participants (%d):\n", len(users))
	for _, user := range users {
		stats := a.FetchStats(analyzer.Participant(user), records)
		fmt.Printf("  %-20s %d messages\n", user, stats.Messages)
	}

	return nil
}

// Package cli provides the command-line interface for chatlens.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chatlens",
		Short: "Analyse WhatsApp chat exports",
		Long: `chatlens parses an exported chat-log text file and computes descriptive
statistics over it: message/word/media/link counts, monthly and daily
timelines, day-of-week and hour-of-day activity maps, busiest users,
word frequencies, and emoji usage.

Analysis can cover the whole conversation or a single participant.

Only the 12-hour "D/M/YY, H:MM am - Sender: message" export format is
supported. Exports in other formats (24-hour clocks, iOS bracketed
prefixes, other locales) parse to zero records; use 'chatlens detect'
to diagnose such files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewParticipantsCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

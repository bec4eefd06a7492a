package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	debugMode  bool
	ownerID    string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	rootCommand := &cobra.Command{
		Use:           "cardstudy",
		Short:         "Study flashcards with spaced repetition",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(opts.debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&opts.debugMode, "debug", false, "Enable debug mode")
	rootCommand.PersistentFlags().StringVar(&opts.ownerID, "owner", "", "owner id (defaults to study.owner_id)")

	rootCommand.AddCommand(
		newNextCommand(opts),
		newReviewCommand(opts),
		newStudyCommand(opts),
		newResetCommand(opts),
		newStatsCommand(opts),
		newImportCommand(opts),
		newGenerateCommand(opts),
		newMigrateCommand(opts),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: debugMode,
		})),
	)
}

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cardstudy/internal/report"
	"github.com/at-ishikawa/cardstudy/internal/statistics"
)

func newStatsCommand(opts *rootOptions) *cobra.Command {
	statsCommand := &cobra.Command{
		Use:   "stats",
		Short: "Study statistics",
	}
	statsCommand.AddCommand(
		newStatsTodayCommand(opts),
		newStatsCardsCommand(opts),
		newStatsGenerationCommand(opts),
	)
	return statsCommand
}

func newStatsTodayCommand(opts *rootOptions) *cobra.Command {
	var (
		outputPath   string
		templatePath string
		pdfPath      string
	)
	command := &cobra.Command{
		Use:   "today",
		Short: "Show today's reviews (UTC) as Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pdfPath != "" && !strings.EqualFold(filepath.Ext(pdfPath), ".pdf") {
				return fmt.Errorf("--pdf must name a .pdf file: %s", pdfPath)
			}

			return opts.run(cmd, true, func(ctx context.Context, env *environment) error {
				daily, err := env.service.TodayStats(ctx, env.ownerID)
				if err != nil {
					return fmt.Errorf("service.TodayStats() > %w", err)
				}
				cards, err := env.service.CardStats(ctx, env.ownerID)
				if err != nil {
					return fmt.Errorf("service.CardStats() > %w", err)
				}
				data := report.DailyReport{Daily: daily, Cards: &cards}

				if outputPath == "" && pdfPath == "" {
					return report.WriteDailyMarkdown(cmd.OutOrStdout(), templatePath, data)
				}
				if outputPath != "" {
					if err := report.WriteDailyMarkdownFile(outputPath, templatePath, data); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputPath)
				}
				if pdfPath != "" {
					if err := report.WriteDailyPDF(pdfPath, templatePath, data); err != nil {
						return fmt.Errorf("report.WriteDailyPDF() > %w", err)
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pdfPath)
				}
				return nil
			})
		},
	}
	command.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to this .md file")
	command.Flags().StringVar(&templatePath, "template", "", "custom Go template for the report")
	command.Flags().StringVar(&pdfPath, "pdf", "", "write the report to this .pdf file")
	return command
}

func newStatsCardsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "Show how many flashcards came from AI suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, env *environment) error {
				stats, err := env.service.CardStats(ctx, env.ownerID)
				if err != nil {
					return fmt.Errorf("service.CardStats() > %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "total: %d\nai: %d\nmanual: %d\nai usage: %.1f%%\n",
					stats.Total, stats.AI, stats.Manual, stats.AIUsageRate*100)
				return err
			})
		},
	}
}

func newStatsGenerationCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generation",
		Short: "Show how many generated suggestions were accepted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, env *environment) error {
				totals, err := env.sessions.TotalsByOwner(ctx, env.ownerID)
				if err != nil {
					return fmt.Errorf("sessions.TotalsByOwner() > %w", err)
				}
				stats := statistics.ComputeGeneration(totals)
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "sessions: %d\nproposed: %d\naccepted: %d\nacceptance: %.1f%%\n",
					stats.Sessions, stats.Proposed, stats.Accepted, stats.AcceptanceRate*100)
				return err
			})
		},
	}
}

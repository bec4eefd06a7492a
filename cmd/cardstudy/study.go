package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cardstudy/internal/cli"
	"github.com/at-ishikawa/cardstudy/internal/study"
)

func newNextCommand(opts *rootOptions) *cobra.Command {
	var excludeID string
	command := &cobra.Command{
		Use:   "next",
		Short: "Show the next due flashcard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, env *environment) error {
				card, err := env.service.NextDue(ctx, env.ownerID, excludeID)
				if err != nil {
					return fmt.Errorf("service.NextDue() > %w", err)
				}
				if card == nil {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "No cards due.")
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", card.ID, card.Front)
				return err
			})
		},
	}
	command.Flags().StringVar(&excludeID, "exclude", "", "flashcard id to skip")
	return command
}

func newReviewCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "review ID QUALITY",
		Short: "Submit a review with a quality from 0 (blackout) to 5 (perfect)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quality, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quality must be an integer from 0 to 5: %q", args[1])
			}

			return opts.run(cmd, true, func(ctx context.Context, env *environment) error {
				result, err := env.service.SubmitReview(ctx, env.ownerID, args[0], quality)
				if err != nil && !(errors.Is(err, study.ErrReviewNotLogged) && result != nil) {
					return fmt.Errorf("service.SubmitReview() > %w", err)
				}
				if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				}

				card := result.Flashcard
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "next review: %s (interval %d day(s), ease %.2f)\n",
					card.NextReview.UTC().Format(time.RFC3339),
					card.IntervalDays,
					card.EaseFactor,
				)
				return err
			})
		},
	}
}

func newStudyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "study",
		Short: "Review due flashcards interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, env *environment) error {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Press Enter to reveal the answer. Type 'q' to quit.")
				session := cli.NewStudyCLI(env.service, env.ownerID, cmd.InOrStdin(), cmd.OutOrStdout())
				return cli.Run(ctx, session)
			})
		},
	}
}

func newResetCommand(opts *rootOptions) *cobra.Command {
	var all bool
	command := &cobra.Command{
		Use:   "reset [IDS...]",
		Short: "Reset flashcards to their initial schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return errors.New("pass flashcard ids or --all")
			}

			return opts.run(cmd, true, func(ctx context.Context, env *environment) error {
				var (
					modified int64
					err      error
				)
				switch {
				case all:
					modified, err = env.service.ResetAll(ctx, env.ownerID)
				case len(args) == 1:
					_, err = env.service.ResetOne(ctx, env.ownerID, args[0])
					modified = 1
				default:
					modified, err = env.service.ResetMany(ctx, env.ownerID, args)
				}
				if err != nil {
					return fmt.Errorf("reset > %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "reset %d flashcard(s)\n", modified)
				return err
			})
		},
	}
	command.Flags().BoolVar(&all, "all", false, "reset every flashcard of the owner")
	return command
}

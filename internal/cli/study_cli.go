// Package cli implements the interactive study session of the cardstudy command.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/cardstudy/internal/flashcard"
	"github.com/at-ishikawa/cardstudy/internal/study"
)

var errEnd = errors.New("end")

// StudyService is the part of the study service the session needs.
type StudyService interface {
	NextDue(ctx context.Context, ownerID, excludeID string) (*flashcard.Flashcard, error)
	SubmitReview(ctx context.Context, ownerID, flashcardID string, quality int) (*study.ReviewResult, error)
}

//go:generate mockgen -source=study_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

// Session runs one step of an interactive loop. It returns errEnd when the loop should stop.
type Session interface {
	Session(ctx context.Context) error
}

// StudyCLI shows due cards one by one and submits the quality the user reports.
type StudyCLI struct {
	service StudyService
	ownerID string

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	faint        *color.Color
	green        *color.Color
	red          *color.Color
	yellow       *color.Color

	lastID   string
	reviewed int
}

// NewStudyCLI creates a session for ownerID reading answers from stdin.
func NewStudyCLI(service StudyService, ownerID string, stdin io.Reader, stdout io.Writer) *StudyCLI {
	return &StudyCLI{
		service:      service,
		ownerID:      ownerID,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		faint:        color.New(color.Faint),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
		yellow:       color.New(color.FgYellow),
	}
}

// Reviewed returns the number of reviews submitted in this session.
func (cli *StudyCLI) Reviewed() int {
	return cli.reviewed
}

// Run repeats session until it ends, fails, or the process is interrupted.
func Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for ctx.Err() == nil {
			if err := session.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session shows one due card and submits its review.
func (cli *StudyCLI) Session(ctx context.Context) error {
	card, err := cli.nextCard(ctx)
	if err != nil {
		return err
	}
	if card == nil {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "No more cards due. Reviewed %d card(s).\n", cli.reviewed)
		return errEnd
	}

	_, _ = fmt.Fprintln(cli.stdoutWriter)
	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "%s\n", card.Front)
	_, _ = cli.faint.Fprint(cli.stdoutWriter, "Press Enter to show the answer (q to quit) ")
	line, err := cli.readLine()
	if err != nil {
		return err
	}
	if isQuit(line) {
		return errEnd
	}

	_, _ = fmt.Fprintf(cli.stdoutWriter, "%s\n", card.Back)
	quality, err := cli.askQuality()
	if err != nil {
		return err
	}

	result, err := cli.service.SubmitReview(ctx, cli.ownerID, card.ID, quality)
	switch {
	case errors.Is(err, study.ErrConflict):
		_, _ = cli.yellow.Fprintln(cli.stdoutWriter, "This card was reviewed somewhere else in the meantime; skipping it.")
		cli.lastID = card.ID
		return nil
	case errors.Is(err, study.ErrReviewNotLogged) && result != nil:
		_, _ = cli.yellow.Fprintln(cli.stdoutWriter, "The review was applied but could not be added to today's statistics.")
	case err != nil:
		return fmt.Errorf("service.SubmitReview() > %w", err)
	}

	cli.reviewed++
	cli.lastID = card.ID
	cli.printResult(result)
	return nil
}

// nextCard avoids showing the same card twice in a row unless it is the only one due.
func (cli *StudyCLI) nextCard(ctx context.Context) (*flashcard.Flashcard, error) {
	card, err := cli.service.NextDue(ctx, cli.ownerID, cli.lastID)
	if err != nil {
		return nil, fmt.Errorf("service.NextDue() > %w", err)
	}
	if card != nil || cli.lastID == "" {
		return card, nil
	}
	card, err = cli.service.NextDue(ctx, cli.ownerID, "")
	if err != nil {
		return nil, fmt.Errorf("service.NextDue() > %w", err)
	}
	return card, nil
}

func (cli *StudyCLI) askQuality() (int, error) {
	for {
		_, _ = cli.bold.Fprint(cli.stdoutWriter, "Quality 0-5 (0 = blackout, 5 = perfect, q to quit): ")
		line, err := cli.readLine()
		if err != nil {
			return 0, err
		}
		if isQuit(line) {
			return 0, errEnd
		}
		quality, err := strconv.Atoi(line)
		if err == nil && quality >= 0 && quality <= 5 {
			return quality, nil
		}
		_, _ = cli.red.Fprintf(cli.stdoutWriter, "%q is not a number between 0 and 5\n", line)
	}
}

func (cli *StudyCLI) printResult(result *study.ReviewResult) {
	card := result.Flashcard
	if result.Success {
		_, _ = cli.green.Fprintf(cli.stdoutWriter, "Next review in %d day(s) on %s (ease %.2f)\n",
			card.IntervalDays, card.NextReview.Format(time.DateOnly), card.EaseFactor)
		return
	}
	_, _ = cli.red.Fprintf(cli.stdoutWriter, "Relearn: shown again at %s (ease %.2f)\n",
		card.NextReview.Format(time.TimeOnly), card.EaseFactor)
}

func (cli *StudyCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", errEnd
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func isQuit(line string) bool {
	return strings.EqualFold(line, "q")
}

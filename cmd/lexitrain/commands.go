package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lexitrain/internal/domain"
)

func newQuizCmd(a *app) *cobra.Command {
	var levelFlag string
	var count int

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run an interactive multiple-choice quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := domain.ParseLevel(strings.ToUpper(levelFlag))
			if err != nil {
				return err
			}
			return a.runQuiz(cmd, level, count)
		},
	}

	cmd.Flags().StringVarP(&levelFlag, "level", "l", "A1", "CEFR level (A1-C2)")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of questions")
	return cmd
}

// runQuiz drives one interactive session over stdin/stdout.
func (a *app) runQuiz(cmd *cobra.Command, level domain.Level, count int) error {
	ctx := cmd.Context()

	quiz, err := a.engine.StartQuiz(ctx, level, count)
	if err != nil {
		var insufficient *domain.InsufficientCorpusError
		if errors.As(err, &insufficient) {
			return fmt.Errorf("not enough words for a %d-question quiz, try a different level: %w", count, err)
		}
		return err
	}
	defer a.engine.Cancel()

	reader := bufio.NewReader(os.Stdin)
	total := len(quiz.Questions)

	for i := 0; i < total; i++ {
		q := quiz.Questions[quiz.Index]

		fmt.Printf("\n[%d/%d] %s\n", quiz.Index+1, total, q.Prompt)
		for n, opt := range q.Options {
			fmt.Printf("  %d) %s\n", n+1, opt)
		}

		choice, err := readChoice(reader, len(q.Options))
		if err != nil {
			return err
		}

		correct, err := a.engine.Answer(ctx, q.SourceWord.ID, q.Options[choice-1])
		if err != nil {
			return err
		}
		if correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Wrong. The answer was: %s\n", q.CorrectOption)
		}

		if quiz.Index < total-1 {
			if err := a.engine.Advance(); err != nil {
				return err
			}
		}
	}

	summary, err := a.engine.Finish(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nScore: %d/%d (%d%%), +%d XP\n",
		summary.CorrectCount, summary.TotalCount, summary.Accuracy, summary.XPAwarded)
	return nil
}

func readChoice(reader *bufio.Reader, max int) (int, error) {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("failed to read answer: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= max {
			return n, nil
		}
		fmt.Printf("Enter a number between 1 and %d\n", max)
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Import a leveled word corpus from an Excel sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.importer.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Processed %d rows: %d created, %d skipped, %d errors\n",
				result.Processed, result.Created, result.Skipped, len(result.Errors))
			for _, e := range result.Errors {
				fmt.Println("  " + e)
			}
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	var weekly bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show study statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				stats domain.StudyStats
				err   error
			)
			label := "Today"
			if weekly {
				stats, err = a.engine.WeeklyStats(cmd.Context())
				label = "Last 7 days"
			} else {
				stats, err = a.engine.TodayStats(cmd.Context())
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d sessions, %d words studied, %d/%d correct (%d%%), %d min\n",
				label, stats.Sessions, stats.WordsStudied,
				stats.CorrectAnswers, stats.TotalQuestions, stats.Accuracy(), stats.DurationMin)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&weekly, "weekly", "w", false, "aggregate the last 7 days instead of today")
	return cmd
}

func newWordsCmd(a *app) *cobra.Command {
	var bookmarked, clearProgress bool

	cmd := &cobra.Command{
		Use:   "words",
		Short: "List weak or bookmarked words",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearProgress {
				if err := a.tracker.ClearProgress(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("All progress cleared")
				return nil
			}

			var (
				words []domain.WordEntry
				err   error
			)
			if bookmarked {
				words, err = a.engine.BookmarkedWords(cmd.Context())
			} else {
				words, err = a.engine.WeakWords(cmd.Context())
			}
			if err != nil {
				return err
			}

			if len(words) == 0 {
				fmt.Println("Nothing to review")
				return nil
			}
			for _, w := range words {
				line := fmt.Sprintf("%-20s %s", w.SurfaceForm, w.Level)
				if w.Definition != "" {
					line += "  " + w.Definition
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&bookmarked, "bookmarked", "b", false, "list bookmarked words instead of weak ones")
	cmd.Flags().BoolVar(&clearProgress, "clear-progress", false, "delete all mastery records")
	return cmd
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/lessons"
	"github.com/abhisek/tototime/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the learner's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		u, ok := e.progress.User()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No learner yet. Run tototime to sign up.")
			return nil
		}
		printStats(cmd, u)

		saved, ok, err := e.db.Records().UpdatedAt(cmd.Context(), progress.RecordKey)
		if err != nil {
			return fmt.Errorf("read record time: %w", err)
		}
		if ok {
			fmt.Fprintf(cmd.OutOrStdout(), "\nLast saved %s\n", saved.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func printStats(cmd *cobra.Command, u progress.UserRecord) {
	out := cmd.OutOrStdout()
	c := characters.MustGet(u.Character)
	p := u.Progress

	fmt.Fprintf(out, "Learner:   %s\n", u.Name)
	fmt.Fprintf(out, "Buddy:     %s %s\n", c.Emoji, c.Name)
	fmt.Fprintf(out, "Joined:    %s\n", u.CreatedAt.Local().Format("2006-01-02"))
	fmt.Fprintf(out, "Stars:     %d\n", p.TotalStars)
	fmt.Fprintf(out, "Streak:    %d day(s)\n", p.CurrentStreak)
	if p.LastPlayedDate != nil {
		fmt.Fprintf(out, "Last play: %s\n", *p.LastPlayedDate)
	}

	var done []string
	for _, id := range p.LessonsCompleted {
		if l, ok := lessons.Get(id); ok {
			done = append(done, l.Title)
		}
	}
	fmt.Fprintf(out, "Lessons:   %d/%d", len(p.LessonsCompleted), lessons.Count())
	if len(done) > 0 {
		fmt.Fprintf(out, " (%s)", strings.Join(done, ", "))
	}
	fmt.Fprintln(out)

	if len(p.QuizScores) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-16s  %-20s  %7s\n", "Date", "Quiz", "Score")
	fmt.Fprintln(out, strings.Repeat("─", 48))
	for _, q := range p.QuizScores {
		name := "General"
		if l, ok := lessons.Get(q.LessonID); ok {
			name = l.Title
		}
		fmt.Fprintf(out, "%-16s  %-20s  %3d/%-3d\n",
			q.Date.Local().Format("2006-01-02 15:04"), truncate(name, 20), q.Score, q.TotalQuestions)
	}
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

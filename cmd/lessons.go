package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tototime/internal/lessons"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List lessons and which are unlocked",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		var completed []int
		if u, ok := e.progress.User(); ok {
			completed = u.Progress.LessonsCompleted
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-3s  %-4s  %-30s  %-13s  %s\n", "#", "", "Lesson", "Level", "Needs")
		fmt.Fprintln(out, strings.Repeat("─", 66))
		for _, l := range lessons.All() {
			mark := "  "
			switch {
			case slices.Contains(completed, l.ID):
				mark = "✓"
			case !lessons.IsUnlocked(l.ID, completed):
				mark = "🔒"
			}
			var needs []string
			for _, id := range l.RequiredLessons {
				needs = append(needs, fmt.Sprint(id))
			}
			fmt.Fprintf(out, "%-3d  %-4s  %-30s  %-13s  %s\n",
				l.ID, mark, truncate(l.Title, 30), l.Difficulty.DisplayName(), strings.Join(needs, ", "))
		}
		return nil
	},
}

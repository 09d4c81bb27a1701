package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tototime/internal/buddy"
	"github.com/abhisek/tototime/internal/characters"
)

var buddyCmd = &cobra.Command{
	Use:   "buddy [greeting|encouragement|celebration]",
	Short: "Hear a line from the learner's buddy",
	Long:  "Prints one line from the learner's character. Uses the configured model when one is reachable and the built-in lines otherwise.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mood := characters.MoodGreeting
		if len(args) == 1 {
			m, err := characters.ParseMood(args[0])
			if err != nil {
				return err
			}
			mood = m
		}

		e, err := openEnv(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		c := characters.MustGet(characters.Bunny)
		learner := ""
		if u, ok := e.progress.User(); ok {
			c = characters.MustGet(u.Character)
			learner = u.Name
		}

		svc := buddy.Setup(cmd.Context(), e.cfg.Buddy.Enabled, e.cfg.Buddy.Timeout, e.cfg.LLM, e.logger,
			buddy.WithShareName(e.cfg.Buddy.ShareName))
		line := svc.Line(cmd.Context(), buddy.Request{
			Character: c,
			Mood:      mood,
			Situation: "The learner asked their buddy to say something.",
			Learner:   learner,
		})
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", c.Emoji, c.FirstName(), line.Text)
		return nil
	},
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/sahayak/internal/plans"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show today's lesson plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, _ := cmd.Flags().GetInt("offset")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		p := e.controller(cmd.Context()).Profile()
		if !p.IsComplete() {
			fmt.Println("Complete your profile to unlock a personalized daily plan:")
			fmt.Println("  sahayak profile set --grade \"Grade 4\" --subject Math")
			fmt.Println()
		}

		plan := plans.Select(p, offset, time.Now())
		fmt.Println(plan.Title)
		fmt.Printf("%s · %s\n\n", plan.Duration, plan.GroupSize)
		fmt.Println("Preparation")
		fmt.Println("  " + plan.Prep)
		fmt.Println()
		fmt.Println("Steps")
		for i, s := range plan.Steps {
			fmt.Printf("  %d. %s\n", i+1, s)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().IntP("offset", "o", 0, "Show the plan this many tasks after today's")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your activity statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		st := e.controller(cmd.Context()).Stats()

		fmt.Printf("Streak:            %d days\n", st.CurrentStreak)
		fmt.Printf("Questions asked:   %d\n", st.TotalQueries)
		fmt.Printf("Lessons viewed:    %d\n", st.ResourcesViewed)
		fmt.Printf("Last active:       %s\n", st.LastActiveDate)
		fmt.Println()
		fmt.Println("Last 7 days")
		fmt.Println(strings.Repeat("─", 32))
		for _, d := range st.ChartPoints() {
			fmt.Printf("%-6s %3d %s\n", d.Date, d.Count, strings.Repeat("█", d.Count))
		}
		fmt.Println()
		fmt.Printf("Super Asker:         %3d%%\n", st.QueryGoalPercent())
		fmt.Printf("Methodology Master:  %3d%%\n", st.ResourceGoalPercent())
		return nil
	},
}

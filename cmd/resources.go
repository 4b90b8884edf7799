package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/resources"
	"github.com/abhisek/sahayak/internal/stats"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List teacher-training resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")
		openID, _ := cmd.Flags().GetString("open")

		if openID != "" {
			return openResource(cmd, openID)
		}

		list := resources.Filter(resources.Catalog(), category, search)
		if len(list) == 0 {
			fmt.Println("No resources match.")
			return nil
		}

		fmt.Printf("%-4s  %-44s  %-8s  %-20s  %s\n", "ID", "Title", "Length", "Category", "Level")
		fmt.Println(strings.Repeat("─", 96))
		for _, r := range list {
			fmt.Printf("%-4s  %-44s  %-8s  %-20s  %s\n",
				r.ID, truncate(r.Title, 44), r.Duration, truncate(r.Category, 20), r.Difficulty)
		}
		return nil
	},
}

// openResource launches the resource and counts it as viewed.
func openResource(cmd *cobra.Command, id string) error {
	var found *resources.LearningResource
	for _, r := range resources.Catalog() {
		if r.ID == id {
			found = &r
			break
		}
	}
	if found == nil {
		return fmt.Errorf("resource %q not found", id)
	}

	ctx := cmd.Context()
	if err := resources.OpenResource(ctx, resources.BrowserOpener{}, *found); err != nil {
		return fmt.Errorf("open %s: %w", found.Title, err)
	}

	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()
	if err := e.controller(ctx).Dispatch(ctx, controller.RecordActivity{Kind: stats.KindResourceView}); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}

	fmt.Println("Opened", found.Title)
	return nil
}

func init() {
	resourcesCmd.Flags().StringP("category", "c", resources.AllCategories, "Filter by category")
	resourcesCmd.Flags().StringP("search", "s", "", "Filter by title")
	resourcesCmd.Flags().String("open", "", "Open the resource with this ID")
}

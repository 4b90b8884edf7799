package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the teacher profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the teacher profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		printProfile(e.controller(cmd.Context()).Profile())
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update profile fields. Only the flags given are changed; pass an empty
value to clear a field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctrl := e.controller(ctx)
		p := ctrl.Profile()
		fields := []struct {
			flag string
			dst  *string
		}{
			{"name", &p.Name},
			{"school", &p.School},
			{"grade", &p.Grade},
			{"subject", &p.Subject},
			{"language", &p.Language},
		}
		changed := false
		for _, f := range fields {
			if cmd.Flags().Changed(f.flag) {
				*f.dst, _ = cmd.Flags().GetString(f.flag)
				changed = true
			}
		}
		if !changed {
			return fmt.Errorf("nothing to update; pass at least one of --name, --school, --grade, --subject, --language")
		}

		if err := ctrl.Dispatch(ctx, controller.UpdateProfile{Profile: p}); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		printProfile(p)
		return nil
	},
}

func printProfile(p profile.UserProfile) {
	show := func(v string) string {
		if v == "" {
			return profile.NotSet
		}
		return v
	}
	fmt.Printf("Name:      %s\n", show(p.Name))
	fmt.Printf("School:    %s\n", show(p.School))
	fmt.Printf("Grade:     %s\n", show(p.Grade))
	fmt.Printf("Subject:   %s\n", show(p.Subject))
	fmt.Printf("Language:  %s\n", show(p.Language))
	fmt.Printf("Strength:  %d%%\n", p.CompletionPercent())
}

func init() {
	profileSetCmd.Flags().String("name", "", "Your name")
	profileSetCmd.Flags().String("school", "", "School name")
	profileSetCmd.Flags().String("grade", "", "Grade you teach, e.g. \"Grade 4\"")
	profileSetCmd.Flags().String("subject", "", "Subject you teach, e.g. Math")
	profileSetCmd.Flags().String("language", "", "Preferred language")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}

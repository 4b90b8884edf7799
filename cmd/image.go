package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sahayak/internal/assistant"
	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/stats"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize <text>",
	Short: "Draw a classroom illustration of a concept",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		img, err := e.coach(cmd.Context()).Visualize(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("visualize (%s): %w", llm.Classify(err), err)
		}
		return writeImage(out, "illustration", img)
	},
}

var editImageCmd = &cobra.Command{
	Use:   "edit-image",
	Short: "Edit a classroom photo with an instruction",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		instruction, _ := cmd.Flags().GetString("instruction")
		out, _ := cmd.Flags().GetString("out")

		src, err := assistant.LoadImage(in)
		if err != nil {
			return fmt.Errorf("load %s: %w", in, err)
		}

		ctx := cmd.Context()
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		img, err := e.coach(ctx).EditImage(ctx, src, instruction)
		if err != nil {
			return fmt.Errorf("edit image (%s): %w", llm.Classify(err), err)
		}
		if err := e.controller(ctx).Dispatch(ctx, controller.RecordActivity{Kind: stats.KindQuery}); err != nil {
			return fmt.Errorf("save stats: %w", err)
		}
		return writeImage(out, "edited", img)
	},
}

// writeImage saves img at out, or at name plus the image's extension when
// out is empty.
func writeImage(out, name string, img *llm.Image) error {
	if out == "" {
		out = name + assistant.Extension(img)
	}
	if err := assistant.SaveImage(out, img); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	fmt.Println("Saved", out)
	return nil
}

func init() {
	visualizeCmd.Flags().StringP("out", "o", "", "Output file (default illustration.<ext>)")

	editImageCmd.Flags().StringP("in", "i", "", "Photo to edit (PNG, JPEG, GIF or WebP)")
	editImageCmd.Flags().StringP("instruction", "m", "", "What to change, e.g. \"Remove background\"")
	editImageCmd.Flags().StringP("out", "o", "", "Output file (default edited.<ext>)")
	editImageCmd.MarkFlagRequired("in")
	editImageCmd.MarkFlagRequired("instruction")
}

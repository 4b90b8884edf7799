package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sahayak/internal/assistant"
	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/stats"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the teaching assistant one question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctrl := e.controller(ctx)
		session := assistant.NewSession(e.coach(ctx), ctrl.Profile())

		reply, ok := session.Send(ctx, strings.Join(args, " "))
		if !ok {
			return fmt.Errorf("question is empty")
		}
		if err := ctrl.Dispatch(ctx, controller.RecordActivity{Kind: stats.KindQuery}); err != nil {
			return fmt.Errorf("save stats: %w", err)
		}

		fmt.Println(reply.Text)
		return nil
	},
}

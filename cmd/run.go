package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/sahayak/internal/app"
	"github.com/abhisek/sahayak/internal/assistant"
	"github.com/abhisek/sahayak/internal/resources"
	"github.com/abhisek/sahayak/internal/speech"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the Sahayak dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()
	e.pruneEvents(ctx)

	deps := app.Deps{
		Controller: e.controller(ctx),
		Opener:     resources.BrowserOpener{},
		ImageDir:   e.imageDir(),
		Logger:     e.logger,
	}

	provider, err := e.provider(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The assistant will explain how to set a key.")
		deps.Coach = assistant.NewCoach(nil, err, e.logger)
	} else {
		deps.Coach = assistant.NewCoach(provider, nil, e.logger)
		deps.Engine = speech.NewRecorderEngine(provider, 0, e.logger)
	}

	return app.Run(deps)
}

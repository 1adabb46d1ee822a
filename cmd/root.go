package cmd

import (
	"strings"

	"github.com/bnema/wellbeing-cli/internal/observability"
	"github.com/spf13/cobra"
)

// annotationStandalone marks commands that run without wiring the app.
const annotationStandalone = "wb/standalone"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var userID string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "wb",
		Short:         "Wellbeing CLI (wb): emotional check-ins from text, voice and face",
		Long:          "wb collects a text note, an audio clip and a face photo, sends them to the wellbeing analysis service and renders the fused emotion report and your session history.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "user id sent to the analysis service (default from user.name)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from log.level)")

	// Subcommands hold this pointer; it is filled in once a command that needs
	// the backend, drafts or devices actually runs.
	app := &app{}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if !needsWiring(cmd) {
			return nil
		}

		wired, err := wireApp()
		if err != nil {
			return err
		}
		*app = *wired

		if trimmed := strings.TrimSpace(userID); trimmed != "" {
			app.cfg.UserName = trimmed
		}

		level := app.cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logger, err := observability.NewLogger(cmd.ErrOrStderr(), level)
		if err != nil {
			return err
		}
		app.log = logger

		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAnalyzeCmd(app),
		newHistoryCmd(app),
		newDraftCmd(app),
	)

	return rootCmd
}

func needsWiring(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	if cmd.HasParent() && cmd.Parent().Name() == "completion" {
		return false
	}

	return cmd.Annotations[annotationStandalone] != "true"
}

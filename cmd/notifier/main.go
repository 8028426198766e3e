package main

import (
	"brainbox/internal/app/notifier"
	"brainbox/internal/config"
	notifyduereminders "brainbox/internal/core/services/notify_due_reminders"
	desktopnotifier "brainbox/internal/implementations/desktop_notifier"
	"brainbox/internal/implementations/logging"
	reminderclient "brainbox/internal/implementations/reminder_client"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "notifier",
		Short:        "Raise desktop notifications for due BrainBox reminders",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadNotifier(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	config.BindNotifierFlags(rootCmd.Flags())
	return rootCmd
}

func run(ctx context.Context, cfg *config.NotifierConfig) error {
	log := logging.NewZapLogger()
	if cfg.Verbose {
		log = logging.NewZapDevelopmentLogger()
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := notifyduereminders.New(
		log,
		reminderclient.New(cfg.BackendURL, cfg.Timeout),
		desktopnotifier.New(),
		cfg.Acknowledge,
	)
	notifier.Run(ctx, log, service, cfg.Interval)
	return nil
}

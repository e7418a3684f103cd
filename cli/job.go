package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/Dafi-web/events-sub000/internal/server"
	"github.com/Dafi-web/events-sub000/jobs"
	"github.com/Dafi-web/events-sub000/pkg/log"
	"github.com/Dafi-web/events-sub000/plugins/notifiers"
)

type jobRunner func(context.Context, jobs.Config) error

var jobNames = []string{
	string(jobs.TypeViewMarkerCleanup),
	string(jobs.TypeFlaggedCommentsReminder),
}

func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "job",
		Aliases: []string{"jobs"},
		Short:   "Run maintenance jobs",
		Example: heredoc.Doc(`
			$ engagement job run view_marker_cleanup -c ./config.yaml
		`),
	}
	cmd.AddCommand(runJobCmd())
	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")
	return cmd
}

func runJobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <job>",
		Short: "Run a job once with its configuration from the config file",
		Example: heredoc.Doc(`
			$ engagement job run view_marker_cleanup
			$ engagement job run flagged_comments_reminder
		`),
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: jobNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			name := jobs.Type(args[0])
			return runJob(ctx, &cfg, name, cfg.Jobs[name].Config)
		},
	}
}

func runJob(ctx context.Context, cfg *server.Config, name jobs.Type, jobConfig jobs.Config) error {
	logger := log.NewCtxLogger(cfg.LogLevel, []log.ContextKey{})
	notifier, err := notifiers.NewClient(&cfg.Notifier, logger)
	if err != nil {
		return err
	}

	services, err := server.InitServices(server.ServiceDeps{
		Config:   cfg,
		Logger:   logger,
		Notifier: notifier,
	})
	if err != nil {
		return fmt.Errorf("initializing services: %w", err)
	}
	defer services.Close() //nolint:errcheck

	handler := jobs.NewHandler(logger, services.ViewService, services.CommentService, notifier)
	runners := map[jobs.Type]jobRunner{
		jobs.TypeViewMarkerCleanup:       handler.ViewMarkerCleanup,
		jobs.TypeFlaggedCommentsReminder: handler.FlaggedCommentsReminder,
	}

	run, ok := runners[name]
	if !ok {
		return fmt.Errorf("invalid job name: %s", name)
	}
	if err := run(ctx, jobConfig); err != nil {
		return fmt.Errorf("running job %q: %w", name, err)
	}
	logger.Info(ctx, "job finished", "job", name)
	return nil
}

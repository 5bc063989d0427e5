// Package cli is the minibot command line: it loads configuration, wires the
// bot client and runs one of the operator modes.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"minibot/internal/app"
	"minibot/internal/domain/report"
	"minibot/internal/infra/config"
	"minibot/internal/infra/logger"
	"minibot/internal/infra/scheduler"
	"minibot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Deps are the collaborators the command line runs with.
type Deps struct {
	Stdout     io.Writer
	Collector  report.Collector // Nil uses app.PlaceholderCollector
	LoadConfig func() (*config.AppConfig, error)
}

type flags struct {
	userID   bool
	dotenv   bool
	testText string
	ack      bool
	cronSpec string
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Deps) int {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.LoadConfig == nil {
		deps.LoadConfig = config.Load
	}

	console := logger.NewConsole(deps.Stdout)
	cmd := NewRootCommand(deps, console)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		console.Error(err.Error())
		return 1
	}
	return 0
}

// NewRootCommand builds the minibot command. Console lines go to console.
func NewRootCommand(deps Deps, console *logrus.Logger) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "minibot",
		Short:         "Your Go Minibot for Telegram.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f, deps, console)
		},
	}
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stdout)

	fl := cmd.Flags()
	fl.BoolVarP(&f.userID, "userid", "u", false, "Prints the last USER_ID your bot received a message from.")
	fl.BoolVarP(&f.dotenv, "dotenv", "d", false, "Prints the information that is stored in the .env file.")
	fl.StringVarP(&f.testText, "test", "t", "", "Send a test message from bot to the configured user id.")
	fl.BoolVarP(&f.ack, "ack", "a", false, "Confirms all pending updates so only newer messages are seen.")
	fl.StringVar(&f.cronSpec, "cron", "", "Runs the standard mode on this cron schedule until interrupted (overrides CRON_SPEC).")
	cmd.MarkFlagsMutuallyExclusive("userid", "dotenv", "test", "ack", "cron")

	return cmd
}

func run(ctx context.Context, f flags, deps Deps, console *logrus.Logger) error {
	// An empty --test text falls through to standard mode.
	testMode := f.testText != ""

	cfg, err := deps.LoadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg)

	if testMode {
		console.SetLevel(logrus.DebugLevel)
	}
	client := telegram.NewClientFromConfig(cfg,
		telegram.WithLogger(console),
		telegram.WithDebug(testMode),
	)
	operator := app.NewOperatorService(client, cfg.Token, cfg.UserID)
	reports := app.NewReportService(client, deps.Collector, cfg.UserID, logger.Component("report"))

	out := deps.Stdout
	switch {
	case f.userID:
		logger.Mode(out, "User ID Mode")
		id, err := operator.LastSenderID(ctx)
		if err != nil {
			return err
		}
		console.Infof("The last received message came from USER_ID: %d", id)

	case f.dotenv:
		logger.Mode(out, ".env mode")
		for _, field := range operator.LoadedConfig() {
			fmt.Fprintf(out, "    %s: %v\n", field.Key, field.Value)
		}

	case testMode:
		logger.Mode(out, "test mode (debugging active)")
		if err := reports.SendTest(ctx, f.testText); err != nil {
			return err
		}

	case f.ack:
		logger.Mode(out, "acknowledge mode")
		n, err := operator.AcknowledgeUpdates(ctx)
		if err != nil {
			return err
		}
		console.Infof("Confirmed %d pending update(s).", n)

	case f.cronSpec != "" || cfg.CronSpec != "":
		spec := f.cronSpec
		if spec == "" {
			spec = cfg.CronSpec
		}
		logger.Mode(out, "cron mode")
		return runScheduled(ctx, reports, spec)

	default:
		logger.Mode(out, "Standard mode")
		if err := reports.RunStandard(ctx); err != nil {
			return err
		}
		console.Info("all work done.")
	}
	return nil
}

// runScheduled blocks until ctx is done or the process is interrupted.
func runScheduled(ctx context.Context, runner app.ReportRunner, spec string) error {
	s := scheduler.NewReportScheduler(runner, logger.Component("scheduler"), spec)
	if err := s.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	s.Stop()
	return nil
}

// Package hook implements the orchestrator invoked once per completed render
// job. It sequences configuration, dependency readiness, message composition,
// and dual-channel delivery, and guarantees that no fault of any kind
// propagates uncaught back into the host application.
package hook

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/brixybrice/Resolve-job-notification/internal/build"
	"github.com/brixybrice/Resolve-job-notification/internal/config"
	"github.com/brixybrice/Resolve-job-notification/internal/deps"
	clierrors "github.com/brixybrice/Resolve-job-notification/internal/errors"
	"github.com/brixybrice/Resolve-job-notification/internal/logging"
	"github.com/brixybrice/Resolve-job-notification/internal/notify"
	"github.com/brixybrice/Resolve-job-notification/internal/render"
	"github.com/brixybrice/Resolve-job-notification/internal/slack"
)

// ChatSender delivers the composed message to the chat service
type ChatSender interface {
	Send(ctx context.Context, message string) error
}

// DesktopSender delivers the composed message to the local desktop
type DesktopSender interface {
	Deliver(message string, failed bool) error
}

// DependencyEnsurer verifies the chat SDK is importable in the host runtime
type DependencyEnsurer interface {
	Ensure(ctx context.Context) deps.Result
}

// Runner wires the pipeline. The factory fields default to the production
// implementations; tests swap in fakes.
type Runner struct {
	ConfigPath string
	Console    io.Writer

	LoadConfig   func(path string) (*config.Config, error)
	EnsureConfig func(path string) (created bool, err error)
	OpenLog      func(dir string, console io.Writer) (*logging.Handle, error)
	NewEnsurer   func(cfg *config.Config) DependencyEnsurer
	NewChat      func(cfg *config.Config) ChatSender
	NewDesktop   func(cfg *config.Config) DesktopSender
}

// New creates a Runner with production factories
func New(configPath string, console io.Writer) *Runner {
	return &Runner{
		ConfigPath:   configPath,
		Console:      console,
		LoadConfig:   config.Load,
		EnsureConfig: config.EnsureExists,
		OpenLog:      logging.Open,
		NewEnsurer: func(cfg *config.Config) DependencyEnsurer {
			return deps.New(cfg.HostPython, cfg.ChatSDK, cfg.Timeout())
		},
		NewChat: func(cfg *config.Config) ChatSender {
			return slack.New(cfg.SlackToken, cfg.ChannelName, cfg.Timeout())
		},
		NewDesktop: func(cfg *config.Config) DesktopSender {
			return notify.NewDispatcher(cfg.Desktop.Title, cfg.Desktop.Sound, cfg.Desktop.SoundFile, cfg.Timeout())
		},
	}
}

// Run executes the pipeline for one completed render job.
// Every stage transition produces exactly one log entry, and any
// unanticipated fault is converted into a logged ERROR plus a clean
// non-crashing outcome: nothing ever panics past this boundary.
func (r *Runner) Run(ctx context.Context, job render.JobResult) (outcome Outcome) {
	log := logging.Bootstrap(r.Console)

	defer func() {
		if rec := recover(); rec != nil {
			cliErr := clierrors.NewRuntimeError(fmt.Sprintf("unexpected fault: %v", rec))
			log.Error().
				Str("state", string(StateFault)).
				Str("category", cliErr.Category.String()).
				Str("stack", string(debug.Stack())).
				Msg(cliErr.Message)
			outcome = Outcome{State: StateFault, Code: ExitFault}
		}
	}()

	created, err := r.EnsureConfig(r.ConfigPath)
	if err != nil {
		log.Error().
			Str("state", string(StateConfigError)).
			Msgf("settings bootstrap failed: %v", err)
		return Outcome{State: StateConfigError, Code: ExitConfigError}
	}
	if created {
		log.Error().
			Str("state", string(StateBootstrapped)).
			Str("path", r.ConfigPath).
			Msg("settings template created, edit the file and relaunch the render")
		return Outcome{State: StateBootstrapped, Code: ExitBootstrapped}
	}

	cfg, err := r.LoadConfig(r.ConfigPath)
	if err != nil {
		log.Error().
			Str("state", string(StateConfigError)).
			Msgf("settings error: %v", err)
		return Outcome{State: StateConfigError, Code: ExitConfigError}
	}

	handle, err := r.OpenLog(cfg.LogDirectory, r.Console)
	if err != nil {
		log.Error().
			Str("state", string(StateConfigError)).
			Msgf("log setup failed: %v", err)
		return Outcome{State: StateConfigError, Code: ExitConfigError}
	}
	defer handle.Close()
	log = handle.Logger()

	hostname, _ := os.Hostname()
	log.Info().
		Str("state", string(StateConfigLoaded)).
		Str("config", r.ConfigPath).
		Str("log", handle.Path()).
		Str("channel", cfg.ChannelName).
		Str("host", hostname).
		Str("os", runtime.GOOS).
		Str("runtime", runtime.Version()).
		Str("version", build.Version).
		Str("job", job.JobID).
		Msg("settings loaded")

	result := r.NewEnsurer(cfg).Ensure(ctx)
	if !result.Ready {
		e := log.Error().
			Str("state", string(StateDependencyFatal)).
			Str("package", cfg.ChatSDK).
			Bool("install_attempted", result.Installed)
		if result.Output != "" {
			e = e.Str("install_output", result.Output)
		}
		e.Msgf("dependency unavailable: %s", result.Reason)
		return Outcome{State: StateDependencyFatal, Code: ExitDependencyFatal}
	}
	e := log.Info().
		Str("state", string(StateDependencyReady)).
		Str("package", cfg.ChatSDK).
		Bool("installed", result.Installed)
	if result.Output != "" {
		e = e.Str("install_output", result.Output)
	}
	e.Msg("dependency ready")

	message := render.Compose(job)

	// Both channels are attempted unconditionally once each, chat first.
	// A failure (or even a panic) in one never suppresses the other.
	chatErr := contain("chat", func() error {
		return r.NewChat(cfg).Send(ctx, message)
	})
	if chatErr != nil {
		cliErr := clierrors.NewChannelError("chat delivery failed", chatErr)
		log.Error().
			Str("channel", "slack").
			Str("message", message).
			Str("category", cliErr.Category.String()).
			Msgf("%s: %v", cliErr.Message, cliErr.Unwrap())
	} else {
		log.Info().
			Str("channel", "slack").
			Str("message", message).
			Msg("chat delivery ok")
	}

	desktopErr := contain("desktop", func() error {
		return r.NewDesktop(cfg).Deliver(message, job.Failed())
	})
	if desktopErr != nil {
		cliErr := clierrors.NewDesktopError("desktop delivery failed", desktopErr)
		log.Error().
			Str("channel", "desktop").
			Str("category", cliErr.Category.String()).
			Msgf("%s: %v", cliErr.Message, cliErr.Unwrap())
	} else {
		log.Info().
			Str("channel", "desktop").
			Msg("desktop delivery ok")
	}

	if chatErr != nil || desktopErr != nil {
		log.Warn().
			Str("state", string(StateDeliveryPartial)).
			Msg("deliver hook done with channel failures")
		return Outcome{State: StateDeliveryPartial, Code: ExitDelivered}
	}

	log.Info().
		Str("state", string(StateDelivered)).
		Msg("deliver hook done")
	return Outcome{State: StateDelivered, Code: ExitDelivered}
}

// contain runs one delivery attempt and converts a panic into an error so a
// crashing channel cannot take the other down with it.
func contain(name string, fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s channel panicked: %v", name, rec)
		}
	}()
	return fn()
}

package hook

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brixybrice/Resolve-job-notification/internal/config"
	"github.com/brixybrice/Resolve-job-notification/internal/deps"
	"github.com/brixybrice/Resolve-job-notification/internal/logging"
	"github.com/brixybrice/Resolve-job-notification/internal/render"
)

type fakeChat struct {
	err      error
	panicMsg string
	messages []string
}

func (f *fakeChat) Send(_ context.Context, message string) error {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	f.messages = append(f.messages, message)
	return f.err
}

type fakeDesktop struct {
	err      error
	panicMsg string
	messages []string
	failed   []bool
}

func (f *fakeDesktop) Deliver(message string, failed bool) error {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	f.messages = append(f.messages, message)
	f.failed = append(f.failed, failed)
	return f.err
}

type fakeEnsurer struct {
	result deps.Result
	calls  int
}

func (f *fakeEnsurer) Ensure(_ context.Context) deps.Result {
	f.calls++
	return f.result
}

type fixture struct {
	runner  *Runner
	console *bytes.Buffer
	logDir  string
	chat    *fakeChat
	desktop *fakeDesktop
	ensurer *fakeEnsurer
}

// newFixture builds a Runner over a real settings file and log directory,
// with fake channels and a fake ensurer.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	configPath := filepath.Join(dir, config.SettingsFileName)
	settings := `{
		"slack_token": "xoxb-test",
		"channel_name": "C12345678",
		"log_directory": ` + quoteJSON(logDir) + `
	}`
	require.NoError(t, os.WriteFile(configPath, []byte(settings), 0o644))

	f := &fixture{
		console: &bytes.Buffer{},
		logDir:  logDir,
		chat:    &fakeChat{},
		desktop: &fakeDesktop{},
		ensurer: &fakeEnsurer{result: deps.Result{Ready: true}},
	}
	f.runner = New(configPath, f.console)
	f.runner.NewEnsurer = func(*config.Config) DependencyEnsurer { return f.ensurer }
	f.runner.NewChat = func(*config.Config) ChatSender { return f.chat }
	f.runner.NewDesktop = func(*config.Config) DesktopSender { return f.desktop }
	return f
}

func quoteJSON(s string) string {
	return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"`
}

func (f *fixture) logContent(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(f.logDir, logging.FileName(time.Now())))
	require.NoError(t, err)
	return string(raw)
}

func jobComplete() render.JobResult {
	return render.JobResult{
		Project:    "MyProject",
		Timeline:   "Timeline_01",
		OutputFile: "master_prores.mov",
		Status:     render.StatusComplete,
	}
}

func TestRun_Delivered(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	job := jobComplete()

	outcome := f.runner.Run(context.Background(), job)

	assert.Equal(t, StateDelivered, outcome.State)
	assert.Equal(t, ExitDelivered, outcome.Code)

	require.Len(t, f.chat.messages, 1)
	assert.Equal(t, "Complete [MyProject] Timeline_01 → master_prores.mov", f.chat.messages[0])

	require.Len(t, f.desktop.messages, 1)
	assert.Equal(t, f.chat.messages[0], f.desktop.messages[0], "desktop body matches chat message")
	assert.False(t, f.desktop.failed[0])
}

// TestRun_OneEntryPerTransition asserts the logging contract: exactly one
// entry per stage transition on a successful end-to-end run.
func TestRun_OneEntryPerTransition(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.runner.Run(context.Background(), jobComplete())

	content := f.logContent(t)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	assert.Len(t, lines, 5)

	for _, marker := range []string{
		"state=config_loaded",
		"state=dependency_ready",
		"channel=slack",
		"channel=desktop",
		"state=delivered",
	} {
		assert.Equal(t, 1, strings.Count(content, marker), "expected exactly one %s entry", marker)
	}
}

func TestRun_FailedJobMessage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	job := jobComplete()
	job.Status = "Failed"
	job.ErrorDetail = "disk full"

	outcome := f.runner.Run(context.Background(), job)

	assert.Equal(t, StateDelivered, outcome.State)
	require.Len(t, f.chat.messages, 1)
	assert.Equal(t, "Failed [MyProject] Timeline_01 → master_prores.mov (Error: disk full)", f.chat.messages[0])
	assert.True(t, f.desktop.failed[0], "desktop channel is told the job failed")
}

func TestRun_Bootstrap(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, config.SettingsDirName, config.SettingsFileName)

	f := &fixture{console: &bytes.Buffer{}, chat: &fakeChat{}, desktop: &fakeDesktop{}, ensurer: &fakeEnsurer{}}
	f.runner = New(configPath, f.console)
	f.runner.NewEnsurer = func(*config.Config) DependencyEnsurer { return f.ensurer }
	f.runner.NewChat = func(*config.Config) ChatSender { return f.chat }
	f.runner.NewDesktop = func(*config.Config) DesktopSender { return f.desktop }

	outcome := f.runner.Run(context.Background(), jobComplete())

	assert.Equal(t, StateBootstrapped, outcome.State)
	assert.Equal(t, ExitBootstrapped, outcome.Code)

	// Template created, operator instruction on console, no delivery attempted
	_, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Contains(t, f.console.String(), "edit the file")
	assert.Empty(t, f.chat.messages)
	assert.Empty(t, f.desktop.messages)
	assert.Equal(t, 0, f.ensurer.calls)
}

func TestRun_ConfigInvalid(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.runner.ConfigPath, []byte(`{"channel_name": "C1", "log_directory": "/tmp"}`), 0o644))

	outcome := f.runner.Run(context.Background(), jobComplete())

	assert.Equal(t, StateConfigError, outcome.State)
	assert.Equal(t, ExitConfigError, outcome.Code)
	assert.Contains(t, f.console.String(), "slack_token")
	assert.Empty(t, f.chat.messages)
	assert.Empty(t, f.desktop.messages)
}

func TestRun_DependencyFatal(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.ensurer.result = deps.Result{
		Installed: true,
		Output:    "pip exploded",
		Reason:    "pip install slack_sdk failed: exit status 1",
	}

	outcome := f.runner.Run(context.Background(), jobComplete())

	assert.Equal(t, StateDependencyFatal, outcome.State)
	assert.Equal(t, ExitDependencyFatal, outcome.Code)
	assert.Empty(t, f.chat.messages, "no partial notification on a fatal abort")
	assert.Empty(t, f.desktop.messages)

	content := f.logContent(t)
	assert.Contains(t, content, "state=dependency_fatal")
	assert.Contains(t, content, "pip exploded")
}

func TestRun_ChatFailureDoesNotBlockDesktop(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.chat.err = errors.New("invalid_auth")

	outcome := f.runner.Run(context.Background(), jobComplete())

	assert.Equal(t, StateDeliveryPartial, outcome.State)
	assert.Equal(t, ExitDelivered, outcome.Code, "channel failure never escalates to process failure")

	require.Len(t, f.desktop.messages, 1, "desktop attempt runs despite chat failure")

	content := f.logContent(t)
	assert.Contains(t, content, "chat delivery failed")
	assert.Contains(t, content, "Chat Delivery Error", "failure entry carries the error category")
	assert.Contains(t, content, "desktop delivery ok")
}

func TestRun_DesktopFailureIsIndependent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.desktop.err = errors.New("notify-send missing")

	outcome := f.runner.Run(context.Background(), jobComplete())

	assert.Equal(t, StateDeliveryPartial, outcome.State)
	assert.Equal(t, ExitDelivered, outcome.Code)
	require.Len(t, f.chat.messages, 1, "chat already delivered")

	content := f.logContent(t)
	assert.Contains(t, content, "chat delivery ok")
	assert.Contains(t, content, "desktop delivery failed")
	assert.Contains(t, content, "Desktop Notification Error", "failure entry carries the error category")
}

func TestRun_PanickingChannelIsContained(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.chat.panicMsg = "slack client exploded"

	outcome := f.runner.Run(context.Background(), jobComplete())

	assert.Equal(t, StateDeliveryPartial, outcome.State)
	require.Len(t, f.desktop.messages, 1, "desktop attempt survives a chat panic")

	content := f.logContent(t)
	assert.Contains(t, content, "chat channel panicked")
}

func TestRun_UnexpectedFaultIsCaught(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.runner.LoadConfig = func(string) (*config.Config, error) {
		panic("corrupted state")
	}

	outcome := f.runner.Run(context.Background(), jobComplete())

	assert.Equal(t, StateFault, outcome.State)
	assert.Equal(t, ExitFault, outcome.Code)
	assert.Contains(t, f.console.String(), "unexpected fault")
	assert.Contains(t, f.console.String(), "corrupted state")
	assert.Contains(t, f.console.String(), "Runtime Error")
}

func TestRun_BothChannelOutcomesLoggedWhenBothFail(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.chat.err = errors.New("network down")
	f.desktop.err = errors.New("no display")

	outcome := f.runner.Run(context.Background(), jobComplete())

	assert.Equal(t, StateDeliveryPartial, outcome.State)
	assert.Equal(t, ExitDelivered, outcome.Code)

	content := f.logContent(t)
	assert.Contains(t, content, "chat delivery failed")
	assert.Contains(t, content, "desktop delivery failed")
}

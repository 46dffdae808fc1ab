package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudeye/claudeye/cmd/claudeye/commands"
	"github.com/claudeye/claudeye/internal/core/domain"
)

// fakeApp records the calls the commands make.
type fakeApp struct {
	runKind    domain.ItemKind
	runProject string
	runSession string
	runItem    string
	runForce   bool
	runResult  any
	runErr     error
	cleaned    bool
}

func (a *fakeApp) Serve(context.Context) error { return nil }

func (a *fakeApp) RunOnce(_ context.Context, kind domain.ItemKind, project, sessionKey, itemName string, force bool) (any, error) {
	a.runKind = kind
	a.runProject = project
	a.runSession = sessionKey
	a.runItem = itemName
	a.runForce = force
	return a.runResult, a.runErr
}

func (a *fakeApp) Clean(context.Context) error {
	a.cleaned = true
	return nil
}

func (a *fakeApp) ListenAddr() string { return ":4777" }

func execute(t *testing.T, app *fakeApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(app)
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	app := &fakeApp{runResult: map[string]any{"passed": 2}}

	out, err := execute(t, app, "run", "proj", "sid", "-k", "evals", "-a", "a1", "-i", "EvalA", "--force")
	require.NoError(t, err)

	assert.Equal(t, domain.KindEvals, app.runKind)
	assert.Equal(t, "proj", app.runProject)
	assert.Equal(t, "sid/agent-a1", app.runSession)
	assert.Equal(t, "EvalA", app.runItem)
	assert.True(t, app.runForce)
	assert.JSONEq(t, `{"passed":2}`, out)
}

func TestRunCommand_DefaultsToEvals(t *testing.T) {
	app := &fakeApp{runResult: map[string]any{}}

	_, err := execute(t, app, "run", "proj", "sid")
	require.NoError(t, err)

	assert.Equal(t, domain.KindEvals, app.runKind)
	assert.Equal(t, "sid", app.runSession)
	assert.Empty(t, app.runItem)
	assert.False(t, app.runForce)
}

func TestRunCommand_RejectsUnknownKind(t *testing.T) {
	app := &fakeApp{}

	_, err := execute(t, app, "run", "proj", "sid", "-k", "bogus")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestRunCommand_RequiresArgs(t *testing.T) {
	app := &fakeApp{}

	_, err := execute(t, app, "run", "proj")
	assert.Error(t, err)
}

func TestCleanCommand(t *testing.T) {
	app := &fakeApp{}

	_, err := execute(t, app, "clean")
	require.NoError(t, err)
	assert.True(t, app.cleaned)
}

func TestVersionCommand(t *testing.T) {
	app := &fakeApp{}

	out, err := execute(t, app, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "claudeye version")
}

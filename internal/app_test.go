package internal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudtidy/internal/maintain"
	"cloudtidy/internal/models"
	"cloudtidy/internal/services"
	"cloudtidy/internal/structures"
	"cloudtidy/internal/testutil"
)

func testConfig(t *testing.T) *structures.Config {
	dir := t.TempDir()
	return &structures.Config{
		AppName: "cloudtidy",
		Session: structures.SessionConfig{FilePath: filepath.Join(dir, "sessions.json")},
		Logger:  structures.LoggerConfig{Dir: dir},
		Backup:  structures.BackupConfig{Dir: filepath.Join(dir, "backups")},
		Maintain: structures.MaintainConfig{
			TargetExtension: ".pdf",
			IndexPadding:    3,
		},
	}
}

func newTestApp(t *testing.T, conf *structures.Config, rem *testutil.MockRemote, prompter *testutil.MockPrompter) (*App, *testutil.MockLogger) {
	logger := &testutil.MockLogger{}
	bars := &[]*testutil.MockProgress{}
	executor := maintain.NewExecutor(rem, logger, testutil.NewMockProgressFactory(bars))
	sessions := services.NewSessionService(conf, logger)
	backups := maintain.NewBackupWriter(conf, logger)
	archiver := maintain.NewArchiver(conf, &testutil.MockCompressor{}, logger)

	return NewApp(conf, logger, prompter, sessions, rem, executor, backups, archiver), logger
}

func maintenanceListing() map[string]models.Node {
	return map[string]models.Node{
		"F":  {ID: "F", Type: models.NodeTypeFolder, Name: "Projects"},
		"n1": {ID: "n1", ParentID: "F", Type: models.NodeTypeFile, Name: "b.txt"},
		"n2": {ID: "n2", ParentID: "F", Type: models.NodeTypeFile, Name: "a.txt"},
		"n3": {ID: "n3", ParentID: "F", Type: models.NodeTypeFile, Name: "x.pdf"},
	}
}

func TestRun_EndToEndLive(t *testing.T) {
	conf := testConfig(t)
	rem := &testutil.MockRemote{Nodes: maintenanceListing()}
	prompter := &testutil.MockPrompter{
		Lines:    []string{"alice@example.com", "Projects", "doc"},
		Secrets:  []string{"pw"},
		Confirms: []bool{false, true}, // no dry run, final confirm
	}

	app, _ := newTestApp(t, conf, rem, prompter)
	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, []string{"alice@example.com"}, rem.LoginCalls)
	assert.Equal(t, []string{"n3"}, rem.Deleted)
	assert.Equal(t, []testutil.RenameCall{
		{NodeID: "n2", NewName: "doc_001.txt"},
		{NodeID: "n1", NewName: "doc_002.txt"},
	}, rem.Renamed)

	backups, err := filepath.Glob(filepath.Join(conf.Backup.Dir, "backup_*.json"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestRun_DryRunThenDecline(t *testing.T) {
	conf := testConfig(t)
	rem := &testutil.MockRemote{Nodes: maintenanceListing()}
	prompter := &testutil.MockPrompter{
		Lines:    []string{"alice@example.com", "Projects", "doc"},
		Secrets:  []string{"pw"},
		Confirms: []bool{true, false}, // dry run, then decline proceed
	}

	app, logger := newTestApp(t, conf, rem, prompter)
	require.NoError(t, app.Run(context.Background()))

	assert.Empty(t, rem.Deleted)
	assert.Empty(t, rem.Renamed)
	assert.Contains(t, logger.Messages("info"), "[DRY RUN] Would delete: x.pdf")
	assert.Contains(t, logger.Messages("info"), "[DRY RUN] Would rename: a.txt -> doc_001.txt")

	backups, err := filepath.Glob(filepath.Join(conf.Backup.Dir, "backup_*.json"))
	require.NoError(t, err)
	assert.Empty(t, backups, "dry run never writes a backup")
}

func TestRun_DryRunThenLiveShareOnePlan(t *testing.T) {
	conf := testConfig(t)
	rem := &testutil.MockRemote{Nodes: maintenanceListing()}
	prompter := &testutil.MockPrompter{
		Lines:    []string{"alice@example.com", "Projects", "doc"},
		Secrets:  []string{"pw"},
		Confirms: []bool{true, true, true}, // dry run, proceed, final
	}

	app, _ := newTestApp(t, conf, rem, prompter)
	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, []string{"n3"}, rem.Deleted, "live pass issues each mutation once")
	assert.Len(t, rem.Renamed, 2)
}

func TestRun_StagesReadListingThroughClient(t *testing.T) {
	conf := testConfig(t)
	rem := &testutil.MockRemote{Nodes: maintenanceListing()}
	prompter := &testutil.MockPrompter{
		Lines:    []string{"alice@example.com", "Projects", "doc"},
		Secrets:  []string{"pw"},
		Confirms: []bool{false, true},
	}

	app, _ := newTestApp(t, conf, rem, prompter)
	require.NoError(t, app.Run(context.Background()))

	// Folder lookup, analysis and the live pass each take their own read,
	// which is what lets a caching client collapse them to one fetch.
	assert.Equal(t, 3, rem.ListCalls)
}

func TestRun_EmptyFolderEndsCleanly(t *testing.T) {
	conf := testConfig(t)
	rem := &testutil.MockRemote{Nodes: map[string]models.Node{
		"F": {ID: "F", Type: models.NodeTypeFolder, Name: "Projects"},
	}}
	prompter := &testutil.MockPrompter{
		Lines:   []string{"alice@example.com", "Projects"},
		Secrets: []string{"pw"},
	}

	app, _ := newTestApp(t, conf, rem, prompter)
	require.NoError(t, app.Run(context.Background()))

	assert.Empty(t, rem.Deleted)
	assert.Empty(t, rem.Renamed)

	backups, err := filepath.Glob(filepath.Join(conf.Backup.Dir, "backup_*.json"))
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestRun_SubstringCandidateDeclined(t *testing.T) {
	conf := testConfig(t)
	rem := &testutil.MockRemote{Nodes: map[string]models.Node{
		"F": {ID: "F", Type: models.NodeTypeFolder, Name: "Projects Old"},
	}}
	prompter := &testutil.MockPrompter{
		Lines:    []string{"alice@example.com", "Proj"},
		Secrets:  []string{"pw"},
		Confirms: []bool{false}, // decline the suggested folder
	}

	app, _ := newTestApp(t, conf, rem, prompter)
	err := app.Run(context.Background())
	assert.ErrorIs(t, err, maintain.ErrFolderNotFound)
	assert.Empty(t, rem.Deleted)
	assert.Empty(t, rem.Renamed)
}

func TestRun_LoginFailureIsFatal(t *testing.T) {
	conf := testConfig(t)
	rem := &testutil.MockRemote{LoginErr: assert.AnError}
	prompter := &testutil.MockPrompter{
		Lines:   []string{"alice@example.com"},
		Secrets: []string{"bad"},
	}

	app, _ := newTestApp(t, conf, rem, prompter)
	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, rem.ListCalls)
}

func TestRun_SuccessfulLoginSavesSession(t *testing.T) {
	conf := testConfig(t)
	rem := &testutil.MockRemote{Nodes: maintenanceListing()}
	prompter := &testutil.MockPrompter{
		Lines:    []string{"alice@example.com", "Projects", "doc"},
		Secrets:  []string{"pw"},
		Confirms: []bool{false, false}, // no dry run, decline final
	}

	app, _ := newTestApp(t, conf, rem, prompter)
	require.NoError(t, app.Run(context.Background()))

	logger := &testutil.MockLogger{}
	reloaded := services.NewSessionService(conf, logger)
	assert.Equal(t, []string{"alice@example.com"}, reloaded.Accounts())
}

func TestRun_SavedAccountMenu(t *testing.T) {
	conf := testConfig(t)
	logger := &testutil.MockLogger{}
	seed := services.NewSessionService(conf, logger)
	seed.Touch("alice@example.com", "pw", mustParse(t, "2025-03-14 15:09:26"))

	rem := &testutil.MockRemote{Nodes: maintenanceListing()}
	prompter := &testutil.MockPrompter{
		Lines:    []string{"1", "Projects", "doc"},
		Confirms: []bool{true, false, true}, // use account, no dry run, final confirm
	}

	app, _ := newTestApp(t, conf, rem, prompter)
	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, []string{"alice@example.com"}, rem.LoginCalls)
	assert.Len(t, rem.Renamed, 2)
}

func TestRun_EmptyCustomNameCancels(t *testing.T) {
	conf := testConfig(t)
	rem := &testutil.MockRemote{Nodes: maintenanceListing()}
	prompter := &testutil.MockPrompter{
		Lines:   []string{"alice@example.com", "Projects", ""},
		Secrets: []string{"pw"},
	}

	app, _ := newTestApp(t, conf, rem, prompter)
	require.NoError(t, app.Run(context.Background()))
	assert.Empty(t, rem.Deleted)
	assert.Empty(t, rem.Renamed)
}

func TestClose_ReleasesCompressor(t *testing.T) {
	conf := testConfig(t)
	logger := &testutil.MockLogger{}
	comp := &testutil.MockCompressor{}
	bars := &[]*testutil.MockProgress{}
	rem := &testutil.MockRemote{}

	app := NewApp(conf, logger, &testutil.MockPrompter{},
		services.NewSessionService(conf, logger), rem,
		maintain.NewExecutor(rem, logger, testutil.NewMockProgressFactory(bars)),
		maintain.NewBackupWriter(conf, logger),
		maintain.NewArchiver(conf, comp, logger))

	app.Close()
	assert.True(t, comp.Closed)
}

func mustParse(t *testing.T, value string) (parsed time.Time) {
	t.Helper()
	parsed, err := time.Parse(services.LastUsedLayout, value)
	require.NoError(t, err)
	return parsed
}

package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThenLoadRoundTrips(t *testing.T) {
	svc := NewService(t.TempDir(), nil)

	data := NewGameData()
	data.Credits = 125
	data.OwnedAppIDs = []string{"notes"}
	data.OsSession.TerminalCwdPath = "/home/user/docs"

	require.NoError(t, svc.Save(data))

	loaded, ok := svc.TryLoad()
	require.True(t, ok)
	assert.Equal(t, 125, loaded.Credits)
	assert.Equal(t, []string{"notes"}, loaded.OwnedAppIDs)
	assert.Equal(t, "/home/user/docs", loaded.OsSession.TerminalCwdPath)
	assert.Equal(t, CurrentVersion, loaded.Version)
	assert.NotEmpty(t, loaded.LastSavedUtcIso)
	assert.Equal(t, LoadSourcePrimary, svc.LastLoadSource())
	assert.Equal(t, CurrentVersion, svc.LastLoadVersion())
}

func TestSecondSaveRotatesBackup(t *testing.T) {
	svc := NewService(t.TempDir(), nil)

	first := NewGameData()
	first.Credits = 10
	require.NoError(t, svc.Save(first))

	second := NewGameData()
	second.Credits = 20
	require.NoError(t, svc.Save(second))

	assert.FileExists(t, svc.BackupPath())

	// The backup holds the previous snapshot.
	require.NoError(t, os.Remove(svc.PrimaryPath()))
	loaded, ok := svc.TryLoad()
	require.True(t, ok)
	assert.Equal(t, 10, loaded.Credits)
	assert.Equal(t, LoadSourceBackup, svc.LastLoadSource())
}

func TestCorruptPrimaryFallsBackToBackup(t *testing.T) {
	svc := NewService(t.TempDir(), nil)

	data := NewGameData()
	data.Credits = 42
	require.NoError(t, svc.Save(data))
	require.NoError(t, svc.Save(data))

	require.NoError(t, os.WriteFile(svc.PrimaryPath(), []byte("{not json"), 0o644))

	loaded, ok := svc.TryLoad()
	require.True(t, ok)
	assert.Equal(t, 42, loaded.Credits)
	assert.Equal(t, LoadSourceBackup, svc.LastLoadSource())
}

func TestTamperedPayloadFailsDigestCheck(t *testing.T) {
	svc := NewService(t.TempDir(), nil)

	data := NewGameData()
	data.Credits = 5
	require.NoError(t, svc.Save(data))

	raw, err := os.ReadFile(svc.PrimaryPath())
	require.NoError(t, err)
	var env map[string]any
	require.NoError(t, json.Unmarshal(raw, &env))
	env["payloadJson"] = `{"version":1,"credits":9999}`
	tampered, err := json.Marshal(env)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(svc.PrimaryPath(), tampered, 0o644))

	_, ok := svc.TryLoad()
	assert.False(t, ok)
	assert.Equal(t, LoadSourceNone, svc.LastLoadSource())
}

func TestTryLoadWithNoFiles(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "empty"), nil)

	_, ok := svc.TryLoad()
	assert.False(t, ok)
	assert.Equal(t, LoadSourceNone, svc.LastLoadSource())
	assert.Zero(t, svc.LastLoadVersion())
}

func TestDeleteAllRemovesBothFiles(t *testing.T) {
	svc := NewService(t.TempDir(), nil)

	data := NewGameData()
	require.NoError(t, svc.Save(data))
	require.NoError(t, svc.Save(data))

	require.NoError(t, svc.DeleteAll())
	assert.NoFileExists(t, svc.PrimaryPath())
	assert.NoFileExists(t, svc.BackupPath())

	// Deleting again is a no-op.
	require.NoError(t, svc.DeleteAll())
}

func TestMigrateFillsMissingFields(t *testing.T) {
	data := &GameData{Version: 0}
	Migrate(data)

	assert.Equal(t, CurrentVersion, data.Version)
	assert.NotNil(t, data.OwnedAppIDs)
	assert.NotNil(t, data.InstalledAppIDs)
	assert.Equal(t, "/home/user", data.OsSession.TerminalCwdPath)
	assert.Equal(t, "/home/user", data.OsSession.FileManagerPath)

	// Existing values survive a second pass.
	data.OsSession.TerminalCwdPath = "/home/user/docs"
	Migrate(data)
	assert.Equal(t, "/home/user/docs", data.OsSession.TerminalCwdPath)
}

func TestMigrateClampsNegativeCredits(t *testing.T) {
	data := &GameData{Version: 0, Credits: -10}
	Migrate(data)
	assert.Zero(t, data.Credits)

	data.Credits = 40
	Migrate(data)
	assert.Equal(t, 40, data.Credits)
}

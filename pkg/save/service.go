package save

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// envelope is the on-disk wire format. The payload is a pre-serialized JSON
// string so its digest is stable regardless of how the envelope itself is
// encoded.
type envelope struct {
	Version          int    `json:"version"`
	PayloadJSON      string `json:"payloadJson"`
	PayloadSha256Hex string `json:"payloadSha256Hex"`
}

// LoadSource reports which file a snapshot was recovered from.
type LoadSource int

const (
	LoadSourceNone LoadSource = iota
	LoadSourcePrimary
	LoadSourceBackup
)

func (s LoadSource) String() string {
	switch s {
	case LoadSourcePrimary:
		return "primary"
	case LoadSourceBackup:
		return "backup"
	default:
		return "none"
	}
}

const (
	primaryName = "savegame.json"
	backupName  = "savegame.json.bak"
	tempName    = "savegame.json.tmp"
)

// Service reads and writes the snapshot under a single data directory.
type Service struct {
	dir string
	log *zap.Logger

	lastLoadSource  LoadSource
	lastLoadVersion int
}

// NewService creates a Service rooted at dir. The directory is created on
// first write, not here.
func NewService(dir string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{dir: dir, log: log}
}

// PrimaryPath returns the path of the primary save file.
func (s *Service) PrimaryPath() string { return filepath.Join(s.dir, primaryName) }

// BackupPath returns the path of the backup save file.
func (s *Service) BackupPath() string { return filepath.Join(s.dir, backupName) }

// LastLoadSource reports where the most recent TryLoad found its data.
func (s *Service) LastLoadSource() LoadSource { return s.lastLoadSource }

// LastLoadVersion reports the envelope version of the most recent successful
// load, or zero if nothing loaded.
func (s *Service) LastLoadVersion() int { return s.lastLoadVersion }

// Save stamps the snapshot and writes it to disk. The write is staged in a
// temp file; the previous primary becomes the backup before the temp file is
// promoted, so at every instant at least one complete valid save exists.
func (s *Service) Save(data *GameData) error {
	data.Version = CurrentVersion
	data.LastSavedUtcIso = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding save payload: %w", err)
	}
	sum := sha256.Sum256(payload)
	env := envelope{
		Version:          CurrentVersion,
		PayloadJSON:      string(payload),
		PayloadSha256Hex: hex.EncodeToString(sum[:]),
	}
	raw, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save envelope: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}
	tmp := filepath.Join(s.dir, tempName)
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("writing temp save: %w", err)
	}

	primary := s.PrimaryPath()
	if _, err := os.Stat(primary); err == nil {
		if err := replaceFile(primary, s.BackupPath()); err != nil {
			return fmt.Errorf("rotating backup save: %w", err)
		}
	}
	if err := os.Rename(tmp, primary); err != nil {
		return fmt.Errorf("promoting save: %w", err)
	}

	s.log.Debug("save written",
		zap.String("path", primary),
		zap.Int("credits", data.Credits))
	return nil
}

// TryLoad reads the primary save, falling back to the backup when the primary
// is missing, unreadable, or fails digest verification. It returns false when
// neither file yields a valid snapshot; it never fails the caller.
func (s *Service) TryLoad() (*GameData, bool) {
	if data, ver, err := s.loadFrom(s.PrimaryPath()); err == nil {
		s.lastLoadSource = LoadSourcePrimary
		s.lastLoadVersion = ver
		return data, true
	} else if !os.IsNotExist(err) {
		s.log.Warn("primary save unreadable, trying backup", zap.Error(err))
	}
	if data, ver, err := s.loadFrom(s.BackupPath()); err == nil {
		s.lastLoadSource = LoadSourceBackup
		s.lastLoadVersion = ver
		s.log.Info("recovered save from backup")
		return data, true
	}
	s.lastLoadSource = LoadSourceNone
	s.lastLoadVersion = 0
	return nil, false
}

func (s *Service) loadFrom(path string) (*GameData, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, 0, fmt.Errorf("decoding save envelope %s: %w", path, err)
	}
	sum := sha256.Sum256([]byte(env.PayloadJSON))
	if hex.EncodeToString(sum[:]) != env.PayloadSha256Hex {
		return nil, 0, fmt.Errorf("save digest mismatch in %s", path)
	}
	var data GameData
	if err := json.Unmarshal([]byte(env.PayloadJSON), &data); err != nil {
		return nil, 0, fmt.Errorf("decoding save payload %s: %w", path, err)
	}
	return &data, env.Version, nil
}

// DeleteAll removes primary and backup saves. Missing files are not an error.
func (s *Service) DeleteAll() error {
	for _, path := range []string{s.PrimaryPath(), s.BackupPath()} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("deleting %s: %w", path, err)
		}
	}
	return nil
}

// replaceFile moves src over dst, preferring an atomic rename and falling
// back to copy-and-delete when rename is not possible.
func replaceFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	raw, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, raw, 0o644); err != nil {
		return err
	}
	return os.Remove(src)
}

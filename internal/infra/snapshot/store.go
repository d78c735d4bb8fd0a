// Package snapshot persists the last successfully synced remote state to a
// local JSON file so reads can be served while offline.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/studentlife/campus/internal/domain"
)

// FileName is the snapshot file under the campus data directory.
const FileName = "snapshot.json"

// Ensure Store implements domain.Snapshotter.
var _ domain.Snapshotter = (*Store)(nil)

// fileData is the JSON file structure.
type fileData struct {
	Tasks        section[domain.Task]        `json:"tasks"`
	Transactions section[domain.Transaction] `json:"transactions"`
	Classes      section[domain.Class]       `json:"classes"`
}

// section holds one kind of synced data together with its provenance.
type section[T any] struct {
	Owner    string    `json:"owner"`
	SyncedAt time.Time `json:"syncedAt"`
	Items    []T       `json:"items"`
}

// Store implements domain.Snapshotter using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a Store writing to dataDir/snapshot.json.
// The file does not need to exist; it will be created on first write.
func New(dataDir string) *Store {
	path := filepath.Join(dataDir, FileName)
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// SaveTasks records the task list synced for owner at syncedAt.
func (s *Store) SaveTasks(owner string, syncedAt time.Time, tasks []domain.Task) error {
	return s.withLockWrite(func(data *fileData) error {
		data.Tasks = section[domain.Task]{Owner: owner, SyncedAt: syncedAt, Items: tasks}
		return nil
	})
}

// LoadTasks returns the last synced task list for owner.
// Returns ErrNoSnapshot when nothing was saved for this owner.
func (s *Store) LoadTasks(owner string) ([]domain.Task, time.Time, error) {
	var sec section[domain.Task]
	err := s.withLock(func(data *fileData) error {
		sec = data.Tasks
		return nil
	})
	if err != nil {
		return nil, time.Time{}, err
	}
	if sec.Owner != owner || sec.SyncedAt.IsZero() {
		return nil, time.Time{}, domain.ErrNoSnapshot
	}
	return sec.Items, sec.SyncedAt, nil
}

// SaveTransactions records the transaction list synced for owner at syncedAt.
func (s *Store) SaveTransactions(owner string, syncedAt time.Time, txs []domain.Transaction) error {
	return s.withLockWrite(func(data *fileData) error {
		data.Transactions = section[domain.Transaction]{Owner: owner, SyncedAt: syncedAt, Items: txs}
		return nil
	})
}

// LoadTransactions returns the last synced transaction list for owner.
func (s *Store) LoadTransactions(owner string) ([]domain.Transaction, time.Time, error) {
	var sec section[domain.Transaction]
	err := s.withLock(func(data *fileData) error {
		sec = data.Transactions
		return nil
	})
	if err != nil {
		return nil, time.Time{}, err
	}
	if sec.Owner != owner || sec.SyncedAt.IsZero() {
		return nil, time.Time{}, domain.ErrNoSnapshot
	}
	return sec.Items, sec.SyncedAt, nil
}

// SaveClasses records the class list synced for owner at syncedAt.
func (s *Store) SaveClasses(owner string, syncedAt time.Time, classes []domain.Class) error {
	return s.withLockWrite(func(data *fileData) error {
		data.Classes = section[domain.Class]{Owner: owner, SyncedAt: syncedAt, Items: classes}
		return nil
	})
}

// LoadClasses returns the last synced class list for owner.
func (s *Store) LoadClasses(owner string) ([]domain.Class, time.Time, error) {
	var sec section[domain.Class]
	err := s.withLock(func(data *fileData) error {
		sec = data.Classes
		return nil
	})
	if err != nil {
		return nil, time.Time{}, err
	}
	if sec.Owner != owner || sec.SyncedAt.IsZero() {
		return nil, time.Time{}, domain.ErrNoSnapshot
	}
	return sec.Items, sec.SyncedAt, nil
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*fileData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*fileData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*fileData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileData{}, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var data fileData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse snapshot file: %w", err)
	}

	return &data, nil
}

func (s *Store) write(data *fileData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

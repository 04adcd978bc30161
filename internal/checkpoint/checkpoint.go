// Package checkpoint persists a search's visited-state set to an
// embedded Badger database so a long search over the same deal can
// resume after an interruption, per spec §5's "implementations may
// cap iterations or queue size as a policy knob" and the resource
// model's note that unbounded memory growth is possible.
package checkpoint

import (
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var visitedMarker = []byte{1}

// Store wraps a Badger database holding one key per visited state
// (the canonical game.State.Key), plus a YAML sidecar recording which
// root the checkpoint belongs to.
type Store struct {
	db   *badger.DB
	path string
}

// Open opens (creating if necessary) a checkpoint database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "checkpoint: open %s", path)
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "checkpoint: close")
}

// Meta records which root state a checkpoint was built for.
type Meta struct {
	RootKey string    `yaml:"root_key"`
	SavedAt time.Time `yaml:"saved_at"`
}

func (s *Store) metaPath() string { return s.path + ".meta.yaml" }

// LoadMeta returns the sidecar metadata, or nil if none exists yet.
func (s *Store) LoadMeta() (*Meta, error) {
	data, err := os.ReadFile(s.metaPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "checkpoint: read meta")
	}
	var m Meta
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "checkpoint: parse meta")
	}
	return &m, nil
}

// SaveMeta records which root a fresh checkpoint belongs to.
func (s *Store) SaveMeta(rootKey string) error {
	m := Meta{RootKey: rootKey, SavedAt: time.Now()}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return errors.Wrap(err, "checkpoint: encode meta")
	}
	return errors.Wrap(os.WriteFile(s.metaPath(), data, 0o644), "checkpoint: write meta")
}

// MarkVisited records that key has been inserted into the visited set.
func (s *Store) MarkVisited(key string) error {
	return errors.Wrap(s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), visitedMarker)
	}), "checkpoint: mark visited")
}

// LoadVisited returns every key previously recorded by MarkVisited.
func (s *Store) LoadVisited() (map[string]struct{}, error) {
	visited := make(map[string]struct{})
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().KeyCopy(nil))
			visited[key] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "checkpoint: load visited")
	}
	return visited, nil
}

// Reset drops every key, used when a checkpoint belongs to a different
// deal than the one about to be solved.
func (s *Store) Reset() error {
	return errors.Wrap(s.db.DropAll(), "checkpoint: reset")
}

// Package sessionstore persists the current session between process runs.
package sessionstore

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/cardlect/cardlect/core/identity"
)

type fileStore struct {
	path string
}

var _ identity.Store = (*fileStore)(nil)

// NewFileStore persists sessions as a JSON document at path. Writes go
// through a temp file and rename so a reader never observes a torn write.
func NewFileStore(path string) *fileStore {
	return &fileStore{path: path}
}

func (s *fileStore) Save(sess identity.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "marshaling session")
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	tmp, err := ioutil.TempFile(dir, ".session-*")
	if err != nil {
		return errors.Wrap(err, "creating temp session file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing session")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing session file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "committing session file")
}

func (s *fileStore) Load() (identity.Session, bool, error) {
	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return identity.Session{}, false, nil
		}
		return identity.Session{}, false, errors.Wrap(err, "reading session file")
	}
	var sess identity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// a corrupt file counts as no session, never as a partial one
		return identity.Session{}, false, nil
	}
	return sess, true, nil
}

func (s *fileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}

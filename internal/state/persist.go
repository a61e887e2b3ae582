package state

import (
	stdErrors "errors"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/buildstate/internal/errors"
)

const stateFileMode os.FileMode = 0o644

// Save writes s to path, replacing any previous snapshot in full. The document
// is written to a temporary file in the same directory and renamed into place,
// so a failed save leaves the prior file untouched.
func (s *GlobalState) Save(path string) error {
	data, err := encodeDocument(s)
	if err != nil {
		return errors.InternalError("failed to encode global state", err).WithContext("path", path)
	}
	if err := writeFileAtomic(path, data, stateFileMode); err != nil {
		return errors.FileSystemError("write", path, err)
	}
	return nil
}

// Document returns the persisted form of s without writing it anywhere.
func (s *GlobalState) Document() ([]byte, error) {
	data, err := encodeDocument(s)
	if err != nil {
		return nil, errors.InternalError("failed to encode global state", err)
	}
	return data, nil
}

// LoadGlobalState reads the snapshot at path. Absent fields default to empty
// sequences and an absent grade. A missing or unreadable file is a filesystem
// error; content that is not a GlobalState document is a decode error.
func LoadGlobalState(path string) (*GlobalState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileSystemError("read", path, err)
	}
	s, err := decodeDocument(data)
	if err != nil {
		var de *decodeError
		if stdErrors.As(err, &de) {
			return nil, errors.DecodeError(path, de.reason, de.cause)
		}
		return nil, errors.DecodeError(path, "unreadable document", err)
	}
	return s, nil
}

// writeFileAtomic writes data to a temp file next to path, syncs it and renames
// it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	syncDir(dir)
	return nil
}

// syncDir makes the rename durable where the platform supports it.
func syncDir(dir string) {
	f, err := os.Open(dir)
	if err != nil {
		return
	}
	defer f.Close()
	_ = f.Sync()
}

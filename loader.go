package savings

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// LoadFile opens and decodes the ledger file at path.
//
// A missing file is not an error: the ledger is left empty and an empty file
// is created so that later saves have a destination.
func (l *Ledger) LoadFile(path string) error {
	err := l.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger %q does not exist, creating an empty ledger instead", path)
		if err := createEmpty(path); err != nil {
			log.Printf("warning, could not create %q: %v", path, err)
		}
		return nil
	}
	return err
}

// ReadFile is like LoadFile but never writes: a missing file leaves the
// ledger empty and returns an error matching fs.ErrNotExist.
func (l *Ledger) ReadFile(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.store = Store{}
		return err
	}
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	if err := l.Load(f); err != nil {
		return fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return nil
}

// SaveFile rewrites the whole ledger file at path.
//
// Failures wrap ErrPersistenceWrite and are reported to the Notifier; the
// in-memory ledger is unchanged either way. Success is reported as an Info notice.
func (l *Ledger) SaveFile(path string) error {
	if err := l.saveFile(path); err != nil {
		err = fmt.Errorf("%w %q: %w", ErrPersistenceWrite, path, err)
		l.notify.Notify(Error, err.Error())
		return err
	}
	l.notify.Notify(Info, "ledger saved")
	return nil
}

func (l *Ledger) saveFile(path string) error {
	// Ensure the directory for the ledger file exists.
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := l.Save(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func createEmpty(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// ABOUTME: Badger backend for the practice store.
// ABOUTME: Keeps the three state documents as keys in an embedded Badger KV directory.
package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// BadgerDB wraps an embedded Badger database.
type BadgerDB struct {
	db  *badger.DB
	dir string
}

// OpenBadger opens or creates a Badger-backed store in dir.
// A nil logger silences Badger's own logging.
func OpenBadger(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if log != nil {
		opts = opts.WithLogger(&badgerLogger{log.Named("badger").Sugar()})
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return newStore(&BadgerDB{db: db, dir: dir}).WithLogger(log), nil
}

func (b *BadgerDB) kind() string { return "badger" }

func (b *BadgerDB) read(key string) ([]byte, bool, error) {
	var value []byte
	found := true
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return value, found, nil
}

func (b *BadgerDB) write(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (b *BadgerDB) wipe() error {
	return b.db.DropAll()
}

func (b *BadgerDB) close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// badgerLogger adapts zap to badger.Logger.
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

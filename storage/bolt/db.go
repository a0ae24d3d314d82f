package boltdb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/trezcool/darasa/core"
)

const (
	bucketName = "state"

	// collection keys
	studentsKey   = "students"
	attendanceKey = "attendance"
)

// DB is the durable key-value store backing the repositories. Each
// collection lives under one key as a JSON array; every write commits
// before returning. There are no cross-key transactions.
type DB struct {
	db  *bolt.DB
	log core.Logger
}

func Open(path string, log core.Logger) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data dir for %s", path)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating state bucket")
	}
	return &DB{db: db, log: log}, nil
}

func (s *DB) Close() error {
	return s.db.Close()
}

// Read unmarshals the payload stored at key into dest (a pointer). A
// missing key or a payload that no longer unmarshals leaves dest
// untouched, so the caller's default survives either way; corruption is
// only reported through the logger.
func (s *DB) Read(key string, dest interface{}) error {
	var payload []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			payload = append(payload, v...) // value is only valid inside the tx
		}
		return nil
	}); err != nil {
		return errors.Wrapf(err, "reading %q", key)
	}
	if payload == nil {
		return nil
	}
	// decode into a throwaway first; a corrupt payload must not clobber the default
	tmp := reflect.New(reflect.TypeOf(dest).Elem())
	if err := json.Unmarshal(payload, tmp.Interface()); err != nil {
		s.log.Errorf("store: corrupt payload at %q, using default: %v", key, err)
		return nil
	}
	reflect.ValueOf(dest).Elem().Set(tmp.Elem())
	return nil
}

// Write serializes v and overwrites the key's prior content. Durable on
// return.
func (s *DB) Write(key string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", key)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), payload)
	})
	return errors.Wrapf(err, "writing %q", key)
}

package store

import (
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var recordsBucket = []byte("records")

// BoltStore persists records in a single-file bbolt database. One bucket,
// one key per record; a single write is atomic, which is all the shop
// session relies on (last writer wins across sessions).
type BoltStore struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recordsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init records bucket")
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) ReadRecord(name string) ([]byte, bool, error) {
	var data []byte
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(recordsBucket).Get([]byte(name))
		if v == nil {
			return nil
		}
		found = true
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "read record %s", name)
	}
	return data, found, nil
}

func (s *BoltStore) WriteRecord(name string, data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(recordsBucket).Put([]byte(name), data)
	})
	return errors.Wrapf(err, "write record %s", name)
}

func (s *BoltStore) DeleteRecord(name string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(recordsBucket).Delete([]byte(name))
	})
	return errors.Wrapf(err, "delete record %s", name)
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

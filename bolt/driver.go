package bolt

import (
	"encoding/binary"
	"errors"
	"strconv"
	"time"

	"github.com/boltdb/bolt"
)

type Driver struct {
	store *bolt.DB
}

// Open opens the connection to the bolt database defined by path and makes
// sure all the buckets exist.
func (d *Driver) Open(path string) error {
	if d.store != nil {
		return errors.New("store already open")
	}

	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	err = store.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			resourceBucket,
			bookBucket,
			reservationBucket,
		}
		for _, bucket := range buckets {
			_, err := tx.CreateBucketIfNotExists(bucket)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	d.store = store
	return nil
}

// Close closes the underlying database.
func (d *Driver) Close() error {
	if d.store != nil {
		err := d.store.Close()
		d.store = nil
		return err
	}
	return nil
}

// ------------------------------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------------------------------

// seqToKey returns an 8-byte big endian representation of v, so that the
// cursor order is the insertion order.
func seqToKey(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// idToKey maps a public id back to its bucket key. Ids that cannot have been
// assigned by the store yield ok == false.
func idToKey(id string) ([]byte, bool) {
	seq, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, false
	}
	return seqToKey(seq), true
}

package bolt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/boltdb/bolt"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
)

var resourceBucket = []byte("resources")

// ResourceRepository stores and retrieves catalog resources from a bolt
// database.
type ResourceRepository struct {
	Driver *Driver
}

// Get retrieves the resources defined by ids. Unknown ids are simply
// skipped, they do not make Get fail.
func (r *ResourceRepository) Get(ids ...string) ([]scholarnexus.Resource, error) {
	resources := make([]scholarnexus.Resource, 0, len(ids))
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(resourceBucket)

		for _, id := range ids {
			key, ok := idToKey(id)
			if !ok {
				continue
			}

			data := bucket.Get(key)
			if data == nil {
				continue
			}

			var resource scholarnexus.Resource
			if err := json.Unmarshal(data, &resource); err != nil {
				return err
			}
			resources = append(resources, resource)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resources, nil
}

// List returns all the resources in insertion order.
func (r *ResourceRepository) List() ([]scholarnexus.Resource, error) {
	resources := make([]scholarnexus.Resource, 0)

	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(resourceBucket)

		c := bucket.Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var resource scholarnexus.Resource
			if err := json.Unmarshal(data, &resource); err != nil {
				return err
			}
			resources = append(resources, resource)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resources, nil
}

// Insert appends a resource to the catalog. The id is assigned from the
// bucket sequence, so ids are unique, monotonic and never reused.
func (r *ResourceRepository) Insert(resource *scholarnexus.Resource) error {
	if resource.ID != "" {
		return errors.New("id already set")
	}

	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(resourceBucket)

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("error incrementing id: %v", err)
		}
		resource.ID = strconv.FormatUint(seq, 10)

		data, err := json.Marshal(resource)
		if err != nil {
			return err
		}

		return bucket.Put(seqToKey(seq), data)
	})
}

package bolt

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/boltdb/bolt"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
)

var bookBucket = []byte("books")

// BookRepository stores and retrieves the physical book catalog from a bolt
// database.
type BookRepository struct {
	Driver *Driver
}

// Get retrieves a book by id. The zero Book is returned when the id is
// unknown.
func (r *BookRepository) Get(id string) (scholarnexus.Book, error) {
	var book scholarnexus.Book
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bookBucket)

		key, ok := idToKey(id)
		if !ok {
			return nil
		}

		data := bucket.Get(key)
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &book)
	})
	if err != nil {
		return scholarnexus.Book{}, err
	}

	return book, nil
}

// List returns all the books in catalog order.
func (r *BookRepository) List() ([]scholarnexus.Book, error) {
	books := make([]scholarnexus.Book, 0)

	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bookBucket)

		c := bucket.Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var book scholarnexus.Book
			if err := json.Unmarshal(data, &book); err != nil {
				return err
			}
			books = append(books, book)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return books, nil
}

// Upsert inserts or updates a book, depending on book.ID. New books get
// their id from the bucket sequence.
func (r *BookRepository) Upsert(book *scholarnexus.Book) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bookBucket)

		var key []byte
		if book.ID == "" {
			seq, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			book.ID = strconv.FormatUint(seq, 10)
			key = seqToKey(seq)
		} else {
			var ok bool
			key, ok = idToKey(book.ID)
			if !ok {
				return fmt.Errorf("invalid book id %q", book.ID)
			}
		}

		data, err := json.Marshal(book)
		if err != nil {
			return err
		}

		return bucket.Put(key, data)
	})
}

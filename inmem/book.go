package inmem

import (
	"strconv"
	"sync"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
)

// BookRepository is an in-memory implementation of
// scholarnexus.BookRepository.
type BookRepository struct {
	mu     sync.RWMutex
	books  []scholarnexus.Book
	lastID uint64
}

func NewBookRepository() *BookRepository {
	return &BookRepository{
		books: make([]scholarnexus.Book, 0),
	}
}

func (r *BookRepository) Get(id string) (scholarnexus.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, book := range r.books {
		if book.ID == id {
			return cloneBook(book), nil
		}
	}
	return scholarnexus.Book{}, nil
}

func (r *BookRepository) List() ([]scholarnexus.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]scholarnexus.Book, len(r.books))
	for i, book := range r.books {
		books[i] = cloneBook(book)
	}
	return books, nil
}

func (r *BookRepository) Upsert(book *scholarnexus.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if book.ID == "" {
		r.lastID++
		book.ID = strconv.FormatUint(r.lastID, 10)
		r.books = append(r.books, cloneBook(*book))
		return nil
	}

	for i, stored := range r.books {
		if stored.ID == book.ID {
			r.books[i] = cloneBook(*book)
			return nil
		}
	}
	r.books = append(r.books, cloneBook(*book))
	return nil
}

func cloneBook(book scholarnexus.Book) scholarnexus.Book {
	clone := book
	clone.Categories = append([]string(nil), book.Categories...)
	return clone
}

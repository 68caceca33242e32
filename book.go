package scholarnexus

import (
	"time"
)

type Book struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	CoverImage  string   `json:"coverImage"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`

	// Available is false exactly when an active reservation holds the book.
	Available bool `json:"available"`
}

// ReservationStatus is the lifecycle state of a book reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Active reports whether the reservation still holds its book.
func (s ReservationStatus) Active() bool {
	return s == ReservationPending || s == ReservationConfirmed
}

type Reservation struct {
	ID       string    `json:"id"`
	BookID   string    `json:"bookId"`
	UserID   string    `json:"userId"`
	Date     time.Time `json:"date"`
	TimeSlot string    `json:"timeSlot"`

	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

type BookRepository interface {
	// Get returns the zero Book when no book has the given id.
	Get(string) (Book, error)
	List() ([]Book, error)
	Upsert(*Book) error
}

type ReservationRepository interface {
	// Get returns the zero Reservation when no reservation has the given id.
	Get(string) (Reservation, error)
	Insert(*Reservation) error
	Update(*Reservation) error
	ListByUser(string) ([]Reservation, error)
}

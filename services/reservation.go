package services

import (
	"fmt"
	"sync"
	"time"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
	"github.com/jayadityagandham/Scholar-Nexus/errors"
	"github.com/jayadityagandham/Scholar-Nexus/notify"
)

func errBookNotFound(id string) error {
	return errors.New(fmt.Sprintf("book %s not found", id), errors.NotFound())
}

func errBookUnavailable(id string) error {
	return errors.New(fmt.Sprintf("book %s is not available for reservation", id), errors.Conflict())
}

func errReservationNotFound(id string) error {
	return errors.New(fmt.Sprintf("reservation %s not found", id), errors.NotFound())
}

// ReservationService exposes the availability view of the book shelf and
// runs the reserve/cancel lifecycle. Availability acts as a single-holder
// lock per book: at most one active reservation references a book, and the
// book is unavailable exactly while that reservation lives.
type ReservationService struct {
	books        scholarnexus.BookRepository
	reservations scholarnexus.ReservationRepository

	notifier notify.Notifier

	// mu serializes the check-then-set on availability so two concurrent
	// reservations cannot both take the same book.
	mu sync.Mutex
}

func NewReservationService(
	books scholarnexus.BookRepository,
	reservations scholarnexus.ReservationRepository,
	notifier notify.Notifier,
) *ReservationService {
	return &ReservationService{
		books:        books,
		reservations: reservations,

		notifier: notifier,
	}
}

// AvailableBooks returns the books currently free to reserve, in catalog
// order.
func (s *ReservationService) AvailableBooks() ([]scholarnexus.Book, error) {
	books, err := s.books.List()
	if err != nil {
		return nil, err
	}

	available := make([]scholarnexus.Book, 0, len(books))
	for _, book := range books {
		if book.Available {
			available = append(available, book)
		}
	}
	return available, nil
}

func (s *ReservationService) GetBook(id string) (scholarnexus.Book, error) {
	book, err := s.books.Get(id)
	if err != nil {
		return scholarnexus.Book{}, err
	} else if book.ID == "" {
		return scholarnexus.Book{}, errBookNotFound(id)
	}

	return book, nil
}

// Reserve takes a book for a pickup date and time slot. The book must exist
// and be available. On success the reservation is confirmed, the book is
// marked unavailable and a confirmation is signalled once.
func (s *ReservationService) Reserve(bookID, userID string, date time.Time, timeSlot string) (scholarnexus.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.books.Get(bookID)
	if err != nil {
		return scholarnexus.Reservation{}, err
	} else if book.ID == "" {
		return scholarnexus.Reservation{}, errBookNotFound(bookID)
	}

	if !book.Available {
		return scholarnexus.Reservation{}, errBookUnavailable(bookID)
	}

	// Take the book first: if recording the reservation fails the flag is
	// restored, so a failure leaves no observable change.
	book.Available = false
	if err := s.books.Upsert(&book); err != nil {
		return scholarnexus.Reservation{}, err
	}

	reservation := scholarnexus.Reservation{
		BookID:    bookID,
		UserID:    userID,
		Date:      date,
		TimeSlot:  timeSlot,
		Status:    scholarnexus.ReservationConfirmed,
		CreatedAt: time.Now(),
	}
	if err := s.reservations.Insert(&reservation); err != nil {
		book.Available = true
		if restoreErr := s.books.Upsert(&book); restoreErr != nil {
			return scholarnexus.Reservation{}, errors.New("could not restore availability", errors.WithCause(restoreErr))
		}
		return scholarnexus.Reservation{}, err
	}

	s.notifier.Notify(notify.Notification{
		Event:   "reservation.confirmed",
		Title:   "Reservation Confirmed",
		Message: fmt.Sprintf("Your reservation for %q has been confirmed.", book.Title),
		Payload: reservation,
	})

	return reservation, nil
}

// Cancel releases a reservation. Cancelling a reservation that no longer
// holds its book (already cancelled or completed) succeeds without any
// effect, so callers that double-cancel do not flip availability twice.
func (s *ReservationService) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, err := s.reservations.Get(id)
	if err != nil {
		return err
	} else if reservation.ID == "" {
		return errReservationNotFound(id)
	}

	if !reservation.Status.Active() {
		return nil
	}

	// The book may have been removed from the shelf since the reservation
	// was taken.
	book, err := s.books.Get(reservation.BookID)
	if err != nil {
		return err
	}

	// Free the book first: if recording the cancellation fails the flag is
	// restored, so a failure leaves no observable change and the
	// cancellation can be retried.
	if book.ID != "" {
		book.Available = true
		if err := s.books.Upsert(&book); err != nil {
			return err
		}
	}

	reservation.Status = scholarnexus.ReservationCancelled
	if err := s.reservations.Update(&reservation); err != nil {
		if book.ID != "" {
			book.Available = false
			if restoreErr := s.books.Upsert(&book); restoreErr != nil {
				return errors.New("could not restore availability", errors.WithCause(restoreErr))
			}
		}
		return err
	}

	s.notifier.Notify(notify.Notification{
		Event:   "reservation.cancelled",
		Title:   "Reservation Cancelled",
		Message: "Your reservation has been cancelled successfully.",
		Payload: reservation,
	})

	return nil
}

// UserReservations returns every reservation of a user, any status, in
// creation order.
func (s *ReservationService) UserReservations(userID string) ([]scholarnexus.Reservation, error) {
	return s.reservations.ListByUser(userID)
}

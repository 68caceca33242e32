package inmem

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
)

// ReservationRepository is an in-memory implementation of
// scholarnexus.ReservationRepository. Reservations are kept in creation
// order, ids are uuids and never reused.
type ReservationRepository struct {
	mu           sync.RWMutex
	reservations []scholarnexus.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{
		reservations: make([]scholarnexus.Reservation, 0),
	}
}

func (r *ReservationRepository) Get(id string) (scholarnexus.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, reservation := range r.reservations {
		if reservation.ID == id {
			return reservation, nil
		}
	}
	return scholarnexus.Reservation{}, nil
}

func (r *ReservationRepository) Insert(reservation *scholarnexus.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reservation.ID == "" {
		reservation.ID = uuid.NewString()
	}
	r.reservations = append(r.reservations, *reservation)
	return nil
}

func (r *ReservationRepository) Update(reservation *scholarnexus.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.reservations {
		if stored.ID == reservation.ID {
			r.reservations[i] = *reservation
			return nil
		}
	}
	return fmt.Errorf("reservation %s not found", reservation.ID)
}

func (r *ReservationRepository) ListByUser(userID string) ([]scholarnexus.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reservations := make([]scholarnexus.Reservation, 0)
	for _, reservation := range r.reservations {
		if reservation.UserID == userID {
			reservations = append(reservations, reservation)
		}
	}
	return reservations, nil
}

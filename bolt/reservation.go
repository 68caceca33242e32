package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
)

var reservationBucket = []byte("reservations")

// ReservationRepository stores the reservation log in a bolt database.
// Reservations are keyed by the bucket sequence so that cursors walk them in
// creation order, while the public id is a generated uuid that can never be
// reused, even after cancellation.
type ReservationRepository struct {
	Driver *Driver
}

// Get retrieves a reservation by id. The zero Reservation is returned when
// the id is unknown.
func (r *ReservationRepository) Get(id string) (scholarnexus.Reservation, error) {
	var reservation scholarnexus.Reservation
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(reservationBucket)

		c := bucket.Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var candidate scholarnexus.Reservation
			if err := json.Unmarshal(data, &candidate); err != nil {
				return err
			}
			if candidate.ID == id {
				reservation = candidate
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return scholarnexus.Reservation{}, err
	}

	return reservation, nil
}

// Insert appends a reservation to the log, assigning its id when empty.
func (r *ReservationRepository) Insert(reservation *scholarnexus.Reservation) error {
	if reservation.ID == "" {
		reservation.ID = uuid.NewString()
	}

	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(reservationBucket)

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("error incrementing key: %v", err)
		}

		data, err := json.Marshal(reservation)
		if err != nil {
			return err
		}

		return bucket.Put(seqToKey(seq), data)
	})
}

// Update rewrites an existing reservation in place.
func (r *ReservationRepository) Update(reservation *scholarnexus.Reservation) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(reservationBucket)

		c := bucket.Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var candidate scholarnexus.Reservation
			if err := json.Unmarshal(data, &candidate); err != nil {
				return err
			}
			if candidate.ID != reservation.ID {
				continue
			}

			data, err := json.Marshal(reservation)
			if err != nil {
				return err
			}
			return bucket.Put(key, data)
		}

		return fmt.Errorf("reservation %s not found", reservation.ID)
	})
}

// ListByUser returns all the reservations of a user, any status, in
// creation order.
func (r *ReservationRepository) ListByUser(userID string) ([]scholarnexus.Reservation, error) {
	reservations := make([]scholarnexus.Reservation, 0)

	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(reservationBucket)

		c := bucket.Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var reservation scholarnexus.Reservation
			if err := json.Unmarshal(data, &reservation); err != nil {
				return err
			}
			if reservation.UserID == userID {
				reservations = append(reservations, reservation)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

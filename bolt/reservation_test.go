package bolt

import (
	"reflect"
	"testing"
	"time"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
)

func TestBookRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	repo := &BookRepository{Driver: driver}

	book := scholarnexus.Book{
		Title:     "Introduction to Algorithms",
		Author:    "Thomas H. Cormen",
		Available: true,
	}
	if err := repo.Upsert(&book); err != nil {
		t.Fatal("error inserting:", err)
	}
	if book.ID != "1" {
		t.Fatalf("incorrect id assigned: expected 1 got %s", book.ID)
	}

	retrieved, err := repo.Get(book.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if !reflect.DeepEqual(retrieved, book) {
		t.Fatalf("incorrect book retrieved: expected %+v got %+v", book, retrieved)
	}

	// Updating flips availability in place
	book.Available = false
	if err := repo.Upsert(&book); err != nil {
		t.Fatal("error updating:", err)
	}
	retrieved, err = repo.Get(book.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved.Available {
		t.Fatal("book should not be available anymore")
	}

	// Unknown ids yield the zero book
	retrieved, err = repo.Get("42")
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved.ID != "" {
		t.Fatalf("expected zero book, got %+v", retrieved)
	}
}

func TestReservationRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	repo := &ReservationRepository{Driver: driver}

	date := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	reservation := scholarnexus.Reservation{
		BookID:    "1",
		UserID:    "user-1",
		Date:      date,
		TimeSlot:  "10:00 - 11:00",
		Status:    scholarnexus.ReservationConfirmed,
		CreatedAt: date,
	}
	if err := repo.Insert(&reservation); err != nil {
		t.Fatal("error inserting:", err)
	}
	if reservation.ID == "" {
		t.Fatal("insert should assign an id")
	}

	retrieved, err := repo.Get(reservation.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if !reflect.DeepEqual(retrieved, reservation) {
		t.Fatalf("incorrect reservation retrieved: expected %+v got %+v", reservation, retrieved)
	}

	// Ids are unique across insertions
	other := scholarnexus.Reservation{BookID: "2", UserID: "user-2", Status: scholarnexus.ReservationConfirmed}
	if err := repo.Insert(&other); err != nil {
		t.Fatal("error inserting:", err)
	}
	if other.ID == reservation.ID {
		t.Fatal("ids should not collide")
	}

	// Update rewrites the status in place
	reservation.Status = scholarnexus.ReservationCancelled
	if err := repo.Update(&reservation); err != nil {
		t.Fatal("error updating:", err)
	}
	retrieved, err = repo.Get(reservation.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved.Status != scholarnexus.ReservationCancelled {
		t.Fatalf("incorrect status: expected cancelled got %s", retrieved.Status)
	}

	// Updating an unknown reservation fails
	unknown := scholarnexus.Reservation{ID: "nope"}
	if err := repo.Update(&unknown); err == nil {
		t.Fatal("expected error updating an unknown reservation")
	}
}

func TestReservationRepository_ListByUser(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	repo := &ReservationRepository{Driver: driver}

	slots := []string{"9:00 - 10:00", "10:00 - 11:00", "11:00 - 12:00"}
	for _, slot := range slots {
		reservation := scholarnexus.Reservation{BookID: "1", UserID: "user-1", TimeSlot: slot}
		if err := repo.Insert(&reservation); err != nil {
			t.Fatal("error inserting:", err)
		}
	}
	other := scholarnexus.Reservation{BookID: "2", UserID: "user-2"}
	if err := repo.Insert(&other); err != nil {
		t.Fatal("error inserting:", err)
	}

	reservations, err := repo.ListByUser("user-1")
	if err != nil {
		t.Fatal("error listing:", err)
	} else if len(reservations) != len(slots) {
		t.Fatalf("incorrect number of reservations: expected %d got %d", len(slots), len(reservations))
	}

	// Creation order is preserved
	for i, reservation := range reservations {
		if reservation.TimeSlot != slots[i] {
			t.Errorf("incorrect reservation at %d: expected %s got %s", i, slots[i], reservation.TimeSlot)
		}
	}
}

package endpoints

import (
	"context"
	"net/http"
	"time"

	"github.com/jayadityagandham/Scholar-Nexus/services"
)

type ReservationEndpoint struct {
	service *services.ReservationService
}

func NewReservationEndpoint(service *services.ReservationService) *ReservationEndpoint {
	return &ReservationEndpoint{
		service: service,
	}
}

func (ep *ReservationEndpoint) Books(ctx context.Context, r interface{}) (interface{}, error) {
	books, err := ep.service.AvailableBooks()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": books,
	}, nil
}

func (ep *ReservationEndpoint) GetBook(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	book, err := ep.service.GetBook(id)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": book,
	}, nil
}

type ReserveBookRequest struct {
	BookID   string    `json:"bookId"`
	UserID   string    `json:"userId"`
	Date     time.Time `json:"date"`
	TimeSlot string    `json:"timeSlot"`
}

func (ep *ReservationEndpoint) Reserve(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(ReserveBookRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	reservation, err := ep.service.Reserve(req.BookID, req.UserID, req.Date, req.TimeSlot)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": reservation,
	}, nil
}

func (ep *ReservationEndpoint) Cancel(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Cancel(id); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

func (ep *ReservationEndpoint) UserReservations(ctx context.Context, r interface{}) (interface{}, error) {
	userID, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	reservations, err := ep.service.UserReservations(userID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": reservations,
	}, nil
}

// statusCoder is useful to return http responses with a status that is not 200 but is not
// an error either.
type statusCoder struct {
	code int
}

func (s statusCoder) StatusCode() int { return s.code }

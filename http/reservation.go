package http

import (
	"context"
	"encoding/json"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/jayadityagandham/Scholar-Nexus/endpoints"
	"github.com/jayadityagandham/Scholar-Nexus/errors"
	"github.com/jayadityagandham/Scholar-Nexus/services"
)

func RegisterReservationEndpoints(srv Registrar, service *services.ReservationService) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	ep := endpoints.NewReservationEndpoint(service)

	booksHandler := kithttp.NewServer(
		ep.Books,
		decodeNoopRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	getBookHandler := kithttp.NewServer(
		ep.GetBook,
		decodeIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	reserveBookHandler := kithttp.NewServer(
		ep.Reserve,
		decodeReserveBookRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	cancelReservationHandler := kithttp.NewServer(
		ep.Cancel,
		decodeIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	userReservationsHandler := kithttp.NewServer(
		ep.UserReservations,
		decodeIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/library/books", "GET", booksHandler)
	srv.RegisterHandler("/library/books/:id", "GET", getBookHandler)
	srv.RegisterHandler("/library/reservations", "POST", reserveBookHandler)
	srv.RegisterHandler("/library/reservations/:id", "DELETE", cancelReservationHandler)
	srv.RegisterHandler("/library/users/:id/reservations", "GET", userReservationsHandler)
}

func decodeNoopRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	return nil, nil
}

func decodeIDRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	return params["id"], nil
}

func decodeReserveBookRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.ReserveBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return req, nil
}

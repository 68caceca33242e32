package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	kithttp "github.com/go-kit/kit/transport/http"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
	"github.com/jayadityagandham/Scholar-Nexus/endpoints"
	"github.com/jayadityagandham/Scholar-Nexus/errors"
	"github.com/jayadityagandham/Scholar-Nexus/services"
)

// maxYear bounds the mandatory year filter when the caller does not give
// one, so that an absent bound behaves as "no restriction".
const maxYear = 9999

func RegisterResourceEndpoints(srv Registrar, service *services.ResourceService) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	ep := endpoints.NewResourceEndpoint(service)

	searchResourceHandler := kithttp.NewServer(
		ep.Search,
		decodeSearchResourcesRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	createResourceHandler := kithttp.NewServer(
		ep.Create,
		decodeCreateResourceRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	getResourceHandler := kithttp.NewServer(
		ep.Get,
		decodeGetResourceRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	featuredResourcesHandler := kithttp.NewServer(
		ep.Featured,
		decodeFeaturedResourcesRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	suggestResourcesHandler := kithttp.NewServer(
		ep.Suggest,
		decodeSuggestResourcesRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/catalog/resources", "GET", searchResourceHandler)
	srv.RegisterHandler("/catalog/resources", "POST", createResourceHandler)
	srv.RegisterHandler("/catalog/resources/:id", "GET", getResourceHandler)
	srv.RegisterHandler("/catalog/featured", "GET", featuredResourcesHandler)
	srv.RegisterHandler("/catalog/suggestions", "GET", suggestResourcesHandler)
}

func decodeSearchResourcesRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	filter := scholarnexus.ResourceFilter{
		Q:         r.URL.Query().Get("q"),
		SortBy:    scholarnexus.SortOrder(r.URL.Query().Get("sort")),
		YearRange: scholarnexus.YearRange{Min: 0, Max: maxYear},
	}

	for _, t := range r.URL.Query()["type"] {
		filter.Types = append(filter.Types, scholarnexus.ResourceType(t))
	}
	for _, l := range r.URL.Query()["access"] {
		filter.AccessLevels = append(filter.AccessLevels, scholarnexus.AccessLevel(l))
	}
	filter.Categories = r.URL.Query()["category"]

	if from := r.URL.Query().Get("yearFrom"); from != "" {
		var err error
		filter.YearRange.Min, err = strconv.Atoi(from)
		if err != nil {
			return nil, errors.New("invalid parameter: yearFrom", errors.BadRequest(), errors.WithCause(err))
		}
	}
	if to := r.URL.Query().Get("yearTo"); to != "" {
		var err error
		filter.YearRange.Max, err = strconv.Atoi(to)
		if err != nil {
			return nil, errors.New("invalid parameter: yearTo", errors.BadRequest(), errors.WithCause(err))
		}
	}

	return filter, nil
}

func decodeGetResourceRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	return params["id"], nil
}

func decodeCreateResourceRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var resource scholarnexus.Resource
	if err := json.NewDecoder(r.Body).Decode(&resource); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return resource, nil
}

func decodeFeaturedResourcesRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	req := endpoints.FeaturedResourcesRequest{Count: 3}

	if count := r.URL.Query().Get("count"); count != "" {
		var err error
		req.Count, err = strconv.Atoi(count)
		if err != nil {
			return nil, errors.New("invalid parameter: count", errors.BadRequest(), errors.WithCause(err))
		}
	}

	return req, nil
}

func decodeSuggestResourcesRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	req := endpoints.SuggestResourcesRequest{
		Q: r.URL.Query().Get("q"),
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		var err error
		req.Limit, err = strconv.Atoi(limit)
		if err != nil {
			return nil, errors.New("invalid parameter: limit", errors.BadRequest(), errors.WithCause(err))
		}
	}

	return req, nil
}

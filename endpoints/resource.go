package endpoints

import (
	"context"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
	"github.com/jayadityagandham/Scholar-Nexus/errors"
	"github.com/jayadityagandham/Scholar-Nexus/services"
)

// Variables and functions for specific errors
var (
	errInvalidRequest = errors.New("invalid request", errors.BadRequest())
)

type ResourceEndpoint struct {
	service *services.ResourceService
}

func NewResourceEndpoint(service *services.ResourceService) *ResourceEndpoint {
	return &ResourceEndpoint{
		service: service,
	}
}

func (ep *ResourceEndpoint) Search(ctx context.Context, r interface{}) (interface{}, error) {
	filter, ok := r.(scholarnexus.ResourceFilter)
	if !ok {
		return nil, errInvalidRequest
	}

	resources, err := ep.service.Search(filter)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": resources,
	}, nil
}

func (ep *ResourceEndpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	resource, err := ep.service.Get(id)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": resource,
	}, nil
}

func (ep *ResourceEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	resource, ok := r.(scholarnexus.Resource)
	if !ok {
		return nil, errInvalidRequest
	}

	resource, err := ep.service.Create(resource)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": resource,
	}, nil
}

type FeaturedResourcesRequest struct {
	Count int
}

func (ep *ResourceEndpoint) Featured(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(FeaturedResourcesRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	resources, err := ep.service.Featured(req.Count)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": resources,
	}, nil
}

type SuggestResourcesRequest struct {
	Q     string
	Limit int
}

func (ep *ResourceEndpoint) Suggest(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(SuggestResourcesRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	resources, err := ep.service.Suggest(req.Q, req.Limit)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": resources,
	}, nil
}

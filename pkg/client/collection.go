package client

import (
	"context"
	"net/http"
)

// Collection is CRUD over one REST resource. T is the entity, D the draft sent on create and update
type Collection[T, D any] struct {
	client   *Client
	resource string
}

func NewCollection[T, D any](c *Client, resource string) *Collection[T, D] {
	return &Collection[T, D]{
		client:   c,
		resource: resource,
	}
}

func (col *Collection[T, D]) List(ctx context.Context) ([]T, error) {
	raw, err := col.client.do(ctx, http.MethodGet, resourcePath(col.resource), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]T](raw)
}

func (col *Collection[T, D]) Get(ctx context.Context, id string) (*T, error) {
	raw, err := col.client.do(ctx, http.MethodGet, resourcePath(col.resource, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[T](raw)
}

func (col *Collection[T, D]) Create(ctx context.Context, draft D) (*T, error) {
	raw, err := col.client.do(ctx, http.MethodPost, resourcePath(col.resource), draft)
	if err != nil {
		return nil, err
	}
	return decodeEntity[T](raw)
}

func (col *Collection[T, D]) Update(ctx context.Context, id string, patch D) (*T, error) {
	raw, err := col.client.do(ctx, http.MethodPut, resourcePath(col.resource, id), patch)
	if err != nil {
		return nil, err
	}
	return decodeEntity[T](raw)
}

func (col *Collection[T, D]) Delete(ctx context.Context, id string) error {
	_, err := col.client.do(ctx, http.MethodDelete, resourcePath(col.resource, id), nil)
	return err
}

func decodeEntity[T any](raw []byte) (*T, error) {
	v, err := decodeData[T](raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Package roster provides the list/create/update/delete container shared by
// every admin roster page (players, teams, admins, faculties, departments,
// competitions).
package roster

import (
	"context"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/football-admin-service/internal/app/notice"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/filter"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
)

// Resource is the backend CRUD quartet for one entity type.
type Resource[T any] interface {
	List(ctx context.Context, filters ...string) envelope.Response[[]T]
	Create(ctx context.Context, item T) envelope.Response[T]
	Update(ctx context.Context, id string, item T) envelope.Response[T]
	Delete(ctx context.Context, id string) envelope.Response[struct{}]
}

// Entry is what every roster item exposes.
type Entry interface {
	filter.Searchable
	Key() string
}

// Container caches one roster. Successful mutations refetch the whole list; a
// "99" answer leaves the cached items exactly as they were.
type Container[T Entry] struct {
	name     string
	resource Resource[T]
	logger   *slog.Logger

	// fetchMu serializes list fetches.
	fetchMu sync.Mutex

	mu      sync.RWMutex
	items   []T
	loading bool
}

func New[T Entry](name string, resource Resource[T], logger *slog.Logger) *Container[T] {
	return &Container[T]{name: name, resource: resource, logger: logger}
}

// Load fetches the list. A call made while another fetch is running waits for
// it and then fetches again.
func (c *Container[T]) Load(ctx context.Context) notice.Notice {
	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	resp := c.resource.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if !resp.Success() {
		return notice.Error(resp.Message)
	}
	c.items = resp.Data
	return notice.FromEnvelope(resp, "Loaded "+c.name)
}

func (c *Container[T]) Create(ctx context.Context, item T) notice.Notice {
	resp := c.resource.Create(ctx, item)
	return c.afterMutation(ctx, "create", envelope.Map(resp, func(T) struct{} { return struct{}{} }), "Created")
}

func (c *Container[T]) Update(ctx context.Context, id string, item T) notice.Notice {
	resp := c.resource.Update(ctx, id, item)
	return c.afterMutation(ctx, "update", envelope.Map(resp, func(T) struct{} { return struct{}{} }), "Updated")
}

func (c *Container[T]) Delete(ctx context.Context, id string) notice.Notice {
	return c.afterMutation(ctx, "delete", c.resource.Delete(ctx, id), "Deleted")
}

func (c *Container[T]) afterMutation(ctx context.Context, op string, resp envelope.Response[struct{}], fallback string) notice.Notice {
	logger := logging.FromContext(ctx, c.logger)
	if !resp.Success() {
		logging.Warn(logger, "roster mutation rejected",
			slog.String(logging.FieldOperation, c.name+"."+op),
			slog.String("message", resp.Message),
		)
		return notice.Error(resp.Message)
	}
	result := notice.FromEnvelope(resp, fallback)
	if reload := c.Load(ctx); !reload.OK() {
		logging.Warn(logger, "roster refetch failed",
			slog.String(logging.FieldOperation, c.name+".list"),
			slog.String("message", reload.Message),
		)
	}
	return result
}

// Items returns a copy of the cached list.
func (c *Container[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Find returns the cached entry with the given key.
func (c *Container[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Search narrows the cached list by substring, plus any extra predicates.
func (c *Container[T]) Search(query string, extra ...filter.Predicate[T]) []T {
	preds := append([]filter.Predicate[T]{filter.Search[T](query)}, extra...)
	return filter.Apply(c.Items(), preds...)
}

func (c *Container[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

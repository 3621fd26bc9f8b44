package backend

import (
	"context"
	"net/http"

	"github.com/preston-bernstein/football-admin-service/internal/domain/org"
	"github.com/preston-bernstein/football-admin-service/internal/domain/players"
	"github.com/preston-bernstein/football-admin-service/internal/domain/teams"
	"github.com/preston-bernstein/football-admin-service/internal/envelope"
)

// Resource is the list/create/update/delete quartet shared by every roster entity.
type Resource[T any] struct {
	client *Client
	name   string
	path   string
}

func newResource[T any](c *Client, name string) Resource[T] {
	return Resource[T]{client: c, name: name, path: "/" + name}
}

// List fetches every entry; filters are passed through as query parameters.
func (r Resource[T]) List(ctx context.Context, filters ...string) envelope.Response[[]T] {
	return call[[]T](ctx, r.client, request{
		op:     r.name + ".list",
		method: http.MethodGet,
		path:   r.path,
		query:  queryOf(filters...),
	})
}

func (r Resource[T]) Create(ctx context.Context, item T) envelope.Response[T] {
	return call[T](ctx, r.client, request{
		op:     r.name + ".create",
		method: http.MethodPost,
		path:   r.path,
		body:   item,
	})
}

func (r Resource[T]) Update(ctx context.Context, id string, item T) envelope.Response[T] {
	return call[T](ctx, r.client, request{
		op:     r.name + ".update",
		method: http.MethodPut,
		path:   r.path + joinPath(id),
		body:   item,
	})
}

func (r Resource[T]) Delete(ctx context.Context, id string) envelope.Response[Ack] {
	return call[Ack](ctx, r.client, request{
		op:     r.name + ".delete",
		method: http.MethodDelete,
		path:   r.path + joinPath(id),
	})
}

func (c *Client) Players() Resource[players.Player] { return newResource[players.Player](c, "players") }
func (c *Client) Teams() Resource[teams.Team] { return newResource[teams.Team](c, "teams") }
func (c *Client) Admins() Resource[org.Admin] { return newResource[org.Admin](c, "admins") }
func (c *Client) Faculties() Resource[org.Faculty] { return newResource[org.Faculty](c, "faculties") }
func (c *Client) Departments() Resource[org.Department] { return newResource[org.Department](c, "departments") }
func (c *Client) Competitions() Resource[org.Competition] { return newResource[org.Competition](c, "competitions") }

// ListPlayers lists players, narrowed to one team when teamID is set.
func (c *Client) ListPlayers(ctx context.Context, teamID string) envelope.Response[[]players.Player] {
	return c.Players().List(ctx, "teamId", teamID)
}

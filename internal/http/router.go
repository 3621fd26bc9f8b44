package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/preston-bernstein/football-admin-service/internal/http/handlers"
	"github.com/preston-bernstein/football-admin-service/internal/http/middleware"
	"github.com/preston-bernstein/football-admin-service/internal/metrics"
	"github.com/preston-bernstein/football-admin-service/internal/roles"
)

// RosterRoutes is the CRUD surface of one admin roster page.
type RosterRoutes interface {
	List(nethttp.ResponseWriter, *nethttp.Request)
	Get(nethttp.ResponseWriter, *nethttp.Request)
	Create(nethttp.ResponseWriter, *nethttp.Request)
	Update(nethttp.ResponseWriter, *nethttp.Request)
	Delete(nethttp.ResponseWriter, *nethttp.Request)
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Ops      *handlers.Handler
	Auth     *handlers.AuthHandler
	Fixtures *handlers.FixturesHandler
	Football *handlers.FootballHandler
	TOTS     *handlers.TOTSHandler
	// Rosters maps the path segment under /admin (players, teams, ...) to its handler.
	Rosters map[string]RosterRoutes
	// Profiles resolves the caller for the admin and voting routes.
	Profiles middleware.ProfileFetcher
}

// Options carries the cross-cutting settings applied around the routes.
type Options struct {
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	AllowedOrigins []string
}

// NewRouter registers the routes on a gorilla/mux router wrapped with CORS
// and request logging.
func NewRouter(h Handlers, opts Options) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = handlers.NotFound(opts.Logger)
	r.MethodNotAllowedHandler = handlers.MethodNotAllowed(opts.Logger)
	r.Use(middleware.RouteTemplate, middleware.Credentials)

	r.HandleFunc("/health", h.Ops.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", h.Ops.Ready).Methods(nethttp.MethodGet)

	r.HandleFunc("/auth/login", h.Auth.Login).Methods(nethttp.MethodPost)
	r.HandleFunc("/auth/otp/verify", h.Auth.VerifyOTP).Methods(nethttp.MethodPost)
	r.HandleFunc("/auth/otp/resend", h.Auth.ResendOTP).Methods(nethttp.MethodPost)
	r.HandleFunc("/auth/profile", h.Auth.Profile).Methods(nethttp.MethodGet)

	r.HandleFunc("/football/fixtures", h.Football.Fixtures).Methods(nethttp.MethodGet)
	r.HandleFunc("/football/fixtures/{id}", h.Football.Fixture).Methods(nethttp.MethodGet)
	r.HandleFunc("/football/live", h.Football.Live).Methods(nethttp.MethodGet)

	registerSports(r, h, opts.Logger)
	registerAdmin(r, h, opts.Logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodPut, nethttp.MethodPatch, nethttp.MethodDelete, nethttp.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	return middleware.LoggingMiddleware(opts.Logger, opts.Metrics, c.Handler(r))
}

func registerSports(r *mux.Router, h Handlers, logger *slog.Logger) {
	sports := r.PathPrefix("/sports/tots").Subrouter()
	sports.HandleFunc("/sessions", h.TOTS.Sessions).Methods(nethttp.MethodGet)
	sports.HandleFunc("/active", h.TOTS.Active).Methods(nethttp.MethodGet)
	sports.HandleFunc("/sessions/{id}/candidates", h.TOTS.Candidates).Methods(nethttp.MethodGet)
	sports.HandleFunc("/sessions/{id}/results", h.TOTS.Results).Methods(nethttp.MethodGet)

	signedIn := middleware.Authenticate(h.Profiles, logger)
	canVote := middleware.Require(roles.CanVote)
	voter := func(fn nethttp.HandlerFunc) nethttp.Handler { return signedIn(canVote(fn)) }
	sports.Handle("/sessions/{id}/vote", voter(h.TOTS.Vote)).Methods(nethttp.MethodGet)
	sports.Handle("/sessions/{id}/vote", voter(h.TOTS.SubmitVote)).Methods(nethttp.MethodPost)
}

func registerAdmin(r *mux.Router, h Handlers, logger *slog.Logger) {
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Authenticate(h.Profiles, logger), middleware.Require(roles.IsAdmin))

	f := h.Fixtures
	admin.HandleFunc("/fixtures", f.List).Methods(nethttp.MethodGet)
	admin.HandleFunc("/fixtures", f.Create).Methods(nethttp.MethodPost)
	admin.HandleFunc("/fixtures/draft", f.GetDraft).Methods(nethttp.MethodGet)
	admin.HandleFunc("/fixtures/draft", f.SaveDraft).Methods(nethttp.MethodPut)
	admin.HandleFunc("/fixtures/live", f.Live).Methods(nethttp.MethodGet)
	admin.HandleFunc("/fixtures/{id}", f.Get).Methods(nethttp.MethodGet)
	admin.HandleFunc("/fixtures/{id}", f.Update).Methods(nethttp.MethodPatch)
	admin.HandleFunc("/fixtures/{id}", f.Delete).Methods(nethttp.MethodDelete)
	admin.HandleFunc("/fixtures/{id}/live", f.LiveDraft).Methods(nethttp.MethodGet)
	admin.HandleFunc("/fixtures/{id}/live", f.PushLive).Methods(nethttp.MethodPut)
	admin.HandleFunc("/fixtures/{id}/status", f.UpdateStatus).Methods(nethttp.MethodPut)
	admin.HandleFunc("/fixtures/{id}/score", f.UpdateScore).Methods(nethttp.MethodPut)
	admin.HandleFunc("/fixtures/{id}/lineup", f.SetLineup).Methods(nethttp.MethodPut)
	admin.HandleFunc("/fixtures/{id}/timeline", f.AddEvent).Methods(nethttp.MethodPost)
	admin.HandleFunc("/fixtures/{id}/timeline/{eventID}", f.DeleteEvent).Methods(nethttp.MethodDelete)

	for name, rh := range h.Rosters {
		admin.HandleFunc("/"+name, rh.List).Methods(nethttp.MethodGet)
		admin.HandleFunc("/"+name, rh.Create).Methods(nethttp.MethodPost)
		admin.HandleFunc("/"+name+"/{id}", rh.Get).Methods(nethttp.MethodGet)
		admin.HandleFunc("/"+name+"/{id}", rh.Update).Methods(nethttp.MethodPut)
		admin.HandleFunc("/"+name+"/{id}", rh.Delete).Methods(nethttp.MethodDelete)
	}

	t := h.TOTS
	manage := middleware.Require(roles.CanManageTOTS)
	adminVote := middleware.Require(roles.CanCastAdminVote)
	admin.HandleFunc("/tots/sessions", t.Sessions).Methods(nethttp.MethodGet)
	admin.Handle("/tots/sessions", manage(nethttp.HandlerFunc(t.CreateSession))).Methods(nethttp.MethodPost)
	admin.HandleFunc("/tots/sessions/{id}/results", t.Results).Methods(nethttp.MethodGet)
	admin.Handle("/tots/sessions/{id}/finalize", manage(nethttp.HandlerFunc(t.Finalize))).Methods(nethttp.MethodPost)
	admin.Handle("/tots/sessions/{id}/admin-vote", adminVote(nethttp.HandlerFunc(t.AdminVote))).Methods(nethttp.MethodPost)
}

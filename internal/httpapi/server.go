package httpapi

import (
	"context"
	"net/http"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/observability/jsonlog"
)

// TaskService is the facade the handlers call into.
type TaskService interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, title string) (model.Task, error)
	Get(ctx context.Context, id int) (model.Task, error)
	Update(ctx context.Context, id int, changes model.Changes) (model.Task, error)
	Delete(ctx context.Context, id int) (model.DeleteResult, error)
}

type Options struct {
	Logger         *jsonlog.Logger
	RequestTimeout time.Duration
	// Ready backs /readyz. When nil /readyz always reports ready.
	Ready Pinger
}

type Server struct {
	service TaskService
	logger  *jsonlog.Logger
	mux     *http.ServeMux
	handler http.Handler
}

func NewServer(service TaskService, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = jsonlog.Discard()
	}
	if opts.Ready == nil {
		opts.Ready = alwaysReady{}
	}

	srv := &Server{
		service: service,
		logger:  opts.Logger,
		mux:     http.NewServeMux(),
	}

	srv.mux.HandleFunc("GET /healthz", HealthHandler())
	srv.mux.HandleFunc("GET /readyz", ReadyzHandler(opts.Ready))

	srv.mux.HandleFunc("GET /tasks", srv.handleListTasks)
	srv.mux.HandleFunc("POST /tasks", srv.handleCreateTask)
	srv.mux.HandleFunc("GET /tasks/{id}", srv.handleGetTask)
	srv.mux.HandleFunc("PATCH /tasks/{id}", srv.handlePatchTask)
	srv.mux.HandleFunc("DELETE /tasks/{id}", srv.handleDeleteTask)

	srv.handler = WithRequestID(
		LoggingJSON(opts.Logger)(
			Timeout(opts.RequestTimeout)(srv.mux),
		),
	)
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

type alwaysReady struct{}

func (alwaysReady) PingContext(ctx context.Context) error { return nil }

package httpadapter

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "organease/internal/api"
	"organease/internal/domain"
	"organease/internal/ports"
	"organease/internal/services/matching"
	"organease/internal/services/profiles"
	"organease/internal/services/verification"
	"organease/internal/services/workflow"
	"organease/internal/workers/outbox"
)

var _ api.StrictServerInterface = (*Server)(nil)

type Deps struct {
	Profiles     *profiles.Service
	Verification *verification.Service
	Matching     *matching.Service
	Workflow     *workflow.Service
	Inbox        ports.Inbox
	// Documents serves generated consent documents to match parties.
	Documents ports.ConsentDocuments

	// Jobs and Outbox run consent jobs inline for ?wait=true.
	Jobs        ports.JobRepository
	Outbox      outbox.Handler
	MaxAttempts int

	Auth        *Authenticator
	CORSOrigins []string
	Logger      *log.Logger
}

// Server implements the generated StrictServerInterface.
type Server struct {
	Deps
}

func New(d Deps) *Server {
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	if d.MaxAttempts < 1 {
		d.MaxAttempts = 1
	}
	return &Server{Deps: d}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	origins := s.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	// Generated handler wiring
	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.badRequest,
		ResponseErrorHandlerFunc: s.fail,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{s.Auth.Middleware},
		ErrorHandlerFunc: s.badRequest,
	})
	return r
}

type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func statusOf(err error) int {
	var re *requestError
	switch {
	case errors.As(err, &re):
		return re.status
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// badRequest answers parameter binding and body decoding failures.
func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, http.StatusBadRequest, err.Error())
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.Logger.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		respondError(w, status, "internal error")
		return
	}
	respondError(w, status, err.Error())
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, api.ErrorResponse{Error: message})
}

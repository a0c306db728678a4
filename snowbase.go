// Package snowbase provides a small HTTP proxy for Snowflake. Callers
// supply credentials per request; the proxy opens a connection, runs a
// caller-provided SQL statement, or builds a fixed preview (top rows,
// column metadata, row count) for a named table.
package snowbase

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/dracory/snowbase/docs"
)

// Handler implements http.Handler for the proxy routes.
type Handler struct {
	cfg       Config
	connector *Connector
	profiles  *ProfileStore
	mux       *http.ServeMux
}

// NewHandler constructs a Handler, opening the profile store named in
// the configuration.
func NewHandler(cfg Config) (*Handler, error) {
	store, err := OpenProfileStore(cfg.ProfilesDB)
	if err != nil {
		return nil, err
	}
	h := &Handler{
		cfg:       cfg,
		connector: NewConnector(time.Duration(cfg.LoginTimeoutSeconds) * time.Second),
		profiles:  store,
	}
	h.mux = h.routes()
	return h, nil
}

// routes mounts all proxy routes on a fresh mux.
func (h *Handler) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Warehouse proxy routes.
	mux.HandleFunc("POST /{$}", h.handleConnect)
	mux.HandleFunc("POST /query", h.handleQuery)
	mux.HandleFunc("POST /relation-preview", h.handlePreview)

	// Saved connection profiles.
	mux.HandleFunc("GET /profiles", h.handleProfilesList)
	mux.HandleFunc("POST /profiles", h.handleProfilesSave)

	// Generated API documentation.
	mux.Handle("GET /api-docs/", httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Basic secure headers; the proxy serves JSON plus the swagger UI.
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")

	h.mux.ServeHTTP(w, r)
}

// Register mounts the handler on the provided mux at path.
func Register(mux *http.ServeMux, path string, h http.Handler) {
	if len(path) == 0 || path[0] != '/' {
		path = "/" + path
	}
	mux.Handle(path, h)
}

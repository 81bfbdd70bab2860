package app

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/velvet-portal/velvet-portal/internal/auth"
	"github.com/velvet-portal/velvet-portal/internal/catalog"
	"github.com/velvet-portal/velvet-portal/internal/observability"
	"github.com/velvet-portal/velvet-portal/internal/platform/httpx"
	"github.com/velvet-portal/velvet-portal/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	AuthHandler    *auth.Handler
	CatalogHandler *catalog.Handler
	Guard          func(http.Handler) http.Handler
	Metrics        *observability.Metrics
}

// NewRouter constructs the chi.Router for the portal. API misses produce a
// structured JSON 404; everything else falls back to the SPA entry document.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			httpx.Error(w, http.StatusNotFound, "not found")
		})
		api.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		})

		api.Post("/login", params.AuthHandler.Login)
		api.Get("/config", handlePublicConfig(params.Config))

		api.Group(func(g chi.Router) {
			g.Use(params.Guard)
			g.Get("/me", params.AuthHandler.Me)
			g.Get("/pocs", params.CatalogHandler.List)
		})
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.NotFound(spaHandler(params.Logger))

	return r
}

type publicConfig struct {
	FeedbackFormURL string `json:"feedbackFormUrl"`
}

// handlePublicConfig exposes the non-secret runtime configuration.
func handlePublicConfig(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, publicConfig{FeedbackFormURL: cfg.FeedbackFormURL})
	}
}

// spaHandler serves files from the embedded SPA bundle and falls back to the
// entry document for client-side routes.
func spaHandler(logger *slog.Logger) http.HandlerFunc {
	public, err := fs.Sub(web.Public, "public")
	if err != nil {
		logger.Error("create public sub filesystem", slog.Any("error", err))
		return func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		if path != "" && path != "index.html" {
			if info, err := fs.Stat(public, path); err == nil && !info.IsDir() {
				// Hashed assets may be cached; the entry document never is.
				w.Header().Set("Cache-Control", "public, max-age=3600")
				http.ServeFileFS(w, r, public, path)
				return
			}
		}
		http.ServeFileFS(w, r, public, "index.html")
	}
}

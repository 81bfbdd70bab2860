package catalog

import (
	"log/slog"
	"net/http"

	"github.com/velvet-portal/velvet-portal/internal/platform/httpx"
)

// Handler serves the catalog over HTTP.
type Handler struct {
	logger   *slog.Logger
	provider Provider
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, provider Provider) *Handler {
	return &Handler{logger: logger, provider: provider}
}

// List returns the full ordered catalog. Read or parse failures surface as a
// generic server error; the cause is only logged.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pocs, err := h.provider.List(r.Context())
	if err != nil {
		h.logger.Error("load catalog", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}
	httpx.JSON(w, http.StatusOK, pocs)
}

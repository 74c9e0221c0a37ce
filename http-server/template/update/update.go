package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"checkmaster/internal/storage"
)

type TemplateUpdater interface {
	SaveTemplate(ctx context.Context, template *storage.Template) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// UpdateTemplate replaces the template snapshot addressed by the URL. The
// body's identifier, if any, is overridden by the path.
func UpdateTemplate(log *slog.Logger, updater TemplateUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.UpdateTemplate"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing template id", http.StatusBadRequest)
			return
		}

		var req storage.Template
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		req.ID = id

		if err := storage.ValidateTemplate(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.SaveTemplate(ctx, &req); err != nil {
			log.Error("Failed to update template", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "failed to update template"})
			return
		}

		render.JSON(w, r, Response{Status: "updated", Error: ""})
	}
}

package save

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"checkmaster/internal/service/session"
	"checkmaster/internal/storage"
)

type TemplateSaver interface {
	SaveTemplate(ctx context.Context, template *storage.Template) error
}

type TemplateDuplicator interface {
	GetTemplateByID(ctx context.Context, id string) (*storage.Template, error)
	SaveTemplate(ctx context.Context, template *storage.Template) error
}

type Response struct {
	TemplateID string `json:"template_id"`
	Status     string `json:"status"`
	Error      string `json:"error"`
}

// SaveTemplate upserts a whole template snapshot.
func SaveTemplate(log *slog.Logger, saver TemplateSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.SaveTemplate"

		var req storage.Template
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.ID == "" {
			req.ID = storage.NewID()
		}

		if err := storage.ValidateTemplate(&req); err != nil {
			log.Error("Invalid template", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveTemplate(ctx, &req); err != nil {
			log.Error("Failed to save template", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "failed to save template"})
			return
		}

		render.JSON(w, r, Response{
			TemplateID: req.ID,
			Status:     "saved",
			Error:      "",
		})
	}
}

// DuplicateTemplate copies an existing template under a fresh identifier.
func DuplicateTemplate(log *slog.Logger, store TemplateDuplicator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.DuplicateTemplate"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing template id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		template, err := store.GetTemplateByID(ctx, id)
		if err != nil {
			if strings.Contains(err.Error(), "not found") || errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "Template not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to fetch template", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		duplicate, err := session.Duplicate(template)
		if err != nil {
			log.Error("Failed to duplicate template", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if err := store.SaveTemplate(ctx, duplicate); err != nil {
			log.Error("Failed to save duplicate", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "failed to save template"})
			return
		}

		render.JSON(w, r, Response{
			TemplateID: duplicate.ID,
			Status:     "created",
			Error:      "",
		})
	}
}

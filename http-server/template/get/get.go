package get

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"checkmaster/internal/storage"
)

type TemplateProvider interface {
	GetTemplateByID(ctx context.Context, id string) (*storage.Template, error)
	ListTemplates(ctx context.Context) ([]*storage.Template, error)
}

type ResponseList struct {
	Templates []*storage.Template `json:"templates"`
	Error     string              `json:"error"`
}

func GetAllTemplates(log *slog.Logger, provider TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.GetAllTemplates"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		templates, err := provider.ListTemplates(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch templates")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseList{
			Templates: templates,
			Error:     "",
		})
	}
}

func GetTemplateByID(log *slog.Logger, provider TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.GetTemplateByID"

		id := chi.URLParam(r, "id")
		if id == "" {
			log.With(slog.String("op", op)).Error("Missing 'id' in URL")
			http.Error(w, "Missing template id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		template, err := provider.GetTemplateByID(ctx, id)
		if err != nil {
			if strings.Contains(err.Error(), "not found") || errors.Is(err, sql.ErrNoRows) {
				log.With(slog.String("op", op), slog.String("id", id)).Warn("Template not found")
				http.Error(w, "Template not found", http.StatusNotFound)
				return
			}

			log.With(
				slog.String("op", op),
				slog.String("id", id),
				slog.String("error", err.Error()),
			).Error("Failed to fetch template")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, template)
	}
}

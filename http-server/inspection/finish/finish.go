package finish

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"checkmaster/internal/service/session"
	"checkmaster/internal/storage"
)

type InspectionStorage interface {
	GetTemplateByID(ctx context.Context, id string) (*storage.Template, error)
	SaveOrder(ctx context.Context, order *storage.Order) error
}

type Request struct {
	TemplateID string                   `json:"template_id"`
	ClientName string                   `json:"client_name"`
	Values     map[string]storage.Value `json:"values"`
	Category   string                   `json:"category"`
	Brand      string                   `json:"brand"`
	Model      string                   `json:"model"`
}

type Response struct {
	OrderID    string  `json:"order_id"`
	TotalValue float64 `json:"total_value"`
	Status     string  `json:"status"`
	Error      string  `json:"error"`
}

// FinishInspection materializes one run server-side: deep-copies the
// template, loads the submitted values, replays the guided selector and
// freezes the result into an order.
func FinishInspection(log *slog.Logger, store InspectionStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inspection.FinishInspection"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		template, err := store.GetTemplateByID(ctx, req.TemplateID)
		if err != nil {
			if strings.Contains(err.Error(), "not found") || errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "Template not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to fetch template", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		run, err := session.StartRun(template)
		if err != nil {
			log.Error("Failed to start run", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		// Values for fields the template no longer has are dropped silently.
		for fieldID, value := range req.Values {
			run.SetValue(fieldID, value)
		}

		if req.Category != "" {
			run.SetCategory(req.Category)
		}
		if req.Brand != "" {
			run.SetBrand(req.Brand)
		}
		if req.Model != "" {
			run.SetModel(req.Model)
		}

		order, err := run.Finish(ctx, req.ClientName, store)
		if err != nil {
			if errors.Is(err, session.ErrEmptyClientName) {
				http.Error(w, "Client name is required", http.StatusUnprocessableEntity)
				return
			}
			log.Error("Failed to finish inspection", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "failed to save order"})
			return
		}

		render.JSON(w, r, Response{
			OrderID:    order.ID,
			TotalValue: order.TotalValue,
			Status:     order.Status,
			Error:      "",
		})
	}
}

package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"checkmaster/internal/storage"
)

type OrderProvider interface {
	ListOrders(ctx context.Context) ([]*storage.Order, error)
}

type ResponseList struct {
	Orders []*storage.Order `json:"orders"`
	Error  string           `json:"error"`
}

// GetOrders returns every order, oldest first.
func GetOrders(log *slog.Logger, provider OrderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.GetOrders"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orders, err := provider.ListOrders(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch orders")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseList{
			Orders: orders,
			Error:  "",
		})
	}
}

package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"checkmaster/internal/service/report"
	"checkmaster/internal/storage"
)

type ReportStorage interface {
	ListOrders(ctx context.Context) ([]*storage.Order, error)
	ListTemplates(ctx context.Context) ([]*storage.Template, error)
}

type FinanceResponse struct {
	TotalRevenue float64                `json:"total_revenue"`
	Companies    []*report.CompanyGroup `json:"companies"`
	Error        string                 `json:"error"`
}

// GetFinanceReport aggregates completed orders into the consolidated
// billing view, grouped by company and service.
func GetFinanceReport(log *slog.Logger, store ReportStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GetFinanceReport"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orders, err := store.ListOrders(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch orders")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		totalRevenue, companies := report.Aggregate(orders)

		render.JSON(w, r, FinanceResponse{
			TotalRevenue: totalRevenue,
			Companies:    companies,
			Error:        "",
		})
	}
}

type DashboardResponse struct {
	Stats        report.Stats        `json:"stats"`
	Favorites    []*storage.Template `json:"favorites"`
	RecentOrders []*storage.Order    `json:"recent_orders"`
	Error        string              `json:"error"`
}

// GetDashboard loads templates and orders in parallel and builds the
// landing-page summary: today's counters, favorite templates and the five
// most recent orders.
func GetDashboard(log *slog.Logger, store ReportStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GetDashboard"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var (
			templates []*storage.Template
			orders    []*storage.Order
		)

		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			templates, err = store.ListTemplates(gCtx)
			return err
		})
		g.Go(func() error {
			var err error
			orders, err = store.ListOrders(gCtx)
			return err
		})

		if err := g.Wait(); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch dashboard data")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		var favorites []*storage.Template
		for _, t := range templates {
			if t.IsFavorite {
				favorites = append(favorites, t)
			}
		}

		recent := make([]*storage.Order, 0, 5)
		for i := len(orders) - 1; i >= 0 && len(recent) < 5; i-- {
			recent = append(recent, orders[i])
		}

		render.JSON(w, r, DashboardResponse{
			Stats:        report.BuildStats(orders, time.Now()),
			Favorites:    favorites,
			RecentOrders: recent,
			Error:        "",
		})
	}
}

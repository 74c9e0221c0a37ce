package report

import (
	"sort"
	"time"

	"checkmaster/internal/storage"
)

// DirectClientBucket groups orders whose client name is empty. The key is
// never the empty string, so anonymous orders from different sources do
// not silently merge with each other under "".
const DirectClientBucket = "Cliente Direto"

type ServiceGroup struct {
	TemplateName string           `json:"template_name"`
	Count        int              `json:"count"`
	Total        float64          `json:"total"`
	Orders       []*storage.Order `json:"orders"`
}

type CompanyGroup struct {
	ClientName    string                   `json:"client_name"`
	TotalValue    float64                  `json:"total_value"`
	TotalServices int                      `json:"total_services"`
	LastActivity  time.Time                `json:"last_activity"`
	Services      map[string]*ServiceGroup `json:"services"`
}

// Aggregate folds completed orders into company groups nested by service.
// Only completed orders are accounted; everything else is ignored. The
// result is built fresh on every call from the input alone, so repeated
// runs over the same orders yield identical output, and the input slice is
// never reordered or mutated.
//
// Companies are sorted by total value descending; equal totals fall back
// to client name ascending to keep the order stable.
func Aggregate(orders []*storage.Order) (float64, []*CompanyGroup) {
	var totalRevenue float64

	companies := make(map[string]*CompanyGroup)

	for _, order := range orders {
		if order.Status != storage.StatusCompleted {
			continue
		}

		totalRevenue += order.TotalValue

		clientKey := order.ClientName
		if clientKey == "" {
			clientKey = DirectClientBucket
		}

		company, ok := companies[clientKey]
		if !ok {
			company = &CompanyGroup{
				ClientName:   clientKey,
				LastActivity: order.Date,
				Services:     make(map[string]*ServiceGroup),
			}
			companies[clientKey] = company
		}

		company.TotalValue += order.TotalValue
		company.TotalServices++
		// Strict greater-than: ties keep the first-seen instant.
		if order.Date.After(company.LastActivity) {
			company.LastActivity = order.Date
		}

		service, ok := company.Services[order.TemplateName]
		if !ok {
			service = &ServiceGroup{TemplateName: order.TemplateName}
			company.Services[order.TemplateName] = service
		}

		service.Count++
		service.Total += order.TotalValue
		service.Orders = append(service.Orders, order)
	}

	grouped := make([]*CompanyGroup, 0, len(companies))
	for _, company := range companies {
		grouped = append(grouped, company)
	}

	sort.Slice(grouped, func(i, j int) bool {
		if grouped[i].TotalValue != grouped[j].TotalValue {
			return grouped[i].TotalValue > grouped[j].TotalValue
		}
		return grouped[i].ClientName < grouped[j].ClientName
	})

	return totalRevenue, grouped
}

// ServiceNames returns the company's service group names sorted
// ascending, for consumers that need a deterministic walk over the map.
func (c *CompanyGroup) ServiceNames() []string {
	names := make([]string, 0, len(c.Services))
	for name := range c.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stats is the dashboard summary block. Unlike the finance report it
// counts every order regardless of status.
type Stats struct {
	OrdersToday int     `json:"orders_today"`
	TotalGains  float64 `json:"total_gains"`
	Clients     int     `json:"clients"`
}

func BuildStats(orders []*storage.Order, now time.Time) Stats {
	stats := Stats{}

	clients := make(map[string]struct{})

	year, month, day := now.Date()
	for _, order := range orders {
		oy, om, od := order.Date.Date()
		if oy == year && om == month && od == day {
			stats.OrdersToday++
		}
		stats.TotalGains += order.TotalValue
		clients[order.ClientName] = struct{}{}
	}
	stats.Clients = len(clients)

	return stats
}

package mysql

import (
	"context"
	"encoding/json"
	"fmt"

	"checkmaster/internal/storage"
)

// SaveOrder appends a completed order. Orders are never updated or deleted.
func (s *Storage) SaveOrder(ctx context.Context, order *storage.Order) error {
	const op = "storage.mysql.SaveOrder"

	fieldsJSON, err := json.Marshal(order.Fields)
	if err != nil {
		return fmt.Errorf("%s: encode fields JSON: %w", op, err)
	}

	vehicleJSON, err := json.Marshal(order.Vehicle)
	if err != nil {
		return fmt.Errorf("%s: encode vehicle JSON: %w", op, err)
	}

	stmt := `
		INSERT INTO service_orders
			(id, template_id, template_name, client_name, vehicle, fields, total_value, status, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, stmt, order.ID, order.TemplateID, order.TemplateName,
		order.ClientName, string(vehicleJSON), string(fieldsJSON), order.TotalValue,
		order.Status, order.Date)
	if err != nil {
		return fmt.Errorf("%s: save order: %w", op, err)
	}

	return nil
}

// ListOrders returns every order in completion order, oldest first.
func (s *Storage) ListOrders(ctx context.Context) ([]*storage.Order, error) {
	const op = "storage.mysql.ListOrders"

	stmt := `
		SELECT id, template_id, template_name, client_name, vehicle, fields, total_value, status, completed_at
		FROM service_orders
		ORDER BY completed_at
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []*storage.Order

	for rows.Next() {
		order := &storage.Order{}

		var vehicleJSON, fieldsJSON string
		err := rows.Scan(&order.ID, &order.TemplateID, &order.TemplateName, &order.ClientName,
			&vehicleJSON, &fieldsJSON, &order.TotalValue, &order.Status, &order.Date)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		if err := json.Unmarshal([]byte(vehicleJSON), &order.Vehicle); err != nil {
			return nil, fmt.Errorf("%s: decode vehicle JSON: %w", op, err)
		}

		if err := json.Unmarshal([]byte(fieldsJSON), &order.Fields); err != nil {
			return nil, fmt.Errorf("%s: decode fields JSON: %w", op, err)
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate rows: %w", op, err)
	}

	return orders, nil
}

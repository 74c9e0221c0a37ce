package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"checkmaster/internal/storage"
)

func (s *Storage) GetTemplateByID(ctx context.Context, id string) (*storage.Template, error) {
	const op = "storage.mysql.GetTemplateByID"

	query := `
		SELECT id, name, description, is_favorite, fields
		FROM checklist_templates
		WHERE id = ?
	`

	template := &storage.Template{}

	var fieldsJSON string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&template.ID,
		&template.Name,
		&template.Description,
		&template.IsFavorite,
		&fieldsJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: template id='%s' not found: %w", op, id, err)
		}
		return nil, fmt.Errorf("%s: query failed: %w", op, err)
	}

	if err := json.Unmarshal([]byte(fieldsJSON), &template.Fields); err != nil {
		return nil, fmt.Errorf("%s: decode fields JSON: %w", op, err)
	}

	return template, nil
}

func (s *Storage) ListTemplates(ctx context.Context) ([]*storage.Template, error) {
	const op = "storage.mysql.ListTemplates"

	stmt := "SELECT id, name, description, is_favorite, fields FROM checklist_templates ORDER BY name"

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var templates []*storage.Template

	for rows.Next() {
		template := &storage.Template{}

		var fieldsJSON string
		err := rows.Scan(&template.ID, &template.Name, &template.Description, &template.IsFavorite, &fieldsJSON)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		if err := json.Unmarshal([]byte(fieldsJSON), &template.Fields); err != nil {
			return nil, fmt.Errorf("%s: decode fields JSON: %w", op, err)
		}

		templates = append(templates, template)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate rows: %w", op, err)
	}

	return templates, nil
}

// SaveTemplate persists the whole template snapshot, inserting or replacing
// by identifier. Partial field edits never reach storage.
func (s *Storage) SaveTemplate(ctx context.Context, template *storage.Template) error {
	const op = "storage.mysql.SaveTemplate"

	fieldsJSON, err := json.Marshal(template.Fields)
	if err != nil {
		return fmt.Errorf("%s: encode fields JSON: %w", op, err)
	}

	stmt := `
		INSERT INTO checklist_templates (id, name, description, is_favorite, fields)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name),
			description = VALUES(description),
			is_favorite = VALUES(is_favorite),
			fields = VALUES(fields)
	`

	_, err = s.db.ExecContext(ctx, stmt, template.ID, template.Name, template.Description,
		template.IsFavorite, string(fieldsJSON))
	if err != nil {
		return fmt.Errorf("%s: save template: %w", op, err)
	}

	return nil
}

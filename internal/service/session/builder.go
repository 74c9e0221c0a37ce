package session

import (
	"fmt"

	"checkmaster/internal/constants"
	"checkmaster/internal/storage"
)

type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// FieldUpdate carries a partial field edit; nil members are left untouched.
type FieldUpdate struct {
	Label    *string
	Required *bool
}

type OptionUpdate struct {
	Label *string
	Price *float64
}

// AddField appends a field with a fresh identifier and returns it so the
// caller can open the field for editing. Option-bearing types are seeded
// with one default option.
func (s *Session) AddField(fieldType storage.FieldType, label string) string {
	field := storage.Field{
		ID:       storage.NewID(),
		Label:    label,
		Type:     fieldType,
		Required: false,
	}

	if fieldType.HasOptions() {
		field.Options = []storage.Option{
			{ID: storage.NewID(), Label: "Opção 1", Price: 0},
		}
	}

	s.template.Fields = append(s.template.Fields, field)

	return field.ID
}

// MoveField swaps a field with its neighbor. Moves that would leave the
// sequence are silent no-ops.
func (s *Session) MoveField(index int, direction Direction) {
	fields := s.template.Fields
	if index < 0 || index >= len(fields) {
		return
	}

	target := index - 1
	if direction == MoveDown {
		target = index + 1
	}
	if target < 0 || target >= len(fields) {
		return
	}

	fields[index], fields[target] = fields[target], fields[index]
}

// UpdateField applies a partial edit to the field at index. An index out
// of range is a no-op.
func (s *Session) UpdateField(index int, update FieldUpdate) {
	if index < 0 || index >= len(s.template.Fields) {
		return
	}

	field := &s.template.Fields[index]
	if update.Label != nil {
		field.Label = *update.Label
	}
	if update.Required != nil {
		field.Required = *update.Required
	}
}

// AddOption appends an option with a fresh identifier and price 0.
func (s *Session) AddOption(fieldIndex int, label string) {
	if fieldIndex < 0 || fieldIndex >= len(s.template.Fields) {
		return
	}

	field := &s.template.Fields[fieldIndex]
	if !field.Type.HasOptions() {
		return
	}

	field.Options = append(field.Options, storage.Option{
		ID:    storage.NewID(),
		Label: label,
		Price: 0,
	})
}

func (s *Session) UpdateOption(fieldIndex, optionIndex int, update OptionUpdate) {
	if fieldIndex < 0 || fieldIndex >= len(s.template.Fields) {
		return
	}

	field := &s.template.Fields[fieldIndex]
	if optionIndex < 0 || optionIndex >= len(field.Options) {
		return
	}

	option := &field.Options[optionIndex]
	if update.Label != nil {
		option.Label = *update.Label
	}
	if update.Price != nil {
		option.Price = *update.Price
	}
}

func (s *Session) RemoveOption(fieldIndex, optionIndex int) {
	if fieldIndex < 0 || fieldIndex >= len(s.template.Fields) {
		return
	}

	field := &s.template.Fields[fieldIndex]
	if optionIndex < 0 || optionIndex >= len(field.Options) {
		return
	}

	field.Options = append(field.Options[:optionIndex], field.Options[optionIndex+1:]...)
}

// RemoveField drops the field and discards any run value keyed by it, so
// the run-value store never holds entries for fields that no longer exist.
func (s *Session) RemoveField(fieldID string) {
	fields := s.template.Fields
	for i := range fields {
		if fields[i].ID == fieldID {
			s.template.Fields = append(fields[:i], fields[i+1:]...)
			delete(s.values, fieldID)
			return
		}
	}
}

// LoadPreset replaces the field's option list with a named catalog. This
// is a destructive replace, not a merge: every generated option gets a
// fresh identifier and price 0.
func (s *Session) LoadPreset(fieldIndex int, catalog string) error {
	const op = "session.LoadPreset"

	if fieldIndex < 0 || fieldIndex >= len(s.template.Fields) {
		return fmt.Errorf("%s: field index %d out of range", op, fieldIndex)
	}

	field := &s.template.Fields[fieldIndex]
	if !field.Type.HasOptions() {
		return fmt.Errorf("%s: field type %q has no options", op, field.Type)
	}

	labels, ok := constants.PresetCatalogs[catalog]
	if !ok {
		return fmt.Errorf("%s: unknown catalog %q", op, catalog)
	}

	options := make([]storage.Option, 0, len(labels))
	for _, label := range labels {
		options = append(options, storage.Option{
			ID:    storage.NewID(),
			Label: label,
			Price: 0,
		})
	}
	field.Options = options

	return nil
}

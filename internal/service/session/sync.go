package session

import (
	"strings"

	"checkmaster/internal/constants"
	"checkmaster/internal/storage"
)

// SetCategory records the vehicle category. Changing category clears brand
// and model, which must not persist across an incompatible category.
func (s *Session) SetCategory(category string) {
	if category != s.side.Category {
		s.side = SideState{Category: category}
	}
	s.syncGuided()
}

// SetBrand records the brand and clears the model.
func (s *Session) SetBrand(brand string) {
	if brand != s.side.Brand {
		s.side.Brand = brand
		s.side.Model = ""
	}
	s.syncGuided()
}

func (s *Session) SetModel(model string) {
	s.side.Model = model
	s.syncGuided()
}

func (s *Session) syncGuided() {
	for fieldID, value := range Project(s.template, s.values, s.side) {
		s.values[fieldID] = value
	}
}

// Project computes the run values the guided selector derives from the
// side-selection state. It is a pure function of its inputs, idempotent
// and order-independent over fields, and returns only entries that differ
// from what the store already holds, so callers apply no redundant
// updates. Fields with no matching option are left untouched, never
// cleared; when several options match, the first in declared order wins.
func Project(template *storage.Template, values map[string]storage.Value, side SideState) map[string]storage.Value {
	changes := make(map[string]storage.Value)

	combined := joinVehicle(side.Brand, side.Model)

	for i := range template.Fields {
		field := &template.Fields[i]

		switch field.Type {
		case storage.FieldRecognizedVehicle:
			if combined != "" && values[field.ID].AsText() != combined {
				changes[field.ID] = storage.TextValue(combined)
			}

		case storage.FieldSelect, storage.FieldSelectSimple:
			label := strings.ToLower(field.Label)

			if side.Category != "" && containsAny(label, constants.CategoryLabelHints) {
				if opt := matchOptionContains(field.Options, side.Category); opt != nil {
					if values[field.ID].AsOption() != opt.ID {
						changes[field.ID] = storage.OptionValue(opt.ID)
					}
				}
			}

			if side.Brand != "" && containsAny(label, constants.BrandLabelHints) {
				if opt := matchOptionEqual(field.Options, side.Brand); opt != nil {
					if values[field.ID].AsOption() != opt.ID {
						changes[field.ID] = storage.OptionValue(opt.ID)
					}
				}
			}
		}
	}

	return changes
}

func joinVehicle(brand, model string) string {
	parts := make([]string, 0, 2)
	if brand != "" {
		parts = append(parts, brand)
	}
	if model != "" {
		parts = append(parts, model)
	}
	return strings.Join(parts, " ")
}

func containsAny(label string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(label, hint) {
			return true
		}
	}
	return false
}

func matchOptionContains(options []storage.Option, want string) *storage.Option {
	want = strings.ToLower(want)
	for i := range options {
		if strings.Contains(strings.ToLower(options[i].Label), want) {
			return &options[i]
		}
	}
	return nil
}

func matchOptionEqual(options []storage.Option, want string) *storage.Option {
	for i := range options {
		if strings.EqualFold(options[i].Label, want) {
			return &options[i]
		}
	}
	return nil
}

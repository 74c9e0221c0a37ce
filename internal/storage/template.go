package storage

import (
	"fmt"

	"github.com/google/uuid"
)

type FieldType string

const (
	FieldText              FieldType = "text"
	FieldNumber            FieldType = "number"
	FieldPrice             FieldType = "price"
	FieldDate              FieldType = "date"
	FieldBoolean           FieldType = "boolean"
	FieldSelect            FieldType = "select"
	FieldSelectSimple      FieldType = "select_simple"
	FieldMultiselect       FieldType = "multiselect"
	FieldPhoto             FieldType = "photo"
	FieldRecognizedPlate   FieldType = "recognized_plate"
	FieldRecognizedVehicle FieldType = "recognized_vehicle"
	FieldRecognizedSerial  FieldType = "recognized_serial"
)

// HasOptions reports whether the field type carries an option list.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldSelect, FieldSelectSimple, FieldMultiselect:
		return true
	}
	return false
}

// Priced reports whether option prices are meaningful for the field type.
// select_simple carries options but their prices are ignored.
func (t FieldType) Priced() bool {
	return t == FieldSelect || t == FieldMultiselect
}

type Template struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	IsFavorite  bool    `json:"is_favorite"`
	Fields      []Field `json:"fields"`
}

type Field struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []Option  `json:"options,omitempty"`
}

type Option struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// NewID issues an identifier for templates, fields, options and orders.
func NewID() string {
	return uuid.NewString()
}

// ValidateTemplate rejects templates whose field identifiers collide.
// Field order is significant and identifiers key the run-value store, so a
// duplicate would make values ambiguous.
func ValidateTemplate(t *Template) error {
	seen := make(map[string]struct{}, len(t.Fields))
	for i := range t.Fields {
		id := t.Fields[i].ID
		if id == "" {
			return fmt.Errorf("field %d has no identifier", i)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate field identifier %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// FieldByID returns the field with the given identifier, or nil.
func (t *Template) FieldByID(id string) *Field {
	for i := range t.Fields {
		if t.Fields[i].ID == id {
			return &t.Fields[i]
		}
	}
	return nil
}

// OptionByID returns the option with the given identifier, or nil.
func (f *Field) OptionByID(id string) *Option {
	for i := range f.Options {
		if f.Options[i].ID == id {
			return &f.Options[i]
		}
	}
	return nil
}

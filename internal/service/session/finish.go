package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tiendc/go-deepcopy"

	"checkmaster/internal/storage"
)

// ErrEmptyClientName blocks order completion: an order without a client
// cannot be billed and must not be coerced into an anonymous one.
var ErrEmptyClientName = errors.New("client name is required")

type OrderSaver interface {
	SaveOrder(ctx context.Context, order *storage.Order) error
}

// Finish freezes the run into an immutable order, hands it to storage and
// tears the session down. Every template field appears in the snapshot,
// filled or not, so the order always has the template's field cardinality.
// On any error the run state is kept so the session can continue.
func (s *Session) Finish(ctx context.Context, clientName string, saver OrderSaver) (*storage.Order, error) {
	const op = "session.Finish"

	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyClientName)
	}

	fields := make([]storage.OrderField, 0, len(s.template.Fields))
	for i := range s.template.Fields {
		var snapshot storage.Field
		if err := deepcopy.Copy(&snapshot, &s.template.Fields[i]); err != nil {
			return nil, fmt.Errorf("%s: snapshot field: %w", op, err)
		}
		fields = append(fields, storage.OrderField{
			Field: snapshot,
			Value: s.values[snapshot.ID],
		})
	}

	order := &storage.Order{
		ID:           storage.NewID(),
		TemplateID:   s.template.ID,
		TemplateName: s.template.Name,
		ClientName:   clientName,
		Vehicle:      s.vehicle(),
		Fields:       fields,
		TotalValue:   Total(s.template, s.values),
		Status:       storage.StatusCompleted,
		Date:         time.Now(),
	}

	if err := saver.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Session over: reset the run-value store and the guided selector.
	s.values = make(map[string]storage.Value)
	s.side = SideState{}

	return order, nil
}

// vehicle assembles the descriptor, preferring explicit field values and
// falling back to the side-selection state where the field is empty.
func (s *Session) vehicle() storage.Vehicle {
	vehicle := storage.Vehicle{
		Brand:   s.side.Brand,
		Model:   s.side.Model,
		Serials: []string{},
	}

	for i := range s.template.Fields {
		field := &s.template.Fields[i]

		switch field.Type {
		case storage.FieldRecognizedPlate:
			if vehicle.Plate == "" {
				vehicle.Plate = s.values[field.ID].AsText()
			}

		case storage.FieldRecognizedVehicle:
			if text := s.values[field.ID].AsText(); text != "" {
				vehicle.Model = text
			}

		case storage.FieldRecognizedSerial:
			if text := s.values[field.ID].AsText(); text != "" {
				vehicle.Serials = append(vehicle.Serials, text)
			}
		}
	}

	return vehicle
}

// Recognition is the structured guess an image scan produced. Every member
// is optional; zero members simply change nothing.
type Recognition struct {
	Plate   string   `json:"plate"`
	Brand   string   `json:"brand"`
	Model   string   `json:"model"`
	Serials []string `json:"serials"`
}

// ApplyRecognition writes a recognition result into the field it was
// requested for. A result arriving after the field was removed is a no-op,
// not an error: the scan may resolve long after the user moved on.
func (s *Session) ApplyRecognition(fieldID string, rec Recognition) {
	field := s.template.FieldByID(fieldID)
	if field == nil {
		return
	}

	switch field.Type {
	case storage.FieldRecognizedPlate:
		if rec.Plate != "" {
			s.values[fieldID] = storage.TextValue(rec.Plate)
		}

	case storage.FieldRecognizedVehicle:
		if combined := joinVehicle(rec.Brand, rec.Model); combined != "" {
			s.values[fieldID] = storage.TextValue(combined)
		}
		// The guess also drives the guided selector.
		s.side.Brand = rec.Brand
		s.side.Model = rec.Model
		s.syncGuided()

	case storage.FieldRecognizedSerial:
		if len(rec.Serials) > 0 && rec.Serials[0] != "" {
			s.values[fieldID] = storage.TextValue(rec.Serials[0])
		}
	}
}

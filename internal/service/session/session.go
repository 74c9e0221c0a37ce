package session

import (
	"fmt"
	"time"

	"github.com/tiendc/go-deepcopy"

	"checkmaster/internal/storage"
)

type Mode string

const (
	ModeEdit Mode = "edit"
	ModeRun  Mode = "run"
)

// SideState is the guided vehicle selector's own selection, kept outside
// the run-value store. It only exists to drive the synchronizer.
type SideState struct {
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
}

// Session owns all mutable state of one template edit or one inspection
// run: the working copy of the template, the run-value store and the
// side-selection state. It is constructed by StartEdit or StartRun and
// torn down by saving, finishing or abandoning it. Nothing in here is
// safe for concurrent use; a session belongs to exactly one caller.
type Session struct {
	mode     Mode
	template *storage.Template
	values   map[string]storage.Value
	side     SideState
}

// StartEdit opens a template for structural editing on a deep copy, so the
// saved template and the in-edit version never alias.
func StartEdit(template *storage.Template) (*Session, error) {
	const op = "session.StartEdit"

	clone, err := cloneTemplate(template)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Session{
		mode:     ModeEdit,
		template: clone,
		values:   make(map[string]storage.Value),
	}, nil
}

// StartRun begins an inspection run against a deep copy of the template
// with an empty run-value store and cleared side-selection state.
func StartRun(template *storage.Template) (*Session, error) {
	const op = "session.StartRun"

	clone, err := cloneTemplate(template)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Session{
		mode:     ModeRun,
		template: clone,
		values:   make(map[string]storage.Value),
	}, nil
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Template exposes the session's working copy.
func (s *Session) Template() *storage.Template {
	return s.template
}

func (s *Session) Side() SideState {
	return s.side
}

// SetValue upserts a run value. The store is type-agnostic: no shape check
// happens here beyond dropping keys that do not belong to any field of the
// active template, which also makes late recognition results for removed
// fields a harmless no-op.
func (s *Session) SetValue(fieldID string, value storage.Value) bool {
	if s.template.FieldByID(fieldID) == nil {
		return false
	}
	s.values[fieldID] = value
	return true
}

// Value returns the stored value and whether one exists. Absence is
// distinct from an explicit empty or false value.
func (s *Session) Value(fieldID string) (storage.Value, bool) {
	v, ok := s.values[fieldID]
	return v, ok
}

// SetNow stamps a date field with the current local time, minute precision.
func (s *Session) SetNow(fieldID string, now time.Time) bool {
	field := s.template.FieldByID(fieldID)
	if field == nil || field.Type != storage.FieldDate {
		return false
	}
	s.values[fieldID] = storage.TextValue(now.Format("2006-01-02T15:04"))
	return true
}

// Total prices the current run state.
func (s *Session) Total() float64 {
	return Total(s.template, s.values)
}

// Duplicate copies a template under a fresh identifier. The copy starts
// out non-favorite, like any new template.
func Duplicate(template *storage.Template) (*storage.Template, error) {
	const op = "session.Duplicate"

	clone, err := cloneTemplate(template)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	clone.ID = storage.NewID()
	clone.Name = template.Name + " (Cópia)"
	clone.IsFavorite = false

	return clone, nil
}

func cloneTemplate(template *storage.Template) (*storage.Template, error) {
	clone := &storage.Template{}
	if err := deepcopy.Copy(clone, template); err != nil {
		return nil, fmt.Errorf("deep copy template: %w", err)
	}
	return clone, nil
}

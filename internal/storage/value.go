package storage

type ValueKind string

const (
	ValueText    ValueKind = "text"
	ValueFlag    ValueKind = "flag"
	ValueOption  ValueKind = "option"
	ValueOptions ValueKind = "options"
	ValueImage   ValueKind = "image"
)

// Value is the tagged union stored for one field during an inspection run.
// Text covers text, number-as-string, date and recognized field types; Flag
// covers boolean; Option and Options carry option identifiers for the
// choice types; Image is a reference to a captured photo.
type Value struct {
	Kind    ValueKind `json:"kind"`
	Text    string    `json:"text,omitempty"`
	Flag    bool      `json:"flag,omitempty"`
	Option  string    `json:"option,omitempty"`
	Options []string  `json:"options,omitempty"`
	Image   string    `json:"image,omitempty"`
}

func TextValue(s string) Value        { return Value{Kind: ValueText, Text: s} }
func FlagValue(b bool) Value          { return Value{Kind: ValueFlag, Flag: b} }
func OptionValue(id string) Value     { return Value{Kind: ValueOption, Option: id} }
func OptionsValue(ids []string) Value { return Value{Kind: ValueOptions, Options: ids} }
func ImageValue(ref string) Value     { return Value{Kind: ValueImage, Image: ref} }

// AsText returns the stored text, or "" for any other kind.
func (v Value) AsText() string {
	if v.Kind != ValueText {
		return ""
	}
	return v.Text
}

// AsOption returns the selected option identifier, or "" for any other kind.
func (v Value) AsOption() string {
	if v.Kind != ValueOption {
		return ""
	}
	return v.Option
}

// AsOptions returns the selected option identifiers, or nil for any other kind.
func (v Value) AsOptions() []string {
	if v.Kind != ValueOptions {
		return nil
	}
	return v.Options
}

// HasOption reports whether the option identifier is in the selected set.
func (v Value) HasOption(id string) bool {
	for _, sel := range v.AsOptions() {
		if sel == id {
			return true
		}
	}
	return false
}

// IsZero reports whether the value is the explicit empty value. A zero
// Value is what order snapshots carry for fields never filled in.
func (v Value) IsZero() bool {
	return v.Kind == ""
}

package session

import (
	"strconv"

	"checkmaster/internal/storage"
)

// Total folds the run values into a monetary amount, walking fields in
// template order so the summation is reproducible. Only price, select and
// multiselect fields contribute; a dangling option reference is not an
// error, it degrades to 0.
func Total(template *storage.Template, values map[string]storage.Value) float64 {
	var total float64

	for i := range template.Fields {
		field := &template.Fields[i]

		switch field.Type {
		case storage.FieldPrice:
			total += parseAmount(values[field.ID].AsText())

		case storage.FieldSelect:
			if opt := field.OptionByID(values[field.ID].AsOption()); opt != nil {
				total += opt.Price
			}

		case storage.FieldMultiselect:
			for _, selected := range values[field.ID].AsOptions() {
				if opt := field.OptionByID(selected); opt != nil {
					total += opt.Price
				}
			}
		}
	}

	return total
}

// parseAmount reads a price field's text. Totals are never negative, so
// negative amounts degrade to 0 like any other unusable input.
func parseAmount(raw string) float64 {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

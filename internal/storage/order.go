package storage

import "time"

const StatusCompleted = "completed"

// Order is the immutable record of one finished inspection run. The field
// list is a value-annotated copy of the template's fields as they stood at
// completion time, so later template edits never reach into history.
type Order struct {
	ID           string       `json:"id"`
	TemplateID   string       `json:"template_id"`
	TemplateName string       `json:"template_name"`
	ClientName   string       `json:"client_name"`
	Vehicle      Vehicle      `json:"vehicle"`
	Fields       []OrderField `json:"fields"`
	TotalValue   float64      `json:"total_value"`
	Status       string       `json:"status"`
	Date         time.Time    `json:"date"`
}

type OrderField struct {
	Field
	Value Value `json:"value"`
}

type Vehicle struct {
	Plate   string   `json:"plate"`
	Brand   string   `json:"brand"`
	Model   string   `json:"model"`
	Serials []string `json:"serials"`
}

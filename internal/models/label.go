package models

// Label represents a row of the labels table.
type Label struct {
	LabelID   string `db:"label_id"`
	Name      string `db:"name"`
	IsDefault bool   `db:"is_default"`
}

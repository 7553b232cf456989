package domain

// Label represents a named category for financial items.
type Label struct {
	LabelID   string `json:"labelID"`   // Primary Key (UUID)
	Name      string `json:"name"`      // unique across all labels, case-sensitive
	IsDefault bool   `json:"isDefault"` // informational flag, no cascading effect
}

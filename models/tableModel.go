package models

// Table is part of the fixed floor layout created at startup; it is never
// mutated afterwards.
type Table struct {
	Table_id int    `json:"table_id"`
	Name     string `json:"name"`
}

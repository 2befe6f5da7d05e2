package store

import (
	"fmt"

	"gastro-pos/models"
)

// TableStore is the fixed floor layout, populated once at startup and read
// only from then on, so it needs no locking.
type TableStore struct {
	tables []models.Table
}

// NewTableStore creates tables "Mesa 1".."Mesa N".
func NewTableStore(count int) *TableStore {
	tables := make([]models.Table, 0, count)
	for i := 1; i <= count; i++ {
		tables = append(tables, models.Table{
			Table_id: i,
			Name:     fmt.Sprintf("Mesa %d", i),
		})
	}
	return &TableStore{tables: tables}
}

func (s *TableStore) List() []models.Table {
	tables := make([]models.Table, len(s.tables))
	copy(tables, s.tables)
	return tables
}

func (s *TableStore) Get(tableID int) (models.Table, bool) {
	for _, table := range s.tables {
		if table.Table_id == tableID {
			return table, true
		}
	}
	return models.Table{}, false
}

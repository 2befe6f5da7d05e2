package helpers

import (
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NextID returns the current millisecond timestamp, bumped past the previous
// value so two records created in the same millisecond never share an id.
func NextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

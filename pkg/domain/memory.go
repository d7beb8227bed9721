package domain

import "time"

// MemoryItem is one entry in the console agents' shared memory log.
type MemoryItem struct {
	ID        MemoryID  `json:"-"`
	Timestamp time.Time `json:"timestamp"`
	Agent     string    `json:"agent"`
	Goal      string    `json:"goal"`
	Result    string    `json:"result"`
	Tags      []string  `json:"tags"`
}

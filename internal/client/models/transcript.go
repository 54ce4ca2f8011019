package models

import (
	"sort"
	"time"
)

// Role of a transcript record author.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r ChatRole) Valid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

// TranscriptRecord is one chat message kept in the local transcript.
// OwnerID is assigned by the store on write.
type TranscriptRecord struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SortByID orders records chronologically by their id.
func SortByID(records []TranscriptRecord) {
	sort.SliceStable(records, func(i, j int) bool { return records[i].ID < records[j].ID })
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}

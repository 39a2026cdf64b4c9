package flow

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Bot is a stored flow definition.
type Bot struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspaceId"`
	Name        string     `json:"name"`
	Groups      []Group    `json:"groups"`
	Events      []Event    `json:"events"`
	Variables   []Variable `json:"variables"`
	IsArchived  bool       `json:"isArchived,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Group is a titled sequence of blocks. Blocks are kept as raw JSON; the
// bridge never executes them.
type Group struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Blocks []json.RawMessage `json:"blocks"`
}

// Event is a flow entry point.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

const EventStart = "start"

// NewBot returns an empty bot with a single start event.
func NewBot(workspaceID, name string, now time.Time) Bot {
	return Bot{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        name,
		Groups:      []Group{},
		Events:      []Event{{ID: uuid.NewString(), Type: EventStart}},
		Variables:   []Variable{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// StoreEventType returns the event type published for a mutation, e.g. "users.created".
func StoreEventType(kind, action string) string {
	return fmt.Sprintf("%s.%s", kind, action)
}

type StoreChangedEvent struct {
	BaseEvent
	Kind     string `json:"kind"`
	Action   string `json:"action"`
	EntityID int64  `json:"entity_id"`
	Revision uint64 `json:"revision"`
}

func NewStoreChangedEvent(kind, action string, entityID int64, revision uint64) *StoreChangedEvent {
	return &StoreChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      StoreEventType(kind, action),
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"kind":      kind,
				"action":    action,
				"entity_id": entityID,
				"revision":  revision,
			},
		},
		Kind:     kind,
		Action:   action,
		EntityID: entityID,
		Revision: revision,
	}
}

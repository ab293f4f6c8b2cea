package entity

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventPostingCreated EventType = "posting.created"
	EventPostingUpdated EventType = "posting.updated"
	EventPostingDeleted EventType = "posting.deleted"
	EventVideoCreated   EventType = "video.created"
	EventVideoUpdated   EventType = "video.updated"
	EventVideoDeleted   EventType = "video.deleted"
	EventPetCreated     EventType = "pet.created"
	EventPetUpdated     EventType = "pet.updated"
	EventPetDeleted     EventType = "pet.deleted"
	EventUserCreated    EventType = "user.created"
)

// Event announces a committed change to a record.
type Event struct {
	Type       EventType `json:"type"`
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id,omitempty"`
	MediaKeys  []string  `json:"media_keys,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e Event) Marshal() (string, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func UnmarshalEvent(body string) (Event, error) {
	var e Event
	err := json.Unmarshal([]byte(body), &e)

	return e, err
}

package events

import "time"

const RegistryCompanyUpdatedTopic = "registry.company.updated"

// RegistryCompanyUpdatedEvent is published by the ingestion pipeline after
// it rewrites a company record from the authority feed.
type RegistryCompanyUpdatedEvent struct {
	EventType  string    `json:"event_type"`
	CUI        int64     `json:"cui"`
	OccurredAt time.Time `json:"occurred_at"`
}

package domain

import "time"

// ModelInfo describes a model advertised by the remote endpoint.
// vLLM deployments extend the standard listing with context length and
// ownership metadata, both of which the availability report surfaces.
type ModelInfo struct {
	MaxContextLength *int64
	Created          *time.Time
	ID               string
	OwnedBy          string
}

// Usage is the token accounting returned with a completion
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Completion is the distilled result of a single chat completion round-trip
type Completion struct {
	Model   string
	Content string
	Usage   Usage
}

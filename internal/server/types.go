package server

import "github.com/zacharylandes/fizzbit-sub000/models"

// GenerateRequest is the payload for POST /api/ideas/generate
type GenerateRequest struct {
	Subject string  `json:"subject"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Count   int     `json:"count"`
	Source  string  `json:"source"`
	// SourceContent carries the originating input alongside the subject (an
	// image description or voice transcript produced client-side).
	SourceContent string `json:"sourceContent,omitempty"`
}

// GenerateResponse is the response for POST /api/ideas/generate
type GenerateResponse struct {
	Ideas []models.Idea `json:"ideas"`
	// Weights echoes the blend the batch was generated under.
	Weights WeightsPayload `json:"weights"`
}

// WeightsPayload is the normalized blend sent back to clients.
type WeightsPayload struct {
	Wild       float64 `json:"wild"`
	Actionable float64 `json:"actionable"`
	Deep       float64 `json:"deep"`
}

// ExploreRequest is the payload for POST /api/ideas/{id}/explore
type ExploreRequest struct {
	Count int `json:"count"`
}

// ExploreResponse is the response for POST /api/ideas/{id}/explore
type ExploreResponse struct {
	Parent models.Idea   `json:"parent"`
	Ideas  []models.Idea `json:"ideas"`
}

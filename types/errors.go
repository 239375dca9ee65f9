/*
Copyright © 2025 Zachary Landes
*/
package types

import "errors"

var (
	// ErrIdeaNotFound is returned when an idea lookup by ID fails.
	ErrIdeaNotFound = errors.New("idea not found")
	// ErrNoProvider is returned when no LLM provider is configured.
	ErrNoProvider = errors.New("no LLM provider configured")
	// ErrEmptyBatch is returned by a provider when the model returned no usable ideas.
	// Callers treat this as "zero cards this round", never as fatal.
	ErrEmptyBatch = errors.New("generation returned no ideas")
)

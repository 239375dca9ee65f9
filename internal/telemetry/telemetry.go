// Package telemetry sends anonymous, opt-in usage events. When disabled (the
// default) every call is a no-op.
package telemetry

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/posthog/posthog-go"
)

const (
	EventIdeaGenerated = "idea_generated"
	EventIdeaSaved     = "idea_saved"
	EventIdeaExplored  = "idea_explored"
	EventIdeaSketched  = "idea_sketched"
)

// Client wraps a PostHog client behind the opt-in switch.
type Client struct {
	ph         posthog.Client
	distinctID string
	mu         sync.Mutex
}

// New builds a telemetry client. Returns a no-op client when disabled or when
// no API key is configured; telemetry must never break the app.
func New(enabled bool, apiKey, host, configDir string) *Client {
	if !enabled || apiKey == "" {
		return &Client{}
	}
	cfg := posthog.Config{}
	if host != "" {
		cfg.Endpoint = host
	}
	ph, err := posthog.NewWithConfig(apiKey, cfg)
	if err != nil {
		return &Client{}
	}
	return &Client{ph: ph, distinctID: loadDistinctID(configDir)}
}

// Capture records an event with optional properties.
func (c *Client) Capture(event string, props map[string]interface{}) {
	if c == nil || c.ph == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	properties := posthog.NewProperties()
	for k, v := range props {
		properties.Set(k, v)
	}
	_ = c.ph.Enqueue(posthog.Capture{
		DistinctId: c.distinctID,
		Event:      event,
		Properties: properties,
	})
}

// Enabled reports whether events are actually being sent.
func (c *Client) Enabled() bool { return c != nil && c.ph != nil }

// Close flushes pending events.
func (c *Client) Close() error {
	if c == nil || c.ph == nil {
		return nil
	}
	return c.ph.Close()
}

// loadDistinctID returns a stable random install ID, creating one on first
// use. The ID carries no user information.
func loadDistinctID(configDir string) string {
	idPath := filepath.Join(configDir, "telemetry_id")
	if data, err := os.ReadFile(idPath); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "anonymous"
	}
	id := hex.EncodeToString(buf)
	if err := os.MkdirAll(configDir, 0o755); err == nil {
		_ = os.WriteFile(idPath, []byte(id), 0o600)
	}
	return id
}

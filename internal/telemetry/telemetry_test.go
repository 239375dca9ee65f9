package telemetry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDisabledClientIsNoOp(t *testing.T) {
	c := New(false, "phc_key", "", t.TempDir())
	if c.Enabled() {
		t.Error("disabled client should not be enabled")
	}
	// None of these should panic or touch the network.
	c.Capture(EventIdeaGenerated, map[string]interface{}{"count": 5})
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestEnabledWithoutKeyIsNoOp(t *testing.T) {
	c := New(true, "", "", t.TempDir())
	if c.Enabled() {
		t.Error("client without an API key should be a no-op")
	}
}

func TestNilClientIsSafe(t *testing.T) {
	var c *Client
	c.Capture(EventIdeaSaved, nil)
	if c.Enabled() {
		t.Error("nil client should report disabled")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() on nil client error = %v", err)
	}
}

func TestDistinctIDIsStable(t *testing.T) {
	dir := t.TempDir()
	first := loadDistinctID(dir)
	if first == "" {
		t.Fatal("expected a distinct ID")
	}
	second := loadDistinctID(dir)
	if first != second {
		t.Errorf("distinct ID changed between loads: %q vs %q", first, second)
	}
	if _, err := os.Stat(filepath.Join(dir, "telemetry_id")); err != nil {
		t.Errorf("telemetry_id file not written: %v", err)
	}
}

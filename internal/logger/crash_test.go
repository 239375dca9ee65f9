package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormatCrashLog(t *testing.T) {
	log := CrashLog{
		Timestamp:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Version:     "0.1.0",
		Command:     "swipe",
		PanicValue:  "runtime error: index out of range",
		StackTrace:  "goroutine 1 [running]:\nmain.main()",
		LastSubject: "pottery",
		LastPrompt:  "Generate 5 creative ideas",
		GoVersion:   "go1.24",
		OS:          "linux",
		Arch:        "amd64",
	}

	out := formatCrashLog(log)
	for _, want := range []string{
		"FIZZBIT CRASH LOG",
		"Command:   swipe",
		"index out of range",
		"LAST SUBJECT",
		"pottery",
		"LAST LLM PROMPT",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("formatted log missing %q", want)
		}
	}
}

func TestTruncateForLog(t *testing.T) {
	long := strings.Repeat("x", 600)
	got := SetLastSubjectAndGet(long)
	if len(got) > 520 {
		t.Errorf("subject not truncated: %d chars", len(got))
	}
	if !strings.HasSuffix(got, "[truncated]") {
		t.Errorf("expected truncation marker, got tail %q", got[len(got)-20:])
	}
}

// SetLastSubjectAndGet is a test hook around the context setter.
func SetLastSubjectAndGet(subject string) string {
	SetLastSubject(subject)
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()
	return globalContext.lastSubject
}

func TestCleanOldCrashLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < MaxCrashLogs+3; i++ {
		name := filepath.Join(dir, fmt.Sprintf("crash_20250601_%06d.log", i))
		if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := cleanOldCrashLogs(dir); err != nil {
		t.Fatalf("cleanOldCrashLogs() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != MaxCrashLogs {
		t.Errorf("kept %d logs, want %d", len(entries), MaxCrashLogs)
	}
	// The oldest were removed.
	if entries[0].Name() == "crash_20250601_000000.log" {
		t.Error("oldest log should have been removed")
	}
}

func TestCleanMissingDirIsNoError(t *testing.T) {
	if err := cleanOldCrashLogs(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Errorf("missing dir should be fine, got %v", err)
	}
}

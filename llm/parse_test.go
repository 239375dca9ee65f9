package llm

import (
	"errors"
	"testing"

	"github.com/zacharylandes/fizzbit-sub000/types"
)

func TestParseIdeaBatch(t *testing.T) {
	content := `{"ideas":[{"title":"Raku night","description":"Fire pottery outdoors after dark.","hook":"The glow does half the work."},{"title":"Blindfold throw","description":"Throw a pot by feel alone."}]}`

	ideas, err := ParseIdeaBatch(content)
	if err != nil {
		t.Fatalf("ParseIdeaBatch() error = %v", err)
	}
	if len(ideas) != 2 {
		t.Fatalf("got %d ideas, want 2", len(ideas))
	}
	if ideas[0].Title != "Raku night" || ideas[0].Hook == "" {
		t.Errorf("first idea parsed wrong: %+v", ideas[0])
	}
}

func TestParseIdeaBatchStripsCodeFence(t *testing.T) {
	content := "```json\n{\"ideas\":[{\"title\":\"Fenced\",\"description\":\"d\"}]}\n```"
	ideas, err := ParseIdeaBatch(content)
	if err != nil {
		t.Fatalf("ParseIdeaBatch() error = %v", err)
	}
	if len(ideas) != 1 || ideas[0].Title != "Fenced" {
		t.Errorf("fenced batch parsed wrong: %+v", ideas)
	}
}

func TestParseIdeaBatchSkipsUntitled(t *testing.T) {
	content := `{"ideas":[{"title":"  ","description":"no title"},{"title":"Kept","description":"d"}]}`
	ideas, err := ParseIdeaBatch(content)
	if err != nil {
		t.Fatalf("ParseIdeaBatch() error = %v", err)
	}
	if len(ideas) != 1 || ideas[0].Title != "Kept" {
		t.Errorf("untitled entries should be dropped: %+v", ideas)
	}
}

func TestParseIdeaBatchEmpty(t *testing.T) {
	_, err := ParseIdeaBatch(`{"ideas":[]}`)
	if !errors.Is(err, types.ErrEmptyBatch) {
		t.Errorf("empty list should return ErrEmptyBatch, got %v", err)
	}
}

func TestParseIdeaBatchMalformed(t *testing.T) {
	if _, err := ParseIdeaBatch("here are some ideas!"); err == nil {
		t.Error("prose reply should fail to parse")
	}
}

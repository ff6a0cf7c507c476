package tokenizer

import "testing"

type testCounter struct{}

func (testCounter) Name() string { return "stub" }

func (testCounter) CountString(input string) (int, error) { return len([]rune(input)), nil }

func TestCountTextCountsRunes(t *testing.T) {
	result, err := CountText(testCounter{}, "├── a")
	if err != nil {
		t.Fatalf("CountText error: %v", err)
	}
	if !result.Counted {
		t.Fatalf("expected counted result")
	}
	if result.Tokens != len([]rune("├── a")) {
		t.Fatalf("expected %d tokens, got %d", len([]rune("├── a")), result.Tokens)
	}
}

func TestCountTextSkipsInvalidUTF8(t *testing.T) {
	result, err := CountText(testCounter{}, string([]byte{0xff, 0xfe}))
	if err != nil {
		t.Fatalf("CountText error: %v", err)
	}
	if result.Counted {
		t.Fatalf("expected invalid UTF-8 to be skipped")
	}
}

func TestCountTextRejectsNilCounter(t *testing.T) {
	if _, err := CountText(nil, "text"); err == nil {
		t.Fatalf("expected error for nil counter")
	}
}

func TestNewCounterDefault(t *testing.T) {
	counter, model, err := NewCounter(Config{Model: "gpt-4o"})
	if err != nil {
		t.Skipf("tokenizer encoding unavailable: %v", err)
	}
	if counter == nil {
		t.Fatalf("expected non-nil counter")
	}
	if model != "gpt-4o" {
		t.Fatalf("expected model gpt-4o, got %q", model)
	}
	tokens, err := counter.CountString(".\n└── README.md\n")
	if err != nil {
		t.Fatalf("CountString error: %v", err)
	}
	if tokens <= 0 {
		t.Fatalf("expected positive token count, got %d", tokens)
	}
}

func TestNewCounterFallsBackForUnknownModel(t *testing.T) {
	counter, model, err := NewCounter(Config{Model: "claude-3-5-sonnet"})
	if err != nil {
		t.Skipf("tokenizer encoding unavailable: %v", err)
	}
	if model != "cl100k_base" {
		t.Fatalf("expected fallback encoding name, got %q", model)
	}
	if counter.Name() != "cl100k_base" {
		t.Fatalf("expected counter name cl100k_base, got %q", counter.Name())
	}
}

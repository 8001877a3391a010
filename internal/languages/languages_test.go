package languages

import (
	"testing"
)

func TestDefault_Lookup(t *testing.T) {
	table := Default()

	tests := []struct {
		code  string
		model string
		tag   string
		name  string
	}{
		{"es", "Helsinki-NLP/opus-mt-en-es", "es_XX", "Spanish"},
		{"fr", "Helsinki-NLP/opus-mt-en-fr", "fr_XX", "French"},
		{"ja_XX", "facebook/mbart-large-50-many-to-many-mmt", "ja_XX", "Japanese"},
	}

	for _, tt := range tests {
		e, ok := table.Lookup(tt.code)
		if !ok {
			t.Fatalf("expected %q to be supported", tt.code)
		}
		if e.ModelID != tt.model {
			t.Errorf("%s: expected model %q, got %q", tt.code, tt.model, e.ModelID)
		}
		if e.ProviderTag != tt.tag {
			t.Errorf("%s: expected tag %q, got %q", tt.code, tt.tag, e.ProviderTag)
		}
		if e.Name != tt.name {
			t.Errorf("%s: expected name %q, got %q", tt.code, tt.name, e.Name)
		}
	}
}

func TestLookup_Unsupported(t *testing.T) {
	table := Default()

	for _, code := range []string{"", "de", "ES", "ja", " es"} {
		if _, ok := table.Lookup(code); ok {
			t.Errorf("expected %q to be unsupported", code)
		}
	}
}

func TestLookup_NilTable(t *testing.T) {
	var table *Table
	if _, ok := table.Lookup("es"); ok {
		t.Error("expected nil table to support nothing")
	}
	if table.Len() != 0 {
		t.Errorf("expected 0 entries, got %d", table.Len())
	}
}

func TestCodes_Sorted(t *testing.T) {
	codes := Default().Codes()
	want := []string{"es", "fr", "ja_XX"}
	if len(codes) != len(want) {
		t.Fatalf("expected %v, got %v", want, codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], codes[i])
		}
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	table := Default()

	entries := table.Entries()
	entries[0].ModelID = "mutated"

	e, _ := table.Lookup(entries[0].Code)
	if e.ModelID == "mutated" {
		t.Error("expected table to be unaffected by changes to Entries()")
	}

	codes := table.Codes()
	codes[0] = "mutated"
	if table.Codes()[0] == "mutated" {
		t.Error("expected table to be unaffected by changes to Codes()")
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	in := []Entry{{Code: "de", ModelID: "Helsinki-NLP/opus-mt-en-de"}}
	table, err := NewTable(in...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in[0].ModelID = "mutated"

	e, ok := table.Lookup("de")
	if !ok {
		t.Fatal("expected de to be supported")
	}
	if e.ModelID != "Helsinki-NLP/opus-mt-en-de" {
		t.Errorf("expected original model, got %q", e.ModelID)
	}
	if e.Name != "German" {
		t.Errorf("expected derived name 'German', got %q", e.Name)
	}
}

func TestNewTable_ExplicitFields(t *testing.T) {
	table, err := NewTable(Entry{Code: "zh", Name: "Chinese (Simplified)", ModelID: "m", ProviderTag: "zh_CN"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, _ := table.Lookup("zh")
	if e.Name != "Chinese (Simplified)" {
		t.Errorf("expected explicit name, got %q", e.Name)
	}
	if e.ProviderTag != "zh_CN" {
		t.Errorf("expected explicit tag, got %q", e.ProviderTag)
	}
}

func TestNewTable_Errors(t *testing.T) {
	if _, err := NewTable(Entry{ModelID: "m"}); err == nil {
		t.Error("expected error for missing code")
	}
	if _, err := NewTable(Entry{Code: "es"}); err == nil {
		t.Error("expected error for missing model")
	}
	if _, err := NewTable(Entry{Code: "es", ModelID: "a"}, Entry{Code: "es", ModelID: "b"}); err == nil {
		t.Error("expected error for duplicate code")
	}
}

func TestDisplayName_Unknown(t *testing.T) {
	if got := displayName("!!"); got != "!!" {
		t.Errorf("expected fallback to code, got %q", got)
	}
}

// Package languages holds the deployment-time mapping from the language
// codes the UI sends to the provider model that serves them.
package languages

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// SourceTag is the provider tag of the only supported source language.
const SourceTag = "en_XX"

// Entry maps one target language code to a provider model.
type Entry struct {
	Code        string `mapstructure:"code" json:"code"`
	Name        string `mapstructure:"name" json:"name"`
	ModelID     string `mapstructure:"model" json:"model"`
	ProviderTag string `mapstructure:"tag" json:"tag"`
}

var builtin = []Entry{
	{Code: "es", ModelID: "Helsinki-NLP/opus-mt-en-es"},
	{Code: "fr", ModelID: "Helsinki-NLP/opus-mt-en-fr"},
	{Code: "ja_XX", ModelID: "facebook/mbart-large-50-many-to-many-mmt"},
}

// Table is an immutable code to Entry lookup. The zero value is empty.
type Table struct {
	byCode map[string]Entry
	codes  []string
}

// Default returns the built-in table.
func Default() *Table {
	t, err := NewTable(builtin...)
	if err != nil {
		panic(fmt.Sprintf("languages: invalid built-in table: %v", err))
	}
	return t
}

// NewTable validates entries and builds a table from copies of them.
// Missing names and provider tags are derived from the code.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{byCode: make(map[string]Entry, len(entries))}
	for i, e := range entries {
		e.Code = strings.TrimSpace(e.Code)
		e.ModelID = strings.TrimSpace(e.ModelID)
		if e.Code == "" {
			return nil, fmt.Errorf("entry %d: code is required", i)
		}
		if e.ModelID == "" {
			return nil, fmt.Errorf("entry %q: model is required", e.Code)
		}
		if _, dup := t.byCode[e.Code]; dup {
			return nil, fmt.Errorf("entry %q: duplicate code", e.Code)
		}
		if e.ProviderTag == "" {
			e.ProviderTag = providerTag(e.Code)
		}
		if e.Name == "" {
			e.Name = displayName(e.Code)
		}
		t.byCode[e.Code] = e
		t.codes = append(t.codes, e.Code)
	}
	sort.Strings(t.codes)
	return t, nil
}

// Lookup returns the entry for code. Matching is exact.
func (t *Table) Lookup(code string) (Entry, bool) {
	if t == nil || code == "" {
		return Entry{}, false
	}
	e, ok := t.byCode[code]
	return e, ok
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.codes)
}

// Codes returns the supported codes in sorted order.
func (t *Table) Codes() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.codes...)
}

// Entries returns a copy of every entry, sorted by code.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.codes))
	for _, c := range t.codes {
		out = append(out, t.byCode[c])
	}
	return out
}

// baseCode strips any region or script suffix: "ja_XX" -> "ja".
func baseCode(code string) string {
	if i := strings.IndexAny(code, "_-"); i > 0 {
		return code[:i]
	}
	return code
}

// providerTag returns the mBART-50 style tag for code. Codes that already
// carry a suffix are used as-is.
func providerTag(code string) string {
	if strings.ContainsAny(code, "_-") {
		return strings.ReplaceAll(code, "-", "_")
	}
	return code + "_XX"
}

func displayName(code string) string {
	base, err := language.ParseBase(baseCode(code))
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(base)
	if name == "" {
		return code
	}
	return name
}

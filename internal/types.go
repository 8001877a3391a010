package internal

// TranslationRequest is the body the chat UI posts to the edge handler.
type TranslationRequest struct {
	Input    string `json:"input"`
	Language string `json:"language"`
}

// TranslationResponse is the envelope returned to the UI. Exactly one of
// the fields is set.
type TranslationResponse struct {
	TranslationText string `json:"translation_text,omitempty"`
	Error           string `json:"error,omitempty"`
}

// LanguageInfo is the public view of a supported language.
type LanguageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

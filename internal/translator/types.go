package translator

import (
	"context"
	"time"
)

// ServiceConfig holds the connection settings of a provider.
type ServiceConfig struct {
	APIKey  string        `mapstructure:"token" json:"-"`
	BaseURL string        `mapstructure:"base_url" json:"base_url"`
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Parameters are the generation options sent along with the input text.
type Parameters struct {
	SrcLang      string `json:"src_lang,omitempty"`
	TgtLang      string `json:"tgt_lang,omitempty"`
	MaxNewTokens int    `json:"max_new_tokens,omitempty"`
}

type TranslateRequest struct {
	Text       string     `json:"text"`
	Model      string     `json:"model"`
	Parameters Parameters `json:"parameters"`
}

type ServiceResult struct {
	ServiceName    string        `json:"service_name"`
	Model          string        `json:"model"`
	TranslatedText string        `json:"translated_text"`
	Latency        time.Duration `json:"latency"`
}

// TranslationService is a hosted machine-translation backend.
type TranslationService interface {
	Name() string
	Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error)
}

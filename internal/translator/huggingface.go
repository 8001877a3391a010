package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/valpere/transedge/internal/postprocess"
)

const (
	DefaultHuggingFaceBaseURL = "https://router.huggingface.co/hf-inference"
	DefaultTimeout            = 30 * time.Second

	// maxReplyBytes bounds how much of a provider reply is read.
	maxReplyBytes = 1 << 20
	// maxErrorSnippet bounds raw reply text kept in a ProviderError.
	maxErrorSnippet = 200
)

// HuggingFaceService calls the hosted inference API, addressing each
// model as {baseURL}/models/{model}.
type HuggingFaceService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewHuggingFaceService(cfg ServiceConfig) *HuggingFaceService {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultHuggingFaceBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HuggingFaceService{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HuggingFaceService) Name() string {
	return "huggingface"
}

type hfRequest struct {
	Inputs     string      `json:"inputs"`
	Parameters *Parameters `json:"parameters,omitempty"`
}

type hfReply struct {
	TranslationText *string         `json:"translation_text"`
	Error           json.RawMessage `json:"error"`
}

func (s *HuggingFaceService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	start := time.Now()

	if req.Model == "" {
		return nil, s.fail(0, "model is required", nil)
	}

	body := hfRequest{Inputs: req.Text}
	if req.Parameters != (Parameters{}) {
		params := req.Parameters
		body.Parameters = &params
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, s.fail(0, "failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/models/"+req.Model, bytes.NewReader(jsonData))
	if err != nil {
		return nil, s.fail(0, "failed to create request", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, s.fail(0, "request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, s.fail(resp.StatusCode, "failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, s.fail(resp.StatusCode, errorMessage(raw), nil)
	}

	text, err := parseReply(raw)
	if err != nil {
		return nil, s.fail(resp.StatusCode, "invalid response", err)
	}

	text = postprocess.Clean(text)
	if text == "" {
		return nil, s.fail(resp.StatusCode, "empty response", ErrEmptyTranslation)
	}

	return &ServiceResult{
		ServiceName:    s.Name(),
		Model:          req.Model,
		TranslatedText: text,
		Latency:        time.Since(start),
	}, nil
}

func (s *HuggingFaceService) fail(status int, msg string, cause error) *ProviderError {
	return &ProviderError{Service: s.Name(), Status: status, Message: msg, Cause: cause}
}

// parseReply accepts both {"translation_text": ...} and the list form
// [{"translation_text": ...}] served by the inference API.
func parseReply(raw []byte) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", ErrEmptyTranslation
	}

	var reply hfReply
	switch raw[0] {
	case '[':
		var items []hfReply
		if err := json.Unmarshal(raw, &items); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
		if len(items) == 0 {
			return "", ErrEmptyTranslation
		}
		reply = items[0]
	case '{':
		if err := json.Unmarshal(raw, &reply); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
	default:
		return "", fmt.Errorf("unexpected response: %s", snippet(raw))
	}

	if msg := errorText(reply.Error); msg != "" {
		return "", fmt.Errorf("provider error: %s", msg)
	}
	if reply.TranslationText == nil {
		return "", ErrEmptyTranslation
	}
	return *reply.TranslationText, nil
}

// errorMessage extracts the provider's error text from a failed reply.
func errorMessage(raw []byte) string {
	var reply hfReply
	if err := json.Unmarshal(raw, &reply); err == nil {
		if msg := errorText(reply.Error); msg != "" {
			return msg
		}
	}
	if s := snippet(raw); s != "" {
		return s
	}
	return "empty error response"
}

// errorText decodes an "error" field, which is a string or a list of strings.
func errorText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}
	return snippet(raw)
}

func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > maxErrorSnippet {
		s = s[:maxErrorSnippet] + "..."
	}
	return s
}

// Package service validates translation requests and routes them to the
// provider model configured for the target language.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/valpere/transedge/internal"
	"github.com/valpere/transedge/internal/languages"
	"github.com/valpere/transedge/internal/postprocess"
	"github.com/valpere/transedge/internal/translator"
)

const DefaultMaxNewTokens = 150

// Options are the parameter policy applied to every provider call.
type Options struct {
	SourceLang   string
	MaxNewTokens int
}

type TranslationService struct {
	languages    *languages.Table
	provider     translator.TranslationService
	sourceLang   string
	maxNewTokens int
}

// Translation is a successful result.
type Translation struct {
	Text     string
	Language string
	Model    string
	Latency  time.Duration
}

func NewTranslationService(table *languages.Table, provider translator.TranslationService, opts Options) (*TranslationService, error) {
	if table == nil || table.Len() == 0 {
		return nil, errors.New("language table is empty")
	}
	if provider == nil {
		return nil, errors.New("translation provider is required")
	}
	if opts.SourceLang == "" {
		opts.SourceLang = languages.SourceTag
	}
	if opts.MaxNewTokens <= 0 {
		opts.MaxNewTokens = DefaultMaxNewTokens
	}
	return &TranslationService{
		languages:    table,
		provider:     provider,
		sourceLang:   opts.SourceLang,
		maxNewTokens: opts.MaxNewTokens,
	}, nil
}

func (s *TranslationService) Languages() *languages.Table {
	return s.languages
}

// Translate validates req and makes exactly one provider call. Every
// supported language gets the same parameters: the fixed source tag, the
// entry's provider tag as target and the token cap.
func (s *TranslationService) Translate(ctx context.Context, req internal.TranslationRequest) (*Translation, error) {
	if postprocess.IsBlank(req.Input) {
		return nil, NewInvalidError(MsgInputRequired)
	}
	entry, ok := s.languages.Lookup(req.Language)
	if !ok {
		return nil, NewInvalidError(MsgUnsupportedLanguage)
	}

	res, err := s.provider.Translate(ctx, translator.TranslateRequest{
		Text:  postprocess.Input(req.Input),
		Model: entry.ModelID,
		Parameters: translator.Parameters{
			SrcLang:      s.sourceLang,
			TgtLang:      entry.ProviderTag,
			MaxNewTokens: s.maxNewTokens,
		},
	})
	if err != nil {
		return nil, NewUpstreamError(err)
	}
	if res == nil || postprocess.IsBlank(res.TranslatedText) {
		return nil, NewUpstreamError(translator.ErrEmptyTranslation)
	}

	return &Translation{
		Text:     postprocess.Clean(res.TranslatedText),
		Language: entry.Code,
		Model:    entry.ModelID,
		Latency:  res.Latency,
	}, nil
}

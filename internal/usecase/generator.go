package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-composer/internal/domain"
	"resume-composer/internal/model"
)

// Provider is the narrow contract to the generative backend: prompt text in,
// raw candidate text out. Implementations own transport concerns; the
// generator owns nothing but the single outbound call, so distinct requests
// can run concurrently with no coordination.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Builder turns a raw candidate into a validated resume. Satisfied by
// *model.Builder.
type Builder interface {
	Build(candidate map[string]interface{}, owner uuid.UUID, tpl domain.Template, prov model.Provenance) (*domain.Resume, error)
}

// Generator is the content generation adapter. It is stateless; a failed
// provider call or validation surfaces to the caller, which owns retry
// policy and timeouts (bound the context).
type Generator struct {
	provider Provider
	builder  Builder
}

func NewGenerator(provider Provider, builder Builder) *Generator {
	return &Generator{provider: provider, builder: builder}
}

// Generate asks the provider for a structured resume candidate and runs it
// through the model builder. The prompt text is embedded verbatim and
// retained on the resulting resume.
func (g *Generator) Generate(ctx context.Context, owner uuid.UUID, promptText string, tpl domain.Template) (*domain.Resume, error) {
	trimmed := strings.TrimSpace(promptText)
	if trimmed == "" {
		return nil, domain.NewInvalidInput(domain.FieldError{Field: "prompt", Message: "must not be empty"})
	}

	raw, err := g.provider.Complete(ctx, buildPrompt(trimmed))
	if err != nil {
		return nil, fmt.Errorf("provider: %w", err)
	}

	candidate, err := decodeCandidate(raw)
	if err != nil {
		return nil, domain.NewMalformedResponse(err)
	}

	return g.builder.Build(candidate, owner, tpl, model.Provenance{AIGenerated: true, AIPrompt: trimmed})
}

// decodeCandidate parses provider output as JSON. When the whole text does
// not parse it falls back to the outermost {...} window, which recovers
// payloads wrapped in code fences or stray prose.
func decodeCandidate(raw string) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err == nil {
		return m, nil
	}

	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &m); err == nil {
			return m, nil
		}
	}
	if json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("provider returned JSON that is not an object (%d bytes)", len(raw))
	}
	return nil, fmt.Errorf("provider returned non-JSON content (%d bytes)", len(raw))
}

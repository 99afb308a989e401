package llm

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/PabloGalante/recovery-agent/internal/domain"
)

func TestExtractGeminiText(t *testing.T) {
	t.Run("direct text", func(t *testing.T) {
		res := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: " Be gentle with yourself. "}}}},
			},
		}
		text, err := extractGeminiText(res)
		require.NoError(t, err)
		assert.Equal(t, "Be gentle with yourself.", text)
	})

	t.Run("falls through to later candidate", func(t *testing.T) {
		res := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: nil},
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "Morning: walk."}, {Text: " Evening: read."}}}},
			},
		}
		text, err := extractGeminiText(res)
		require.NoError(t, err)
		assert.Equal(t, "Morning: walk. Evening: read.", text)
	})

	t.Run("no text is a failure", func(t *testing.T) {
		for _, res := range []*genai.GenerateContentResponse{
			nil,
			{},
			{Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: ""}}}}}},
		} {
			_, err := extractGeminiText(res)
			assert.ErrorIs(t, err, domain.ErrEmptyResponse)
		}
	})
}

func TestExtractAnthropicText(t *testing.T) {
	msg := &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: "The truth is "},
			{Type: "text", Text: "you deserve better."},
		},
	}
	text, err := extractAnthropicText(msg)
	require.NoError(t, err)
	assert.Equal(t, "The truth is you deserve better.", text)

	_, err = extractAnthropicText(&anthropic.Message{})
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)

	_, err = extractAnthropicText(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

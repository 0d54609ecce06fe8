package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const summaryPrompt = `You are an assistant that writes meeting notes. Using the transcript below, write a DETAILED summary in the language the meeting was held in.

Requirements:
- Start with a one-sentence overview of what the meeting was about
- List every topic discussed, in the order it came up
- Record decisions, owners and action items explicitly
- Attribute important statements to the speaker who made them
- Use markdown: headings, bullet points, bold for key terms
- Finish with an "Open questions" section if anything was left unresolved

Transcript:
---
%s
---`

// ErrRateLimited marks a Gemini failure that should move on to the next key.
var ErrRateLimited = errors.New("rate limited")

type generateFunc func(ctx context.Context, key, prompt string) (string, error)

// Summarize sends the transcript to Gemini and returns a markdown document
// headed by title. Keys rotate on 429 / quota errors.
func (s *implSummarizer) Summarize(ctx context.Context, title, transcript string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("no API keys configured")
	}
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("empty transcript")
	}

	prompt := fmt.Sprintf(summaryPrompt, transcript)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		text, err := s.generate(ctx, s.apiKeys[s.currentKey], prompt)
		if err != nil {
			if errors.Is(err, ErrRateLimited) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", err
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			title,
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(text),
		)
		return md, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// callGemini performs one generation call with the given key.
func (s *implSummarizer) callGemini(ctx context.Context, key, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
			return "", fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

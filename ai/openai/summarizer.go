// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/scrapreform/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Summarizer implements ai.Summarizer using OpenAI-compatible chat APIs.
type Summarizer struct {
	client      llms.Model
	temperature float64
	backoff     ai.Backoff
	logger      *slog.Logger
}

// newSummarizer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSummarizer(config *ai.Config) (*Summarizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return newSummarizerWithModel(client, config), nil
}

func newSummarizerWithModel(client llms.Model, config *ai.Config) *Summarizer {
	return &Summarizer{
		client:      client,
		temperature: config.Temperature,
		backoff:     config.Backoff(),
		logger:      slog.Default().With("component", "openai-summarizer"),
	}
}

// NewSummarizer creates a new summarizer using the provided configuration.
//
// Returns ai.Summarizer interface to enforce abstraction.
func NewSummarizer(config *ai.Config) (ai.Summarizer, error) {
	return newSummarizer(config)
}

// Summarize asks the model for a structured legal analysis of the request content.
// Rate limits are retried with backoff; authentication failures are not.
func (s *Summarizer) Summarize(ctx context.Context, req ai.SummaryRequest) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildUserPrompt(req)),
			},
		},
	}

	var answer string
	err := s.backoff.Do(ctx, s.logger, func(attempt int) error {
		response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(s.temperature))
		if err != nil {
			err = classifyError(err)
			s.logger.Warn("failed to generate analysis", "attempt", attempt, "err", err)
			return err
		}
		if len(response.Choices) < 1 {
			return ai.ErrEmptyResponse
		}
		answer = strings.TrimSpace(response.Choices[0].Content)
		if answer == "" {
			return ai.ErrEmptyResponse
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("analysis generated", "keywords", len(req.Keywords), "chars", len(answer))
	return answer, nil
}

// classifyError wraps rate-limit and credential failures in the ai sentinels.
func classifyError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	mapped := err
	var llmErr *llms.Error
	if !errors.As(err, &llmErr) {
		mapped = openai.MapError(err)
	}
	switch {
	case llms.IsRateLimitError(mapped):
		return fmt.Errorf("%w: %w", ai.ErrRateLimited, err)
	case llms.IsAuthenticationError(mapped), llms.IsQuotaExceededError(mapped):
		return fmt.Errorf("%w: %w", ai.ErrUnauthorized, err)
	}
	return err
}

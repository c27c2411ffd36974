package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/madeindra/chongqing-story/internal/deepseek"
	"github.com/madeindra/chongqing-story/internal/model"
)

func GenerateStory(ctx context.Context, ai deepseek.Client, req model.StoryRequest) (json.RawMessage, error) {
	if ai == nil {
		return nil, fmt.Errorf("unsupported client")
	}

	storyPrompt, err := deepseek.GetStoryPrompt(req.Name, req.Location, req.Genre)
	if err != nil {
		return nil, fmt.Errorf("failed to build story prompt: %w", err)
	}

	messages := []deepseek.ChatMessage{
		{
			Role:    deepseek.ROLE_SYSTEM,
			Content: deepseek.GetSystemPrompt(),
		},
		{
			Role:    deepseek.ROLE_USER,
			Content: storyPrompt,
		},
	}

	return ai.Chat(ctx, messages)
}

// ErrorDetails prefers the provider's own error payload and falls back to the
// error description.
func ErrorDetails(err error) any {
	if err == nil {
		return nil
	}

	var upErr *deepseek.UpstreamError
	if errors.As(err, &upErr) {
		if details := upErr.Details(); details != nil {
			return details
		}
	}

	return err.Error()
}

package openai

import (
	"errors"
	"fmt"

	"github.com/adrianliechti/medlens/pkg/provider"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return fmt.Errorf("completion failed (status %d): %w", apierr.StatusCode, err)
	}

	return err
}

func toCompletionResult(val string) provider.CompletionReason {
	switch val {
	case "stop":
		return provider.CompletionReasonStop

	case "length":
		return provider.CompletionReasonLength
	}

	return ""
}

func toUsage(val openai.CompletionUsage) *provider.Usage {
	if val.TotalTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(val.PromptTokens),
		OutputTokens: int(val.CompletionTokens),
	}
}

package summarization

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-boatwatch/types"
)

const maxEventsForDigest = 50
const maxPromptLength = 15000 // rough character limit for the prompt

// GenerateAlertDigest asks OpenAI for a short situation summary of recent
// alert events. Used by the periodic digest job; never on the request path.
func GenerateAlertDigest(ctx context.Context, events []types.AlertEvent, client *openai.Client) (string, error) {
	if len(events) == 0 {
		return "", fmt.Errorf("no alert events to summarize")
	}

	var lines []string
	for i, event := range events {
		if i >= maxEventsForDigest {
			break
		}
		line := fmt.Sprintf("%s | lat %.4f lng %.4f | speed %.1f heading %.1f | %.2f km from boundary | call placed: %t | %s",
			event.Timestamp, event.Lat, event.Lng, event.Speed, event.Direction,
			event.DistanceKM, event.CallPlaced, event.Message)
		if event.Area != "" {
			line += " | near " + event.Area
		}
		lines = append(lines, line)
	}

	combined := strings.Join(lines, "\n")
	if len(combined) > maxPromptLength {
		combined = combined[:maxPromptLength]
	}

	prompt := fmt.Sprintf("Summarize the following boat border alert events. Focus on where activity is concentrated, how close boats came to the maritime boundary, and whether phone alerts went through. Provide a concise summary (2-3 sentences maximum):\n\n---\n%s\n---\n\nSummary:", combined)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes maritime border alert activity concisely for monitoring staff.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5, // lower temperature for a more focused summary
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

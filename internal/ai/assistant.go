// Package ai talks to the model behind the inventory assistant. The contract
// is deliberately forgiving: whatever goes wrong, the caller gets a fixed
// Indonesian apology string, never an error.
package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Fallback is returned verbatim on any assistant failure
const Fallback = "Maaf, terjadi kesalahan saat menghubungi asisten AI. Silakan coba lagi nanti."

type Assistant interface {
	InventorySummary(ctx context.Context, query, inventoryJSON string) string
}

type Client struct {
	client *openai.Client
}

func NewClient(apiKey string) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{client: &client}
}

// InventorySummary answers a natural-language question over the caller's
// visibility-scoped inventory snapshot. The answer is concise, friendly
// Indonesian.
func (c *Client) InventorySummary(ctx context.Context, query, inventoryJSON string) string {
	prompt := fmt.Sprintf(`Based on the following inventory data in JSON format, answer the user's question.
User Question: %q
Inventory Data: %s

Provide a concise and friendly answer in Indonesian.`, query, inventoryJSON)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("Kamu adalah asisten inventaris sekolah yang membantu dan menjawab dalam Bahasa Indonesia."),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return Fallback
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return Fallback
	}
	return resp.Choices[0].Message.Content
}

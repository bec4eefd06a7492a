package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/cardstudy/internal/inference"
)

const defaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

var _ inference.Client = (*Client)(nil)

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

const systemPrompt = `You write study flashcards from the text the user provides.

Return ONLY a JSON array. Each element is an object:
{"front": "<question or term>", "back": "<answer or definition>"}

RULES
- Each side is plain text between 1 and 500 characters.
- One fact per card. Do not repeat a fact on several cards.
- The front must be answerable without seeing the source text.
- Write the cards in the language of the source text.
- Return at most %d cards. Return [] when the text has nothing worth studying.
- No text outside the JSON array.`

// ProposeFlashcards implements the inference.Client interface
func (client *Client) ProposeFlashcards(
	ctx context.Context,
	params inference.ProposeFlashcardsRequest,
) (inference.ProposeFlashcardsResponse, error) {
	var result inference.ProposeFlashcardsResponse
	if err := retry.Do(
		func() error {
			response, err := client.proposeFlashcards(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				slog.Default().Warn("retrying OpenAI request", "error", err)
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.ProposeFlashcardsResponse{}, err
	}
	return result, nil
}

func (client *Client) getRequestBody(args inference.ProposeFlashcardsRequest) ChatCompletionRequest {
	maxCards := args.MaxCards
	if maxCards <= 0 {
		maxCards = inference.DefaultMaxCards
	}
	return ChatCompletionRequest{
		Model: client.model,
		Messages: []Message{
			{Role: RoleSystem, Content: fmt.Sprintf(systemPrompt, maxCards)},
			{Role: RoleUser, Content: args.Text},
		},
		Temperature: 0.2,
	}
}

func (client *Client) proposeFlashcards(
	ctx context.Context,
	args inference.ProposeFlashcardsRequest,
) (inference.ProposeFlashcardsResponse, error) {
	if strings.TrimSpace(args.Text) == "" {
		return inference.ProposeFlashcardsResponse{}, nil
	}

	requestBody := client.getRequestBody(args)
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.ProposeFlashcardsResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.ProposeFlashcardsResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.ProposeFlashcardsResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return inference.ProposeFlashcardsResponse{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"model", client.model,
		"usage", responseBody.Usage,
	)

	var decoded []inference.Proposal
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &decoded); err != nil {
		return inference.ProposeFlashcardsResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}

	maxCards := args.MaxCards
	if maxCards <= 0 {
		maxCards = inference.DefaultMaxCards
	}
	if len(decoded) > maxCards {
		decoded = decoded[:maxCards]
	}
	return inference.ProposeFlashcardsResponse{Proposals: decoded}, nil
}

// stripCodeFence removes a surrounding ```json fence some models add.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

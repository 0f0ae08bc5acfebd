package service

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
)

// Provider submits one chat completion and returns the assistant's text or a
// typed error. The generation endpoint only depends on this capability, so a
// fake can stand in for the model provider in tests.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

var ErrEmptyCompletion = errors.New("no message content returned from model")

// OpenAIProvider backs Provider with an OpenAI-compatible API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float64
}

func NewOpenAIProvider(client *openai.Client, model string, temperature float64) *OpenAIProvider {
	return &OpenAIProvider{
		client:      client,
		model:       model,
		temperature: temperature,
	}
}

func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	type message struct {
		Role    openai.ChatCompletionMessageParamRole
		Content string
	}
	messages := []message{
		{Role: openai.ChatCompletionMessageParamRoleSystem, Content: systemPrompt},
		{Role: openai.ChatCompletionMessageParamRoleUser, Content: userPrompt},
	}

	params := openai.ChatCompletionNewParams{
		Messages:    openai.F([]openai.ChatCompletionMessageParamUnion{}),
		Model:       openai.F(p.model),
		Temperature: openai.F(p.temperature),
		TopP:        openai.F(1.0),
	}
	for _, m := range messages {
		var content any = m.Content
		params.Messages.Value = append(params.Messages.Value, openai.ChatCompletionMessageParam{
			Role:    openai.F(m.Role),
			Content: openai.F(content),
		})
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

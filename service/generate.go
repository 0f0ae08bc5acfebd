package service

import (
	"context"
	"fmt"

	"pagegen/model"
	"pagegen/platform"
)

var logger = platform.Logger

const systemPrompt = "You are a helpful AI that generates valid HTML and CSS code."

const userPromptFormat = "Generate a complete HTML and CSS code snippet for: %s. \nEnsure the response is wrapped inside <style> and <html> properly."

// ChatStore is the slice of the persistence store the generation and history
// endpoints need.
type ChatStore interface {
	Create(chat *model.Chat) error
	ListByUser(userId string) ([]model.Chat, error)
}

// GenerateService turns a user request into generated HTML and records the
// turn. One provider call, then at most one database write; nothing is
// persisted on any failure path.
type GenerateService struct {
	provider Provider
	chats    ChatStore
}

func NewGenerateService(provider Provider, chats ChatStore) *GenerateService {
	return &GenerateService{provider: provider, chats: chats}
}

// Generate submits the fixed two-message prompt to the provider, persists the
// turn and returns the generated text.
func (s *GenerateService) Generate(ctx context.Context, userId, message string) (string, error) {
	userPrompt := fmt.Sprintf(userPromptFormat, message)

	aiMessage, err := s.provider.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("model provider error: %w", err)
	}
	if aiMessage == "" {
		return "", ErrEmptyCompletion
	}

	chat := &model.Chat{
		UserId:   userId,
		Message:  message,
		Response: aiMessage,
	}
	if err := s.chats.Create(chat); err != nil {
		// the generation is lost; there is no compensating action
		return "", fmt.Errorf("failed to store chat: %w", err)
	}

	return aiMessage, nil
}

// History returns every turn for the user, newest first.
func (s *GenerateService) History(userId string) ([]model.Chat, error) {
	return s.chats.ListByUser(userId)
}

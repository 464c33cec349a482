package utils

import (
	"context"
	"errors"
	"log"
	"time"

	"lms/config"
	"lms/models"

	openai "github.com/sashabaranov/go-openai"
)

const chatMaxRetries = 3

// ErrAssistantUnavailable is returned when the completion service keeps failing
var ErrAssistantUnavailable = errors.New("assistant service unavailable")

const tutorSystemPrompt = "You are a helpful learning assistant for an online course platform. " +
	"Answer questions about course material clearly and concisely. " +
	"Encourage the student, and never reveal quiz answers directly."

// CompleteChat sends the conversation history to the completion API and returns
// the assistant reply. Transport failures are retried with backoff before
// giving up with ErrAssistantUnavailable.
func CompleteChat(ctx context.Context, history []models.ChatMessage, courseTitle string) (string, error) {
	if config.AppConfig.OpenAIKey == "" {
		return "", ErrAssistantUnavailable
	}

	client := openai.NewClient(config.AppConfig.OpenAIKey)

	system := tutorSystemPrompt
	if courseTitle != "" {
		system += " The student is currently taking the course \"" + courseTitle + "\"."
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == models.ChatRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	var lastErr error
	backoff := time.Second
	for attempt := 1; attempt <= chatMaxRetries; attempt++ {
		resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    config.AppConfig.OpenAIModel,
			Messages: messages,
		})
		if err == nil && len(resp.Choices) > 0 {
			return resp.Choices[0].Message.Content, nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = errors.New("completion returned no choices")
		}
		log.Printf("Chat completion failed (attempt %d/%d): %v", attempt, chatMaxRetries, lastErr)
		if attempt < chatMaxRetries {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	return "", ErrAssistantUnavailable
}

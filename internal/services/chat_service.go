package services

import (
	"context"
	"fmt"

	"github.com/campuskit/coursegen-service/internal/generation"
	"github.com/campuskit/coursegen-service/internal/utils"
	"github.com/campuskit/coursegen-service/internal/validator"
)

// ChatRequest is a free-form prompt to the teaching assistant. Mode picks the
// persona; anything unrecognized falls back to the general assistant.
type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Mode   string `json:"mode"`
}

// ChatResponse carries the raw model reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatService is a thin passthrough to the generation backend for ad-hoc
// teaching questions. Replies are returned verbatim and never persisted.
type ChatService interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

type chatService struct {
	client    generation.Client
	validator *validator.Validator
	logger    utils.Logger
}

func NewChatService(client generation.Client, v *validator.Validator, logger utils.Logger) ChatService {
	return &chatService{
		client:    client,
		validator: v,
		logger:    logger,
	}
}

func (s *chatService) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	s.logger.Info("forwarding chat prompt", "mode", req.Mode, "prompt_len", len(req.Prompt))

	reply, err := s.client.Complete(ctx, generation.ChatSystemPrompt(req.Mode), req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return &ChatResponse{Reply: reply}, nil
}

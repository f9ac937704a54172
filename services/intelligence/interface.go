// File: services/intelligence/interface.go
package ai

import (
	"context"

	"go.uber.org/zap"

	"quickcowork/models"
	"quickcowork/utils"
)

// conciergeContext is prepended to every Gemini turn so replies stay on
// topic for the platform.
const conciergeContext = `You are QuickCoWork AI Assistant, a helpful AI assistant for a shared workspace platform in India.
QuickCoWork allows users to rent commercial spaces (offices, kitchens, studios) by the hour.

Key Information:
- Pricing: Offices start at Rs 500/hour, kitchens at Rs 800/hour, studios at Rs 600/hour
- Locations: 25+ cities across India
- Services: Professional offices, commercial kitchens, creative studios
- Booking: Instant booking with no long-term commitments
- Features: Pay only for what you use, flexible scheduling

Always be helpful, friendly, and provide accurate information about QuickCoWork services.
If you don't know something specific, suggest contacting customer support.`

// ConciergeService answers chat messages, preferring Gemini and degrading
// to canned keyword replies. It never surfaces a hard error for a chat turn.
type ConciergeService interface {
	Chat(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error)
	History(ctx context.Context, userID string, count int64) ([]models.ChatMessage, error)
}

// DefaultConciergeService is the production implementation.
type DefaultConciergeService struct {
	// Gemini is nil when no API key is configured; every turn then uses
	// the fallback responder.
	Gemini *GeminiClient
	Store  *RedisHistoryStore
}

func NewDefaultConciergeService(apiKey string, history *RedisHistoryStore) *DefaultConciergeService {
	svc := &DefaultConciergeService{Store: history}
	if apiKey == "" {
		utils.GetLogger().Warn("Gemini API key not configured, concierge runs in fallback mode")
		return svc
	}
	client, err := NewGeminiClient(apiKey)
	if err != nil {
		utils.GetLogger().Warn("failed to initialize Gemini client, concierge runs in fallback mode", zap.Error(err))
		return svc
	}
	svc.Gemini = client
	return svc
}

func (s *DefaultConciergeService) Chat(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error) {
	logger := utils.GetLogger()

	if err := s.Store.Append(ctx, userID, "user", req.Text); err != nil {
		logger.Warn("failed to persist user chat message", zap.Error(err))
	}

	reply, source := s.reply(ctx, req.Text)

	if err := s.Store.Append(ctx, userID, "assistant", reply); err != nil {
		logger.Warn("failed to persist assistant chat message", zap.Error(err))
	}

	return &models.ChatResponse{ResponseText: reply, Source: source}, nil
}

func (s *DefaultConciergeService) reply(ctx context.Context, text string) (string, string) {
	if s.Gemini == nil {
		return FallbackReply(text), "fallback"
	}
	prompt := conciergeContext + "\n\nUser: " + text + "\n\nAssistant:"
	reply, err := s.Gemini.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("Gemini call failed, using fallback reply", zap.Error(err))
		return FallbackReply(text), "fallback"
	}
	return reply, "gemini"
}

func (s *DefaultConciergeService) History(ctx context.Context, userID string, count int64) ([]models.ChatMessage, error) {
	return s.Store.Recent(ctx, userID, count)
}

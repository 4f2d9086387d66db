package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/vidyonnati/foundation-backend/config"
	"github.com/vidyonnati/foundation-backend/models"
	"github.com/vidyonnati/foundation-backend/repository"
	"gorm.io/gorm"
)

// essayColumns are the free-text answers worth summarizing for reviewers.
var essayColumns = []string{"why_scholarship", "renewal_essay", "story", "achievements", "additional_info"}

type InsightService interface {
	EssaySummary(ctx context.Context, applicationID uuid.UUID) (*models.ApplicationInsight, error)
}

type InsightServiceImpl struct {
	apps     repository.ApplicationRepository
	insights repository.InsightRepository
	client   *openai.Client
	model    string
	log      *logrus.Logger
}

func NewInsightService(apps repository.ApplicationRepository, insights repository.InsightRepository, cfg config.OpenAIConfig, log *logrus.Logger) InsightService {
	var client *openai.Client
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		client = openai.NewClientWithConfig(clientCfg)
	}
	return &InsightServiceImpl{apps: apps, insights: insights, client: client, model: cfg.Model, log: log}
}

// EssaySummary returns the cached summary for an application, generating it
// on first request.
func (s *InsightServiceImpl) EssaySummary(ctx context.Context, applicationID uuid.UUID) (*models.ApplicationInsight, error) {
	if cached, err := s.insights.GetByApplicationID(applicationID); err == nil {
		return cached, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if s.client == nil {
		return nil, errors.New("insight service is not configured")
	}

	app, err := s.apps.GetByID(applicationID)
	if err != nil {
		return nil, fmt.Errorf("application not found: %w", err)
	}
	essays := extractEssays(app.Fields)
	if essays == "" {
		return nil, errors.New("application has no essay answers to summarize")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You summarize scholarship application essays for reviewers. Reply with 3-5 short bullet points covering the applicant's situation, motivation and anything needing verification. Do not invent facts.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: essays,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("model returned no summary")
	}

	insight := &models.ApplicationInsight{
		ApplicationID: applicationID,
		Model:         s.model,
		Summary:       resp.Choices[0].Message.Content,
	}
	if err := s.insights.Upsert(insight); err != nil {
		return nil, fmt.Errorf("failed to cache summary: %w", err)
	}
	return insight, nil
}

func extractEssays(fields []byte) string {
	var m map[string]interface{}
	if err := json.Unmarshal(fields, &m); err != nil {
		return ""
	}
	var parts []string
	for _, col := range essayColumns {
		if v, ok := m[col].(string); ok && strings.TrimSpace(v) != "" {
			parts = append(parts, fmt.Sprintf("%s:\n%s", col, v))
		}
	}
	return strings.Join(parts, "\n\n")
}

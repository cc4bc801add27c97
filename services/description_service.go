package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"

	"venuescout-api/models"
	"venuescout-api/utils"
)

const descriptionSystemPrompt = "You are a professional event planner writing compelling venue descriptions for client proposals. Write in a professional yet engaging tone."

// NarrativeClient is the text-generation collaborator. Implementations take
// an assembled prompt and return free text or an error.
type NarrativeClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OpenAINarrativeClient generates venue narratives via the OpenAI chat
// completions API.
type OpenAINarrativeClient struct {
	client *openai.Client
}

func NewOpenAINarrativeClient(apiKey string) *OpenAINarrativeClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = narrativeHTTPClient()
	return &OpenAINarrativeClient{client: openai.NewClientWithConfig(cfg)}
}

// narrativeHTTPClient bounds generation calls so a hung upstream cannot pin
// request handlers indefinitely.
func narrativeHTTPClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}

func (oc *OpenAINarrativeClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := oc.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: descriptionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature:      0.7,
		MaxTokens:        600,
		PresencePenalty:  0.1,
		FrequencyPenalty: 0.1,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// DescriptionService generates AI venue descriptions for project-venue links.
type DescriptionService struct {
	db        *gorm.DB
	narrative NarrativeClient
}

func NewDescriptionService(db *gorm.DB, narrative NarrativeClient) *DescriptionService {
	return &DescriptionService{db: db, narrative: narrative}
}

// GenerateForLink builds the prompt from the link's briefing, calls the
// generator and persists the result as ai_description. The generation and
// the write are one logical operation: if the write fails the generated text
// is discarded and the error surfaces. A missing briefing is a caller error,
// not a generation failure, and performs no write.
func (ds *DescriptionService) GenerateForLink(ctx context.Context, projectVenue *models.ProjectVenue) (string, error) {
	if len(projectVenue.AIContext) == 0 {
		return "", utils.Validationf("no AI context provided; add context before generating a description")
	}

	prompt := BuildPrompt(&projectVenue.Venue, &projectVenue.Project, projectVenue.AIContext)

	description, err := ds.narrative.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrGeneration, err)
	}

	if err := ds.db.Model(projectVenue).Update("ai_description", description).Error; err != nil {
		return "", fmt.Errorf("failed to save generated description: %w", err)
	}
	projectVenue.AIDescription = &description

	return description, nil
}

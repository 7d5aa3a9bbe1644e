package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
	"github.com/Hiro-mackay/gc-rental/pkg/logger"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-3.5-turbo"
	requestTimeout = 30 * time.Second
)

// OpenAIConfig はOpenAI互換APIの設定を定義します
type OpenAIConfig struct {
	APIKey  string // APIキー（空の場合はフォールバックのみ使用）
	BaseURL string // APIエンドポイント（OpenAI互換サーバーを指定可能）
	Model   string // 使用モデル
}

// OpenAIDescriptionGenerator はOpenAI互換APIを使用した説明文ジェネレーターです
// API呼び出しに失敗した場合はテンプレートベースのフォールバックを使用します
type OpenAIDescriptionGenerator struct {
	config     OpenAIConfig
	httpClient *http.Client
	fallback   service.DescriptionGenerator
}

// NewOpenAIDescriptionGenerator は新しいOpenAIDescriptionGeneratorを作成します
func NewOpenAIDescriptionGenerator(cfg OpenAIConfig, fallback service.DescriptionGenerator) *OpenAIDescriptionGenerator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	return &OpenAIDescriptionGenerator{
		config:     cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
		fallback:   fallback,
	}
}

// chat completions APIのリクエスト・レスポンス
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate は物件情報から魅力的な説明文を生成します
func (g *OpenAIDescriptionGenerator) Generate(ctx context.Context, input service.DescriptionInput) (string, error) {
	if g.config.APIKey == "" {
		return g.fallback.Generate(ctx, input)
	}

	description, err := g.generateViaAPI(ctx, input)
	if err != nil {
		logger.Warn(ctx, "description generation via API failed, using fallback", "error", err)
		return g.fallback.Generate(ctx, input)
	}

	return description, nil
}

// generateViaAPI はchat completions APIを呼び出して説明文を生成します
func (g *OpenAIDescriptionGenerator) generateViaAPI(ctx context.Context, input service.DescriptionInput) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short, appealing rental listing description (3-4 sentences) for this apartment. "+
			"Title: %s. City: %s. Bedrooms: %d. Price per day: $%d. "+
			"Respond with the description only.",
		input.Title, input.City, input.Bedrooms, input.PricePerDay,
	)

	body, err := json.Marshal(chatCompletionRequest{
		Model: g.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a real estate copywriter."},
			{Role: "user", Content: prompt},
		},
		MaxTokens: 300,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.config.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("completion API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}

	description := strings.TrimSpace(completion.Choices[0].Message.Content)
	if description == "" {
		return "", fmt.Errorf("completion API returned empty description")
	}

	return description, nil
}

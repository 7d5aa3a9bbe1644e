package ai

import (
	"context"
	"fmt"

	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
)

// TemplateDescriptionGenerator はテンプレートベースの説明文ジェネレーターです
// 外部APIキーが未設定の環境や、API障害時のフォールバックとして使用します
type TemplateDescriptionGenerator struct{}

// NewTemplateDescriptionGenerator は新しいTemplateDescriptionGeneratorを作成します
func NewTemplateDescriptionGenerator() *TemplateDescriptionGenerator {
	return &TemplateDescriptionGenerator{}
}

// Generate は入力からテンプレートベースの説明文を生成します
func (g *TemplateDescriptionGenerator) Generate(_ context.Context, input service.DescriptionInput) (string, error) {
	bedrooms := "a cozy studio"
	if input.Bedrooms == 1 {
		bedrooms = "one comfortable bedroom"
	} else if input.Bedrooms > 1 {
		bedrooms = fmt.Sprintf("%d spacious bedrooms", input.Bedrooms)
	}

	return fmt.Sprintf(
		"Welcome to %s, located in the heart of %s. This apartment offers %s and is available for $%d per day. "+
			"Perfect for travelers looking for comfort and convenience in %s.",
		input.Title, input.City, bedrooms, input.PricePerDay, input.City,
	), nil
}

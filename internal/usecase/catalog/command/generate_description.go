package command

import (
	"context"

	"github.com/Hiro-mackay/gc-rental/internal/domain/service"
	"github.com/Hiro-mackay/gc-rental/pkg/apperror"
)

// GenerateDescriptionInput は説明文生成の入力を定義します
type GenerateDescriptionInput struct {
	Title       string
	City        string
	Bedrooms    int
	PricePerDay int
}

// GenerateDescriptionOutput は説明文生成の出力を定義します
type GenerateDescriptionOutput struct {
	Description string
}

// GenerateDescriptionCommand は物件説明文の生成コマンドです
type GenerateDescriptionCommand struct {
	generator service.DescriptionGenerator
}

// NewGenerateDescriptionCommand は新しいGenerateDescriptionCommandを作成します
func NewGenerateDescriptionCommand(generator service.DescriptionGenerator) *GenerateDescriptionCommand {
	return &GenerateDescriptionCommand{generator: generator}
}

// Execute は説明文生成を実行します
func (c *GenerateDescriptionCommand) Execute(ctx context.Context, input GenerateDescriptionInput) (*GenerateDescriptionOutput, error) {
	description, err := c.generator.Generate(ctx, service.DescriptionInput{
		Title:       input.Title,
		City:        input.City,
		Bedrooms:    input.Bedrooms,
		PricePerDay: input.PricePerDay,
	})
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	return &GenerateDescriptionOutput{Description: description}, nil
}

package service

import "context"

// DescriptionInput は説明文生成の入力を定義します
type DescriptionInput struct {
	Title       string
	City        string
	Bedrooms    int
	PricePerDay int
}

// DescriptionGenerator は物件説明文の生成を提供します
// 外部APIが利用できない場合の実装はテンプレートベースのフォールバックです
type DescriptionGenerator interface {
	Generate(ctx context.Context, input DescriptionInput) (string, error)
}

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// データベースエラー
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")

	// ErrReferenceMissing は参照先の行が存在しない場合のエラー
	// 予約が指す物件・ユーザーが削除済みのケースで発生する
	ErrReferenceMissing = errors.New("referenced record missing")
)

// BaseRepository はリポジトリの基底構造体
type BaseRepository struct {
	txManager *TxManager
}

// NewBaseRepository は新しいBaseRepositoryを作成する
func NewBaseRepository(txManager *TxManager) *BaseRepository {
	return &BaseRepository{txManager: txManager}
}

// Querier はクエリ実行用のインターフェースを返す
// トランザクション中であればTx、そうでなければPoolを返す
func (r *BaseRepository) Querier(ctx context.Context) Querier {
	return r.txManager.GetQuerier(ctx)
}

// TxManager はトランザクションマネージャーを返す
func (r *BaseRepository) TxManager() *TxManager {
	return r.txManager
}

// HandleError はpgxのエラーをドメインエラーに変換する
// 一意制約はメールアドレス重複、外部キーは予約の参照切れが主なケース
func (r *BaseRepository) HandleError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return ErrConflict
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", ErrReferenceMissing, pgErr.ConstraintName)
		case "23514": // check_violation
			return fmt.Errorf("check constraint %s violated", pgErr.ConstraintName)
		}
	}

	return err
}

// IsNotFoundError はエラーがNotFoundエラーかどうかを判定する
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflictError はエラーがConflictエラーかどうかを判定する
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

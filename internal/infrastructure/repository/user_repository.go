package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
)

// UserRepository はユーザーリポジトリの実装です
type UserRepository struct {
	*database.BaseRepository
}

// NewUserRepository は新しいUserRepositoryを作成します
func NewUserRepository(txManager *database.TxManager) *UserRepository {
	return &UserRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create はユーザーを作成します
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	querier := r.Querier(ctx)

	_, err := querier.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID,
		user.Email.String(),
		user.PasswordHash,
		string(user.Role),
		user.CreatedAt,
		user.UpdatedAt,
	)

	return r.HandleError(err)
}

// FindByID はIDでユーザーを検索します
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	querier := r.Querier(ctx)

	row := querier.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1`,
		id,
	)

	return r.scanUser(row)
}

// FindByEmail はメールアドレスでユーザーを検索します
func (r *UserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	querier := r.Querier(ctx)

	row := querier.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1`,
		email.String(),
	)

	return r.scanUser(row)
}

// Exists はメールアドレスが存在するかを確認します
func (r *UserRepository) Exists(ctx context.Context, email valueobject.Email) (bool, error) {
	querier := r.Querier(ctx)

	var exists bool
	err := querier.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email.String(),
	).Scan(&exists)
	if err != nil {
		return false, r.HandleError(err)
	}

	return exists, nil
}

// scanUser は行をUserエンティティに変換します
func (r *UserRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var (
		user     entity.User
		rawEmail string
		role     string
	)

	err := row.Scan(&user.ID, &rawEmail, &user.PasswordHash, &role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, r.HandleError(err)
	}

	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	user.Email = email
	user.Role = entity.Role(role)

	return &user, nil
}

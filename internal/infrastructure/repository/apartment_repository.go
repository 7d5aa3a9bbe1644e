package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Hiro-mackay/gc-rental/internal/domain/entity"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/database"
)

// ApartmentRepository は物件リポジトリの実装です
type ApartmentRepository struct {
	*database.BaseRepository
}

// NewApartmentRepository は新しいApartmentRepositoryを作成します
func NewApartmentRepository(txManager *database.TxManager) *ApartmentRepository {
	return &ApartmentRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

const apartmentColumns = `id, title, city, address, price_per_day, bedrooms, description, photos, is_active, created_at, updated_at`

// Create は物件を作成します
func (r *ApartmentRepository) Create(ctx context.Context, apartment *entity.Apartment) error {
	querier := r.Querier(ctx)

	_, err := querier.Exec(ctx, `
		INSERT INTO apartments (id, title, city, address, price_per_day, bedrooms, description, photos, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		apartment.ID,
		apartment.Title,
		apartment.City,
		apartment.Address,
		apartment.PricePerDay,
		apartment.Bedrooms,
		apartment.Description,
		apartment.Photos,
		apartment.IsActive,
		apartment.CreatedAt,
		apartment.UpdatedAt,
	)

	return r.HandleError(err)
}

// Update は物件を更新します
func (r *ApartmentRepository) Update(ctx context.Context, apartment *entity.Apartment) error {
	querier := r.Querier(ctx)

	tag, err := querier.Exec(ctx, `
		UPDATE apartments
		SET title = $2, city = $3, address = $4, price_per_day = $5, bedrooms = $6,
		    description = $7, photos = $8, is_active = $9, updated_at = $10
		WHERE id = $1`,
		apartment.ID,
		apartment.Title,
		apartment.City,
		apartment.Address,
		apartment.PricePerDay,
		apartment.Bedrooms,
		apartment.Description,
		apartment.Photos,
		apartment.IsActive,
		apartment.UpdatedAt,
	)
	if err != nil {
		return r.HandleError(err)
	}
	if tag.RowsAffected() == 0 {
		return database.ErrNotFound
	}

	return nil
}

// Delete は物件を削除します
func (r *ApartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := r.Querier(ctx)

	tag, err := querier.Exec(ctx, `DELETE FROM apartments WHERE id = $1`, id)
	if err != nil {
		return r.HandleError(err)
	}
	if tag.RowsAffected() == 0 {
		return database.ErrNotFound
	}

	return nil
}

// FindByID はIDで物件を検索します（非公開含む）
func (r *ApartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	querier := r.Querier(ctx)

	row := querier.QueryRow(ctx, `
		SELECT `+apartmentColumns+`
		FROM apartments
		WHERE id = $1`,
		id,
	)

	return r.scanApartment(row)
}

// FindActiveByID はIDで公開中の物件を検索します
func (r *ApartmentRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Apartment, error) {
	querier := r.Querier(ctx)

	row := querier.QueryRow(ctx, `
		SELECT `+apartmentColumns+`
		FROM apartments
		WHERE id = $1 AND is_active = true`,
		id,
	)

	return r.scanApartment(row)
}

// ListActive は公開中の物件を更新日時の降順で返します
func (r *ApartmentRepository) ListActive(ctx context.Context) ([]*entity.Apartment, error) {
	querier := r.Querier(ctx)

	rows, err := querier.Query(ctx, `
		SELECT `+apartmentColumns+`
		FROM apartments
		WHERE is_active = true
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()

	return r.scanApartments(rows)
}

// ListAll は全物件を更新日時の降順で返します（管理画面用）
func (r *ApartmentRepository) ListAll(ctx context.Context) ([]*entity.Apartment, error) {
	querier := r.Querier(ctx)

	rows, err := querier.Query(ctx, `
		SELECT `+apartmentColumns+`
		FROM apartments
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()

	return r.scanApartments(rows)
}

// scanApartment は単一行をApartmentエンティティに変換します
func (r *ApartmentRepository) scanApartment(row pgx.Row) (*entity.Apartment, error) {
	var apartment entity.Apartment

	err := row.Scan(
		&apartment.ID,
		&apartment.Title,
		&apartment.City,
		&apartment.Address,
		&apartment.PricePerDay,
		&apartment.Bedrooms,
		&apartment.Description,
		&apartment.Photos,
		&apartment.IsActive,
		&apartment.CreatedAt,
		&apartment.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err)
	}

	if apartment.Photos == nil {
		apartment.Photos = []string{}
	}

	return &apartment, nil
}

// scanApartments は行セットをApartmentエンティティのスライスに変換します
func (r *ApartmentRepository) scanApartments(rows pgx.Rows) ([]*entity.Apartment, error) {
	apartments := make([]*entity.Apartment, 0)
	for rows.Next() {
		apartment, err := r.scanApartment(rows)
		if err != nil {
			return nil, err
		}
		apartments = append(apartments, apartment)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}

	return apartments, nil
}

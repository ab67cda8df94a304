package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/linkdeck/linkdeck/internal/entity"
)

type categoryDB struct {
	ID                 int64          `db:"id"`
	Name               string         `db:"name"`
	Description        sql.NullString `db:"description"`
	Color              string         `db:"color"`
	UserID             int64          `db:"user_id"`
	ReferralLinksCount int64          `db:"referral_links_count"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func (c *categoryDB) toEntity() *entity.Category {
	return &entity.Category{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description.String,
		Color:              c.Color,
		UserID:             c.UserID,
		ReferralLinksCount: c.ReferralLinksCount,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// linkCountSubquery recomputes the child-link count on every read instead of
// maintaining a stored counter.
const linkCountSubquery = `(SELECT COUNT(*) FROM referral_links l WHERE l.category_id = c.id) AS referral_links_count`

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, userID int64, name, description, color string) (*entity.Category, error) {
	const op = "adapter.repository.postgres.CategoryRepository.Create"
	const query = `INSERT INTO categories(name, description, color, user_id)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING *, 0 AS referral_links_count`

	var cat categoryDB

	if err := r.db.GetContext(ctx, &cat, query, name, description, color, userID); err != nil {
		return nil, fmt.Errorf("%s: failed to insert into categories table: %w", op, err)
	}

	return cat.toEntity(), nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	const op = "adapter.repository.postgres.CategoryRepository.GetByID"
	const query = `SELECT c.*, ` + linkCountSubquery + `
		FROM categories c
		WHERE c.id = $1`

	var cat categoryDB

	if err := r.db.GetContext(ctx, &cat, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrCategoryNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from categories table: %w", op, err)
	}

	return cat.toEntity(), nil
}

// GetOwned fetches a category only when it belongs to the given user. A
// category owned by someone else is reported as not found so that foreign
// category ids cannot be confirmed.
func (r *CategoryRepository) GetOwned(ctx context.Context, id, userID int64) (*entity.Category, error) {
	const op = "adapter.repository.postgres.CategoryRepository.GetOwned"
	const query = `SELECT c.*, ` + linkCountSubquery + `
		FROM categories c
		WHERE c.id = $1 AND c.user_id = $2`

	var cat categoryDB

	if err := r.db.GetContext(ctx, &cat, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrCategoryNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from categories table: %w", op, err)
	}

	return cat.toEntity(), nil
}

func (r *CategoryRepository) List(ctx context.Context, userID int64, limit, offset int) ([]entity.Category, error) {
	const op = "adapter.repository.postgres.CategoryRepository.List"
	const query = `SELECT c.*, ` + linkCountSubquery + `
		FROM categories c
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3`

	var rows []categoryDB

	if err := r.db.SelectContext(ctx, &rows, query, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("%s: failed to select from categories table: %w", op, err)
	}

	cats := make([]entity.Category, 0, len(rows))
	for i := range rows {
		cats = append(cats, *rows[i].toEntity())
	}

	return cats, nil
}

func (r *CategoryRepository) Count(ctx context.Context, userID int64) (int64, error) {
	const op = "adapter.repository.postgres.CategoryRepository.Count"
	const query = `SELECT COUNT(*) FROM categories WHERE user_id = $1`

	var count int64

	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("%s: failed to count categories table rows: %w", op, err)
	}

	return count, nil
}

func (r *CategoryRepository) Recent(ctx context.Context, userID int64, limit int) ([]entity.Category, error) {
	const op = "adapter.repository.postgres.CategoryRepository.Recent"

	cats, err := r.List(ctx, userID, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cats, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, changes entity.CategoryChanges) (*entity.Category, error) {
	const op = "adapter.repository.postgres.CategoryRepository.Update"

	qb := psql.Update("categories").Where("id = ?", id).
		Suffix(`RETURNING *, (SELECT COUNT(*) FROM referral_links l WHERE l.category_id = categories.id) AS referral_links_count`)

	if changes.Name != nil {
		qb = qb.Set("name", *changes.Name)
	}
	if changes.Description != nil {
		qb = qb.Set("description", sql.NullString{String: *changes.Description, Valid: *changes.Description != ""})
	}
	if changes.Color != nil {
		qb = qb.Set("color", *changes.Color)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	var cat categoryDB

	if err := r.db.GetContext(ctx, &cat, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrCategoryNotFound)
		}

		return nil, fmt.Errorf("%s: failed to update categories table row: %w", op, err)
	}

	return cat.toEntity(), nil
}

// Delete removes the category. Child referral links go with it through the
// ON DELETE CASCADE foreign key.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	const op = "adapter.repository.postgres.CategoryRepository.Delete"
	const query = `DELETE FROM categories WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from categories table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrCategoryNotFound)
	}

	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/linkdeck/linkdeck/internal/entity"
)

type linkDB struct {
	ID           int64               `db:"id"`
	Name         string              `db:"name"`
	URL          string              `db:"url"`
	Description  sql.NullString      `db:"description"`
	ClickCount   int64               `db:"click_count"`
	SocialShares entity.SocialShares `db:"social_shares"`
	CategoryID   int64               `db:"category_id"`
	UserID       int64               `db:"user_id"`
	CreatedAt    time.Time           `db:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at"`
}

func (l *linkDB) toEntity() *entity.ReferralLink {
	return &entity.ReferralLink{
		ID:           l.ID,
		Name:         l.Name,
		URL:          l.URL,
		Description:  l.Description.String,
		ClickCount:   l.ClickCount,
		SocialShares: l.SocialShares,
		CategoryID:   l.CategoryID,
		UserID:       l.UserID,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// linkWithCategoryDB carries a referral link row joined with its parent
// category, flattened through cat_ aliases.
type linkWithCategoryDB struct {
	linkDB
	CatID          int64          `db:"cat_id"`
	CatName        string         `db:"cat_name"`
	CatDescription sql.NullString `db:"cat_description"`
	CatColor       string         `db:"cat_color"`
	CatUserID      int64          `db:"cat_user_id"`
	CatCreatedAt   time.Time      `db:"cat_created_at"`
	CatUpdatedAt   time.Time      `db:"cat_updated_at"`
}

func (l *linkWithCategoryDB) toEntity() *entity.ReferralLink {
	link := l.linkDB.toEntity()
	link.Category = &entity.Category{
		ID:          l.CatID,
		Name:        l.CatName,
		Description: l.CatDescription.String,
		Color:       l.CatColor,
		UserID:      l.CatUserID,
		CreatedAt:   l.CatCreatedAt,
		UpdatedAt:   l.CatUpdatedAt,
	}

	return link
}

var linkWithCategoryColumns = []string{
	"l.id", "l.name", "l.url", "l.description", "l.click_count", "l.social_shares",
	"l.category_id", "l.user_id", "l.created_at", "l.updated_at",
	"c.id AS cat_id", "c.name AS cat_name", "c.description AS cat_description",
	"c.color AS cat_color", "c.user_id AS cat_user_id",
	"c.created_at AS cat_created_at", "c.updated_at AS cat_updated_at",
}

type LinkRepository struct {
	db *sqlx.DB
}

func NewLinkRepository(db *sqlx.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Create inserts a referral link with a zero click count. A foreign key
// violation on category_id (the category vanished between the ownership check
// and the insert) surfaces as ErrCategoryNotFound.
func (r *LinkRepository) Create(ctx context.Context, userID, categoryID int64, name, url, description string) (*entity.ReferralLink, error) {
	const op = "adapter.repository.postgres.LinkRepository.Create"
	const query = `INSERT INTO referral_links(name, url, description, category_id, user_id)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING *`

	var link linkDB

	if err := r.db.GetContext(ctx, &link, query, name, url, description, categoryID, userID); err != nil {
		if isForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrCategoryNotFound)
		}

		return nil, fmt.Errorf("%s: failed to insert into referral_links table: %w", op, err)
	}

	return link.toEntity(), nil
}

func (r *LinkRepository) GetByID(ctx context.Context, id int64) (*entity.ReferralLink, error) {
	const op = "adapter.repository.postgres.LinkRepository.GetByID"

	query, args, err := psql.Select(linkWithCategoryColumns...).
		From("referral_links l").
		Join("categories c ON c.id = l.category_id").
		Where(sq.Eq{"l.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build select query: %w", op, err)
	}

	var link linkWithCategoryDB

	if err := r.db.GetContext(ctx, &link, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from referral_links table: %w", op, err)
	}

	return link.toEntity(), nil
}

func (r *LinkRepository) List(ctx context.Context, userID int64, categoryID *int64, limit, offset int) ([]entity.ReferralLink, error) {
	const op = "adapter.repository.postgres.LinkRepository.List"

	qb := psql.Select(linkWithCategoryColumns...).
		From("referral_links l").
		Join("categories c ON c.id = l.category_id").
		Where(sq.Eq{"l.user_id": userID}).
		OrderBy("l.created_at DESC", "l.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if categoryID != nil {
		qb = qb.Where(sq.Eq{"l.category_id": *categoryID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build select query: %w", op, err)
	}

	var rows []linkWithCategoryDB

	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select from referral_links table: %w", op, err)
	}

	links := make([]entity.ReferralLink, 0, len(rows))
	for i := range rows {
		links = append(links, *rows[i].toEntity())
	}

	return links, nil
}

func (r *LinkRepository) Count(ctx context.Context, userID int64, categoryID *int64) (int64, error) {
	const op = "adapter.repository.postgres.LinkRepository.Count"

	qb := psql.Select("COUNT(*)").
		From("referral_links").
		Where(sq.Eq{"user_id": userID})

	if categoryID != nil {
		qb = qb.Where(sq.Eq{"category_id": *categoryID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to build count query: %w", op, err)
	}

	var count int64

	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%s: failed to count referral_links table rows: %w", op, err)
	}

	return count, nil
}

func (r *LinkRepository) SumClicks(ctx context.Context, userID int64) (int64, error) {
	const op = "adapter.repository.postgres.LinkRepository.SumClicks"
	const query = `SELECT COALESCE(SUM(click_count), 0) FROM referral_links WHERE user_id = $1`

	var sum int64

	if err := r.db.GetContext(ctx, &sum, query, userID); err != nil {
		return 0, fmt.Errorf("%s: failed to sum referral_links click counts: %w", op, err)
	}

	return sum, nil
}

func (r *LinkRepository) Recent(ctx context.Context, userID int64, limit int) ([]entity.ReferralLink, error) {
	const op = "adapter.repository.postgres.LinkRepository.Recent"

	links, err := r.List(ctx, userID, nil, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return links, nil
}

func (r *LinkRepository) TopByClicks(ctx context.Context, userID int64, limit int) ([]entity.ReferralLink, error) {
	const op = "adapter.repository.postgres.LinkRepository.TopByClicks"

	query, args, err := psql.Select(linkWithCategoryColumns...).
		From("referral_links l").
		Join("categories c ON c.id = l.category_id").
		Where(sq.Eq{"l.user_id": userID}).
		OrderBy("l.click_count DESC", "l.id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build select query: %w", op, err)
	}

	var rows []linkWithCategoryDB

	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to select from referral_links table: %w", op, err)
	}

	links := make([]entity.ReferralLink, 0, len(rows))
	for i := range rows {
		links = append(links, *rows[i].toEntity())
	}

	return links, nil
}

// ListByCategory returns the bare child links of one category, newest first.
// The parent is known to the caller, so no join is performed.
func (r *LinkRepository) ListByCategory(ctx context.Context, categoryID int64) ([]entity.ReferralLink, error) {
	const op = "adapter.repository.postgres.LinkRepository.ListByCategory"
	const query = `SELECT * FROM referral_links
		WHERE category_id = $1
		ORDER BY created_at DESC, id DESC`

	var rows []linkDB

	if err := r.db.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, fmt.Errorf("%s: failed to select from referral_links table: %w", op, err)
	}

	links := make([]entity.ReferralLink, 0, len(rows))
	for i := range rows {
		links = append(links, *rows[i].toEntity())
	}

	return links, nil
}

func (r *LinkRepository) Update(ctx context.Context, id int64, changes entity.LinkChanges) (*entity.ReferralLink, error) {
	const op = "adapter.repository.postgres.LinkRepository.Update"

	qb := psql.Update("referral_links").Where("id = ?", id).Suffix("RETURNING *")

	if changes.Name != nil {
		qb = qb.Set("name", *changes.Name)
	}
	if changes.URL != nil {
		qb = qb.Set("url", *changes.URL)
	}
	if changes.Description != nil {
		qb = qb.Set("description", sql.NullString{String: *changes.Description, Valid: *changes.Description != ""})
	}
	if changes.CategoryID != nil {
		qb = qb.Set("category_id", *changes.CategoryID)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	var link linkDB

	if err := r.db.GetContext(ctx, &link, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
		}
		if isForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrCategoryNotFound)
		}

		return nil, fmt.Errorf("%s: failed to update referral_links table row: %w", op, err)
	}

	return link.toEntity(), nil
}

func (r *LinkRepository) Delete(ctx context.Context, id int64) error {
	const op = "adapter.repository.postgres.LinkRepository.Delete"
	const query = `DELETE FROM referral_links WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from referral_links table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
	}

	return nil
}

// Package usecase holds the application rules: ownership guarding, input
// defaulting, pagination bounds, and composition of repository reads.
package usecase

import (
	"context"
	"fmt"

	"github.com/linkdeck/linkdeck/internal/entity"
)

const (
	defaultCategoryPageSize = 12
	defaultLinkPageSize     = 15
	maxPageSize             = 100
)

type categoryRepository interface {
	Create(ctx context.Context, userID int64, name, description, color string) (*entity.Category, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetOwned(ctx context.Context, id, userID int64) (*entity.Category, error)
	List(ctx context.Context, userID int64, limit, offset int) ([]entity.Category, error)
	Count(ctx context.Context, userID int64) (int64, error)
	Recent(ctx context.Context, userID int64, limit int) ([]entity.Category, error)
	Update(ctx context.Context, id int64, changes entity.CategoryChanges) (*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}

type linkRepository interface {
	Create(ctx context.Context, userID, categoryID int64, name, url, description string) (*entity.ReferralLink, error)
	GetByID(ctx context.Context, id int64) (*entity.ReferralLink, error)
	List(ctx context.Context, userID int64, categoryID *int64, limit, offset int) ([]entity.ReferralLink, error)
	Count(ctx context.Context, userID int64, categoryID *int64) (int64, error)
	SumClicks(ctx context.Context, userID int64) (int64, error)
	Recent(ctx context.Context, userID int64, limit int) ([]entity.ReferralLink, error)
	TopByClicks(ctx context.Context, userID int64, limit int) ([]entity.ReferralLink, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]entity.ReferralLink, error)
	Update(ctx context.Context, id int64, changes entity.LinkChanges) (*entity.ReferralLink, error)
	Delete(ctx context.Context, id int64) error
}

// normalizePage clamps the requested page and page size to sane bounds.
func normalizePage(page, perPage, defaultPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPageSize {
		perPage = maxPageSize
	}

	return page, perPage
}

type CategoryUseCase struct {
	categoryRepo categoryRepository
	linkRepo     linkRepository
}

func NewCategoryUseCase(categoryRepo categoryRepository, linkRepo linkRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		linkRepo:     linkRepo,
	}
}

func (uc *CategoryUseCase) List(ctx context.Context, userID int64, page, perPage int) (*entity.Page[entity.Category], error) {
	const op = "usecase.CategoryUseCase.List"

	page, perPage = normalizePage(page, perPage, defaultCategoryPageSize)

	cats, err := uc.categoryRepo.List(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list categories: %w", op, err)
	}

	total, err := uc.categoryRepo.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count categories: %w", op, err)
	}

	return &entity.Page[entity.Category]{
		Items:   cats,
		Page:    page,
		PerPage: perPage,
		Total:   total,
	}, nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, userID int64, name, description, color string) (*entity.Category, error) {
	const op = "usecase.CategoryUseCase.Create"

	if color == "" {
		color = entity.DefaultCategoryColor
	}

	cat, err := uc.categoryRepo.Create(ctx, userID, name, description, color)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create category: %w", op, err)
	}

	return cat, nil
}

func (uc *CategoryUseCase) Get(ctx context.Context, userID, id int64) (*entity.Category, error) {
	const op = "usecase.CategoryUseCase.Get"

	cat, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get category: %w", op, err)
	}

	if !entity.Owns(userID, cat) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrPermissionDenied)
	}

	links, err := uc.linkRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load category links: %w", op, err)
	}
	cat.Links = links

	return cat, nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, userID, id int64, changes entity.CategoryChanges) (*entity.Category, error) {
	const op = "usecase.CategoryUseCase.Update"

	cat, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get category: %w", op, err)
	}

	if !entity.Owns(userID, cat) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrPermissionDenied)
	}

	if changes == (entity.CategoryChanges{}) {
		return cat, nil
	}

	cat, err = uc.categoryRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update category: %w", op, err)
	}

	return cat, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, userID, id int64) error {
	const op = "usecase.CategoryUseCase.Delete"

	cat, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: failed to get category: %w", op, err)
	}

	if !entity.Owns(userID, cat) {
		return fmt.Errorf("%s: %w", op, entity.ErrPermissionDenied)
	}

	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete category: %w", op, err)
	}

	return nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/linkdeck/linkdeck/internal/entity"
)

type LinkUseCase struct {
	linkRepo     linkRepository
	categoryRepo categoryRepository
}

func NewLinkUseCase(linkRepo linkRepository, categoryRepo categoryRepository) *LinkUseCase {
	return &LinkUseCase{
		linkRepo:     linkRepo,
		categoryRepo: categoryRepo,
	}
}

func (uc *LinkUseCase) List(ctx context.Context, userID int64, page, perPage int, categoryID *int64) (*entity.Page[entity.ReferralLink], error) {
	const op = "usecase.LinkUseCase.List"

	page, perPage = normalizePage(page, perPage, defaultLinkPageSize)

	links, err := uc.linkRepo.List(ctx, userID, categoryID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list referral links: %w", op, err)
	}

	total, err := uc.linkRepo.Count(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count referral links: %w", op, err)
	}

	return &entity.Page[entity.ReferralLink]{
		Items:   links,
		Page:    page,
		PerPage: perPage,
		Total:   total,
	}, nil
}

// Create stores a new referral link after confirming the target category is
// owned by the acting user. A category that is missing or owned by someone
// else fails with ErrCategoryNotFound either way.
func (uc *LinkUseCase) Create(ctx context.Context, userID, categoryID int64, name, url, description string) (*entity.ReferralLink, error) {
	const op = "usecase.LinkUseCase.Create"

	if _, err := uc.categoryRepo.GetOwned(ctx, categoryID, userID); err != nil {
		return nil, fmt.Errorf("%s: failed to verify category ownership: %w", op, err)
	}

	link, err := uc.linkRepo.Create(ctx, userID, categoryID, name, url, description)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create referral link: %w", op, err)
	}

	return link, nil
}

func (uc *LinkUseCase) Get(ctx context.Context, userID, id int64) (*entity.ReferralLink, error) {
	const op = "usecase.LinkUseCase.Get"

	link, err := uc.linkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get referral link: %w", op, err)
	}

	if !entity.Owns(userID, link) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrPermissionDenied)
	}

	return link, nil
}

func (uc *LinkUseCase) Update(ctx context.Context, userID, id int64, changes entity.LinkChanges) (*entity.ReferralLink, error) {
	const op = "usecase.LinkUseCase.Update"

	link, err := uc.linkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get referral link: %w", op, err)
	}

	if !entity.Owns(userID, link) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrPermissionDenied)
	}

	if changes.CategoryID != nil {
		if _, err := uc.categoryRepo.GetOwned(ctx, *changes.CategoryID, userID); err != nil {
			return nil, fmt.Errorf("%s: failed to verify category ownership: %w", op, err)
		}
	}

	if changes == (entity.LinkChanges{}) {
		return link, nil
	}

	link, err = uc.linkRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update referral link: %w", op, err)
	}

	return link, nil
}

func (uc *LinkUseCase) Delete(ctx context.Context, userID, id int64) error {
	const op = "usecase.LinkUseCase.Delete"

	link, err := uc.linkRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: failed to get referral link: %w", op, err)
	}

	if !entity.Owns(userID, link) {
		return fmt.Errorf("%s: %w", op, entity.ErrPermissionDenied)
	}

	if err := uc.linkRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete referral link: %w", op, err)
	}

	return nil
}

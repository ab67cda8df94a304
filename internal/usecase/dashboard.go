package usecase

import (
	"context"
	"fmt"

	"github.com/linkdeck/linkdeck/internal/entity"
)

const (
	recentCategoriesLimit = 6
	recentLinksLimit      = 5
	topLinksLimit         = 5
)

type DashboardUseCase struct {
	categoryRepo categoryRepository
	linkRepo     linkRepository
}

func NewDashboardUseCase(categoryRepo categoryRepository, linkRepo linkRepository) *DashboardUseCase {
	return &DashboardUseCase{
		categoryRepo: categoryRepo,
		linkRepo:     linkRepo,
	}
}

// Summary gathers one user's aggregate snapshot. The six reads are
// independent point-in-time queries; no transaction ties them together.
func (uc *DashboardUseCase) Summary(ctx context.Context, userID int64) (*entity.Dashboard, error) {
	const op = "usecase.DashboardUseCase.Summary"

	totalCategories, err := uc.categoryRepo.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count categories: %w", op, err)
	}

	totalLinks, err := uc.linkRepo.Count(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count referral links: %w", op, err)
	}

	totalClicks, err := uc.linkRepo.SumClicks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to sum click counts: %w", op, err)
	}

	recentCategories, err := uc.categoryRepo.Recent(ctx, userID, recentCategoriesLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load recent categories: %w", op, err)
	}

	recentLinks, err := uc.linkRepo.Recent(ctx, userID, recentLinksLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load recent referral links: %w", op, err)
	}

	topLinks, err := uc.linkRepo.TopByClicks(ctx, userID, topLinksLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load top referral links: %w", op, err)
	}

	return &entity.Dashboard{
		TotalCategories:  totalCategories,
		TotalLinks:       totalLinks,
		TotalClicks:      totalClicks,
		RecentCategories: recentCategories,
		RecentLinks:      recentLinks,
		TopLinks:         topLinks,
	}, nil
}

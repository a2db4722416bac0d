// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/streak/internal/core/domain"
)

// ContributionSource defines the upstream that knows a user's contribution history.
//
//go:generate mockgen -source=contribution_source.go -destination=mocks/mock_contribution_source.go -package=mocks
type ContributionSource interface {
	// ContributionYears returns the years in which the user has any activity.
	// It fails with domain.ErrUserNotFound when the account does not exist.
	ContributionYears(ctx context.Context, login string) ([]int, error)

	// Calendars returns the contribution calendar of each requested year.
	Calendars(ctx context.Context, login string, years []int) (map[int]domain.YearCalendar, error)
}

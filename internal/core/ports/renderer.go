package ports

import "go.trai.ch/streak/internal/core/domain"

// CardRenderer turns streak statistics into a card. Implementations are pure:
// the same input always yields the same output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type CardRenderer interface {
	// RenderStreak renders the streak card of username.
	RenderStreak(username string, stats domain.StreakResult, opts domain.CardOptions) (string, error)

	// RenderError renders an error card with a primary and a secondary message.
	RenderError(message, secondary string, opts domain.CardOptions) string
}

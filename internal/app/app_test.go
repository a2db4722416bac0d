package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/streak/internal/adapters/cache"
	"go.trai.ch/streak/internal/app"
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, time.January, 4, 9, 0, 0, 0, time.UTC)

type fixture struct {
	app      *app.App
	source   *mocks.MockContributionSource
	renderer *mocks.MockCardRenderer
	logger   *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		source:   mocks.NewMockContributionSource(ctrl),
		renderer: mocks.NewMockCardRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	f.app = app.New(
		f.source,
		f.renderer,
		cache.NewResultCache[domain.StreakResult](cache.DefaultResultTTL, 0, nil),
		cache.NewRenderCache(cache.DefaultRenderTTL, 0, nil),
		f.logger,
	).WithClock(func() time.Time { return fixedNow })
	return f
}

func calendar(days ...domain.Day) domain.YearCalendar {
	return domain.YearCalendar{Weeks: []domain.Week{{Days: days}}}
}

func TestApp_Stats(t *testing.T) {
	f := newFixture(t)

	f.source.EXPECT().ContributionYears(gomock.Any(), "octocat").Return([]int{2024, 2023}, nil)
	f.source.EXPECT().Calendars(gomock.Any(), "octocat", []int{2024, 2023}).Return(map[int]domain.YearCalendar{
		2023: calendar(domain.Day{Date: "2023-12-31", Count: 4}),
		2024: calendar(
			domain.Day{Date: "2024-01-01", Count: 1},
			domain.Day{Date: "2024-01-02", Count: 2},
			domain.Day{Date: "2024-01-03", Count: 3},
			domain.Day{Date: "2024-01-04", Count: 0},
		),
	}, nil)

	got, err := f.app.Stats(context.Background(), " octocat ")
	require.NoError(t, err)

	assert.Equal(t, domain.StreakResult{
		CurrentStreak:      4,
		LongestStreak:      4,
		TotalContributions: 10,
		FirstContribution:  "Dec 31, 2023",
		CurrentStreakStart: "Dec 31",
		CurrentStreakEnd:   "Jan 3",
		LongestStreakStart: "Dec 31",
		LongestStreakEnd:   "Jan 3",
	}, got)
}

func TestApp_Stats_NoActivity(t *testing.T) {
	f := newFixture(t)

	// Calendars must not be queried when there are no years.
	f.source.EXPECT().ContributionYears(gomock.Any(), "ghost").Return(nil, nil)

	got, err := f.app.Stats(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, domain.StreakResult{}, got)
}

func TestApp_Stats_MissingUsername(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Stats(context.Background(), "  ")
	require.ErrorIs(t, err, domain.ErrMissingUsername)
}

func TestApp_Stats_Errors(t *testing.T) {
	t.Run("years", func(t *testing.T) {
		f := newFixture(t)
		f.source.EXPECT().ContributionYears(gomock.Any(), "nobody").
			Return(nil, zerr.Wrap(domain.ErrUserNotFound, "user not present"))

		_, err := f.app.Stats(context.Background(), "nobody")
		require.ErrorIs(t, err, domain.ErrUserNotFound)

		var z *zerr.Error
		require.ErrorAs(t, err, &z)
		assert.Equal(t, "nobody", z.Metadata()["username"])
	})

	t.Run("calendars", func(t *testing.T) {
		f := newFixture(t)
		f.source.EXPECT().ContributionYears(gomock.Any(), "octocat").Return([]int{2024}, nil)
		f.source.EXPECT().Calendars(gomock.Any(), "octocat", []int{2024}).
			Return(nil, errors.Join(domain.ErrUpstreamQuery, errors.New("boom")))

		_, err := f.app.Stats(context.Background(), "octocat")
		require.ErrorIs(t, err, domain.ErrUpstreamQuery)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("failures are not cached", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.source.EXPECT().ContributionYears(gomock.Any(), "octocat").
				Return(nil, zerr.Wrap(domain.ErrUpstreamQuery, "timeout")),
			f.source.EXPECT().ContributionYears(gomock.Any(), "octocat").Return(nil, nil),
		)

		_, err := f.app.Stats(context.Background(), "octocat")
		require.Error(t, err)

		_, err = f.app.Stats(context.Background(), "octocat")
		require.NoError(t, err)
	})
}

func TestApp_Stats_ReusesFreshResult(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().ContributionYears(gomock.Any(), "octocat").Return(nil, nil).Times(1)

	for range 3 {
		_, err := f.app.Stats(context.Background(), "octocat")
		require.NoError(t, err)
	}
}

func TestApp_Stats_CoalescesConcurrentCalls(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.source.EXPECT().ContributionYears(gomock.Any(), "octocat").
			DoAndReturn(func(context.Context, string) ([]int, error) {
				time.Sleep(time.Second)
				return []int{2024}, nil
			}).Times(1)
		f.source.EXPECT().Calendars(gomock.Any(), "octocat", []int{2024}).
			Return(map[int]domain.YearCalendar{2024: calendar(domain.Day{Date: "2024-01-03", Count: 7})}, nil).
			Times(1)

		const callers = 5
		results := make([]domain.StreakResult, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Go(func() {
				res, err := f.app.Stats(context.Background(), "octocat")
				assert.NoError(t, err)
				results[i] = res
			})
		}
		wg.Wait()

		for _, res := range results {
			assert.Equal(t, results[0], res)
		}
		assert.Equal(t, 7, results[0].TotalContributions)
	})
}

func TestApp_Card(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().ContributionYears(gomock.Any(), "octocat").Return(nil, nil).Times(1)

	dark := domain.CardOptions{Theme: "dark"}
	f.renderer.EXPECT().RenderStreak("octocat", domain.StreakResult{}, dark).Return("<svg>dark</svg>", nil).Times(1)
	f.renderer.EXPECT().RenderStreak("octocat", domain.StreakResult{}, domain.CardOptions{}).Return("<svg>default</svg>", nil).Times(1)

	out, err := f.app.Card(context.Background(), "octocat", dark)
	require.NoError(t, err)
	assert.Equal(t, "<svg>dark</svg>", out)

	// Blank fields do not change the render key.
	out, err = f.app.Card(context.Background(), "octocat", domain.CardOptions{Theme: "dark", TitleColor: ""})
	require.NoError(t, err)
	assert.Equal(t, "<svg>dark</svg>", out)

	out, err = f.app.Card(context.Background(), "octocat", domain.CardOptions{})
	require.NoError(t, err)
	assert.Equal(t, "<svg>default</svg>", out)
}

func TestApp_Card_SourceError(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().ContributionYears(gomock.Any(), "nobody").
		Return(nil, zerr.Wrap(domain.ErrUserNotFound, "user not present"))

	_, err := f.app.Card(context.Background(), "nobody", domain.CardOptions{})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestApp_Card_RenderError(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().ContributionYears(gomock.Any(), "octocat").Return(nil, nil)
	f.renderer.EXPECT().RenderStreak("octocat", gomock.Any(), gomock.Any()).
		Return("", zerr.Wrap(errors.Join(domain.ErrRenderFailed, errors.New("template failed")), "failed to render streak card")).
		Times(2)

	for range 2 {
		_, err := f.app.Card(context.Background(), "octocat", domain.CardOptions{})
		require.ErrorIs(t, err, domain.ErrRenderFailed)
	}
}

func TestApp_ErrorCard(t *testing.T) {
	f := newFixture(t)
	opts := domain.CardOptions{Theme: "radical"}
	f.renderer.EXPECT().
		RenderError("Could not fetch user", "Make sure the provided username is not an organization", opts).
		Return("<svg>error</svg>")

	out := f.app.ErrorCard(zerr.Wrap(domain.ErrUserNotFound, "user not present"), opts)
	assert.Equal(t, "<svg>error</svg>", out)
}

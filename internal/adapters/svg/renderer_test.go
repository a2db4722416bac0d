package svg_test

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/streak/internal/adapters/svg"
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/zerr"
)

func wellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err)
	}
}

func TestRenderStreak(t *testing.T) {
	r := svg.NewRenderer()
	stats := domain.StreakResult{
		CurrentStreak:      3,
		LongestStreak:      12,
		TotalContributions: 1234,
		FirstContribution:  "Mar 4, 2019",
		CurrentStreakStart: "Jan 1",
		CurrentStreakEnd:   "Jan 3",
		LongestStreakStart: "Jun 5",
		LongestStreakEnd:   "Jun 5",
	}

	out, err := r.RenderStreak("octocat", stats, domain.CardOptions{})
	require.NoError(t, err)
	wellFormed(t, out)

	assert.Contains(t, out, `width="495" height="195"`)
	assert.Contains(t, out, `>1,234<`)
	assert.Contains(t, out, `Mar 4, 2019 - Present`)
	assert.Contains(t, out, `>3<`)
	assert.Contains(t, out, `>12<`)
	assert.Contains(t, out, `Jan 1 - Jan 3`)
	assert.Contains(t, out, `>Jun 5<`)
	assert.Contains(t, out, `fill="#fffefe" stroke="#e4e2e2"`)
}

func TestRenderStreak_EmptyStats(t *testing.T) {
	out, err := svg.NewRenderer().RenderStreak("newbie", domain.StreakResult{}, domain.CardOptions{})
	require.NoError(t, err)
	wellFormed(t, out)

	assert.Contains(t, out, `class="stat">0<`)
	assert.NotContains(t, out, "Present")
}

func TestRenderStreak_Options(t *testing.T) {
	out, err := svg.NewRenderer().RenderStreak("octocat", domain.StreakResult{}, domain.CardOptions{
		Theme:      "dark",
		HideBorder: "TRUE",
		TextColor:  "ff0000",
		BgColor:    "not-a-colour",
	})
	require.NoError(t, err)

	assert.Contains(t, out, `fill="#151515" stroke="none"`)
	assert.Contains(t, out, `fill: #ff0000`)
	assert.NotContains(t, out, "not-a-colour")
}

func TestRenderStreak_EscapesUsername(t *testing.T) {
	out, err := svg.NewRenderer().RenderStreak(`a<b&"c"`, domain.StreakResult{}, domain.CardOptions{})
	require.NoError(t, err)
	wellFormed(t, out)
	assert.Contains(t, out, `a&lt;b&amp;&#34;c&#34;`)
}

func TestRenderError(t *testing.T) {
	out := svg.NewRenderer().RenderError("Could not fetch user", "<script>", domain.CardOptions{Theme: "radical"})
	wellFormed(t, out)

	assert.Contains(t, out, ">Could not fetch user<")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, `fill="#141321"`)
}

func TestResolveColors(t *testing.T) {
	tests := []struct {
		name string
		opts domain.CardOptions
		want svg.Theme
	}{
		{
			name: "default",
			opts: domain.CardOptions{},
			want: svg.Theme{Title: "#2f80ed", Text: "#434d58", Background: "#fffefe", Border: "#e4e2e2"},
		},
		{
			name: "unknown theme falls back",
			opts: domain.CardOptions{Theme: "nope"},
			want: svg.Theme{Title: "#2f80ed", Text: "#434d58", Background: "#fffefe", Border: "#e4e2e2"},
		},
		{
			name: "overrides",
			opts: domain.CardOptions{Theme: "dark", TitleColor: "abc", BorderColor: "11223344"},
			want: svg.Theme{Title: "#abc", Text: "#9f9f9f", Background: "#151515", Border: "#11223344"},
		},
		{
			name: "invalid overrides ignored",
			opts: domain.CardOptions{TitleColor: "#abc", TextColor: "12345", BgColor: "red"},
			want: svg.Theme{Title: "#2f80ed", Text: "#434d58", Background: "#fffefe", Border: "#e4e2e2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svg.ResolveColors(tt.opts))
		})
	}
}

func TestFormatRange(t *testing.T) {
	assert.Empty(t, svg.FormatRange("", "Jan 2"))
	assert.Empty(t, svg.FormatRange("Jan 2", ""))
	assert.Equal(t, "Jan 2", svg.FormatRange("Jan 2", "Jan 2"))
	assert.Equal(t, "Jan 2 - Feb 3", svg.FormatRange("Jan 2", "Feb 3"))
}

func TestThemes(t *testing.T) {
	assert.Contains(t, svg.Themes(), domain.DefaultTheme)
	assert.Contains(t, svg.Themes(), "dark")
}

func TestRenderFailure_IsRenderFailed(t *testing.T) {
	cause := errors.New("template: streak: executing")
	err := svg.RenderFailure(cause, "octocat")

	require.ErrorIs(t, err, domain.ErrRenderFailed)
	require.ErrorIs(t, err, cause)

	var z *zerr.Error
	require.ErrorAs(t, err, &z)
	assert.Equal(t, "octocat", z.Metadata()["username"])
}

func TestRenderStreak_Golden(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		stats      domain.StreakResult
		opts       domain.CardOptions
		goldenName string
	}{
		{
			name:     "default theme",
			username: "octocat",
			stats: domain.StreakResult{
				CurrentStreak:      3,
				LongestStreak:      12,
				TotalContributions: 1234,
				FirstContribution:  "Mar 4, 2019",
				CurrentStreakStart: "Jan 1",
				CurrentStreakEnd:   "Jan 3",
				LongestStreakStart: "Jun 5",
				LongestStreakEnd:   "Jun 5",
			},
			goldenName: "streak_default",
		},
		{
			name:       "dark theme without border",
			username:   "newbie",
			opts:       domain.CardOptions{Theme: "dark", HideBorder: "true"},
			goldenName: "streak_dark_hidden_border",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svg.NewRenderer().RenderStreak(tt.username, tt.stats, tt.opts)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(out))
		})
	}
}

func TestRenderError_Golden(t *testing.T) {
	out := svg.NewRenderer().RenderError(
		"Could not find a user with that name.",
		"Check the username & try again",
		domain.CardOptions{Theme: "radical"},
	)

	g := goldie.New(t)
	g.Assert(t, "error_radical", []byte(out))
}

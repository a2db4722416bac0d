// Package svg renders streak and error cards as SVG documents.
package svg

import (
	"errors"
	"html"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize"
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports"
	"go.trai.ch/zerr"
)

var funcs = template.FuncMap{"esc": html.EscapeString}

var (
	streakCard = template.Must(template.New("streak").Funcs(funcs).Parse(streakCardTemplate))
	errorCard  = template.Must(template.New("error").Funcs(funcs).Parse(errorCardTemplate))
)

// Renderer implements ports.CardRenderer.
type Renderer struct{}

var _ ports.CardRenderer = (*Renderer)(nil)

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

type streakCardData struct {
	Username     string
	Colors       Theme
	Stroke       string
	Total        string
	TotalRange   string
	Current      int
	CurrentRange string
	Longest      int
	LongestRange string
}

type errorCardData struct {
	Colors    Theme
	Stroke    string
	Message   string
	Secondary string
}

// RenderStreak renders the three-column streak card of username.
func (r *Renderer) RenderStreak(username string, stats domain.StreakResult, opts domain.CardOptions) (string, error) {
	colors := ResolveColors(opts)

	data := streakCardData{
		Username:     username,
		Colors:       colors,
		Stroke:       stroke(colors, opts),
		Total:        humanize.Comma(int64(stats.TotalContributions)),
		Current:      stats.CurrentStreak,
		CurrentRange: FormatRange(stats.CurrentStreakStart, stats.CurrentStreakEnd),
		Longest:      stats.LongestStreak,
		LongestRange: FormatRange(stats.LongestStreakStart, stats.LongestStreakEnd),
	}
	if stats.FirstContribution != "" {
		data.TotalRange = stats.FirstContribution + " - Present"
	}

	var b strings.Builder
	if err := streakCard.Execute(&b, data); err != nil {
		return "", renderFailure(err, username)
	}
	return b.String(), nil
}

func renderFailure(cause error, username string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrRenderFailed, cause), "failed to render streak card"), "username", username)
}

// RenderError renders an error card. It never fails.
func (r *Renderer) RenderError(message, secondary string, opts domain.CardOptions) string {
	colors := ResolveColors(opts)

	var b strings.Builder
	err := errorCard.Execute(&b, errorCardData{
		Colors:    colors,
		Stroke:    stroke(colors, opts),
		Message:   message,
		Secondary: secondary,
	})
	if err != nil {
		// Only reachable on a writer failure, which strings.Builder never reports.
		return `<svg xmlns="http://www.w3.org/2000/svg" width="495" height="120"></svg>`
	}
	return b.String()
}

// FormatRange renders a streak range. Equal bounds collapse to one date and a
// missing bound yields an empty string.
func FormatRange(start, end string) string {
	switch {
	case start == "" || end == "":
		return ""
	case start == end:
		return start
	default:
		return start + " - " + end
	}
}

func stroke(colors Theme, opts domain.CardOptions) string {
	if opts.BorderHidden() {
		return "none"
	}
	return colors.Border
}

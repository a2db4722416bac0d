package svg

import (
	"regexp"

	"go.trai.ch/streak/internal/core/domain"
)

// Theme is a set of card colours as hex values without the leading '#'.
type Theme struct {
	Title      string
	Text       string
	Background string
	Border     string
}

var themes = map[string]Theme{
	domain.DefaultTheme: {Title: "2f80ed", Text: "434d58", Background: "fffefe", Border: "e4e2e2"},
	"dark":              {Title: "ffffff", Text: "9f9f9f", Background: "151515", Border: "e4e2e2"},
	"radical":           {Title: "fe428e", Text: "a9fef7", Background: "141321", Border: "e4e2e2"},
	"merko":             {Title: "abd200", Text: "68b587", Background: "0a0f0b", Border: "e4e2e2"},
	"gruvbox":           {Title: "fabd2f", Text: "8ec07c", Background: "282828", Border: "e4e2e2"},
	"tokyonight":        {Title: "70a5fd", Text: "38bdae", Background: "1a1b27", Border: "e4e2e2"},
	"onedark":           {Title: "e4bf7a", Text: "df6d74", Background: "282c34", Border: "e4e2e2"},
	"cobalt":            {Title: "e683d9", Text: "75eeb2", Background: "193549", Border: "e4e2e2"},
	"synthwave":         {Title: "e2e9ec", Text: "e5289e", Background: "2b213a", Border: "e4e2e2"},
	"dracula":           {Title: "ff6e96", Text: "f8f8f2", Background: "282a36", Border: "e4e2e2"},
	"transparent":       {Title: "006aff", Text: "417e87", Background: "ffffff00", Border: "e4e2e2"},
}

var hexColor = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Themes returns the names of the built-in themes.
func Themes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

// ResolveColors picks the requested theme, falling back to the default one, and
// applies valid colour overrides. The result carries '#'-prefixed values.
func ResolveColors(opts domain.CardOptions) Theme {
	theme, ok := themes[opts.ThemeName()]
	if !ok {
		theme = themes[domain.DefaultTheme]
	}

	override(&theme.Title, opts.TitleColor)
	override(&theme.Text, opts.TextColor)
	override(&theme.Background, opts.BgColor)
	override(&theme.Border, opts.BorderColor)

	return Theme{
		Title:      "#" + theme.Title,
		Text:       "#" + theme.Text,
		Background: "#" + theme.Background,
		Border:     "#" + theme.Border,
	}
}

func override(target *string, value string) {
	if hexColor.MatchString(value) {
		*target = value
	}
}

package domain

import "strings"

// DefaultTheme is used when no theme is requested.
const DefaultTheme = "default"

// CardOptions carries the raw customization parameters of a card request.
// Colours are hex values without the leading '#'.
type CardOptions struct {
	Theme       string
	HideBorder  string
	TitleColor  string
	TextColor   string
	BgColor     string
	BorderColor string
}

// Params returns the options as an option bag keyed by query parameter name.
func (o CardOptions) Params() map[string]any {
	return map[string]any{
		"theme":        o.Theme,
		"hide_border":  o.HideBorder,
		"title_color":  o.TitleColor,
		"text_color":   o.TextColor,
		"bg_color":     o.BgColor,
		"border_color": o.BorderColor,
	}
}

// BorderHidden reports whether hide_border was set to a true value.
func (o CardOptions) BorderHidden() bool {
	return ParseBool(o.HideBorder)
}

// ThemeName returns the requested theme or the default one.
func (o CardOptions) ThemeName() string {
	if o.Theme == "" {
		return DefaultTheme
	}
	return o.Theme
}

// ParseBool interprets "true" and "false" case-insensitively; anything else is false.
func ParseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

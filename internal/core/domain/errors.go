package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrUserNotFound is returned when the upstream has no such account or no contribution collection.
	ErrUserNotFound = zerr.New("could not fetch user")

	// ErrMissingUsername is returned when a request does not name a user.
	ErrMissingUsername = zerr.New("missing username parameter")

	// ErrUpstreamQuery is returned when the upstream GraphQL query fails at the network or GraphQL level.
	ErrUpstreamQuery = zerr.New("could not fetch streak data")

	// ErrTokenNotConfigured is returned when no upstream credential is available.
	ErrTokenNotConfigured = zerr.New("GitHub token is not configured")

	// ErrCircuitOpen is returned while the upstream circuit breaker rejects calls.
	ErrCircuitOpen = zerr.New("upstream temporarily unavailable")

	// ErrRenderFailed is returned when a card cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render card")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfigValue is returned when a config or environment value is malformed.
	ErrInvalidConfigValue = zerr.New("invalid configuration value")
)

const (
	genericFailure = "Something went wrong"

	secondaryUserNotFound   = "Make sure the provided username is not an organization"
	secondaryUpstream       = "Please try again later"
	secondaryMissingUser    = "Missing `username` parameter"
	secondaryTokenNotConfig = "GitHub token is not configured"
)

// SecondaryMessage returns the hint shown under the primary message of an error card.
func SecondaryMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingUsername):
		return secondaryMissingUser
	case errors.Is(err, ErrTokenNotConfigured):
		return secondaryTokenNotConfig
	case errors.Is(err, ErrUserNotFound):
		return secondaryUserNotFound
	case errors.Is(err, ErrUpstreamQuery), errors.Is(err, ErrCircuitOpen):
		return secondaryUpstream
	default:
		return ""
	}
}

// CardMessages returns the primary and secondary lines of the error card shown for err.
func CardMessages(err error) (string, string) {
	switch {
	case errors.Is(err, ErrMissingUsername), errors.Is(err, ErrTokenNotConfigured):
		return genericFailure, SecondaryMessage(err)
	case errors.Is(err, ErrUserNotFound):
		return "Could not fetch user", SecondaryMessage(err)
	case errors.Is(err, ErrCircuitOpen):
		return "GitHub is temporarily unavailable", SecondaryMessage(err)
	case errors.Is(err, ErrUpstreamQuery):
		return "Could not fetch streak data", SecondaryMessage(err)
	default:
		if msg := PrimaryMessage(err); msg != "" {
			return msg, ""
		}
		return genericFailure, ""
	}
}

// PrimaryMessage returns the outermost human readable message of err.
func PrimaryMessage(err error) string {
	if err == nil {
		return ""
	}
	var z *zerr.Error
	if errors.As(err, &z) && z.Message() != "" {
		return z.Message()
	}
	return err.Error()
}

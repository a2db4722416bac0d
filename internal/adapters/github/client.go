// Package github implements ports.ContributionSource against the GitHub GraphQL API.
package github

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.trai.ch/streak/internal/adapters/metrics"
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports"
	"go.trai.ch/zerr"
)

// BreakerName names the circuit breaker guarding the GraphQL endpoint.
const BreakerName = "github-graphql"

const (
	opYears     = "years"
	opCalendars = "calendars"

	maxResponseBytes = 16 << 20
)

// Observer receives upstream request and breaker observations.
type Observer interface {
	ObserveUpstream(operation string, elapsed time.Duration, err error)
	BreakerState(name string, state int)
}

// Client queries contribution data from the GitHub GraphQL API.
type Client struct {
	url        string
	httpClient *http.Client
	tokens     *TokenPool
	breaker    *gobreaker.CircuitBreaker[response]
	observer   Observer
	logger     ports.Logger
}

var _ ports.ContributionSource = (*Client)(nil)

type response struct {
	status int
	body   []byte
}

// errServerStatus marks responses that count as breaker failures.
var errServerStatus = errors.New("upstream server error")

// NewClient creates a Client. httpClient carries the request timeout.
func NewClient(cfg domain.UpstreamConfig, httpClient *http.Client, observer Observer, logger ports.Logger) *Client {
	c := &Client{
		url:        cfg.GraphQLURL,
		httpClient: httpClient,
		tokens:     NewTokenPool(cfg.Tokens),
		observer:   observer,
		logger:     logger,
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = domain.DefaultBreakerFailures
	}
	observer.BreakerState(BreakerName, breakerStateValue(gobreaker.StateClosed))
	c.breaker = gobreaker.NewCircuitBreaker[response](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			c.observer.BreakerState(name, breakerStateValue(to))
		},
	})
	return c
}

// ContributionYears returns the years in which login has any activity.
func (c *Client) ContributionYears(ctx context.Context, login string) ([]int, error) {
	user, err := c.queryUser(ctx, opYears, login, yearsQuery)
	if err != nil {
		return nil, err
	}

	var payload yearsPayload
	if err := json.Unmarshal(user, &payload); err != nil {
		return nil, upstreamError(err, "failed to decode contribution years", opYears)
	}
	return payload.ContributionsCollection.ContributionYears, nil
}

// Calendars returns the contribution calendar of each requested year. Years the
// upstream omits are absent from the result.
func (c *Client) Calendars(ctx context.Context, login string, years []int) (map[int]domain.YearCalendar, error) {
	calendars := make(map[int]domain.YearCalendar, len(years))
	if len(years) == 0 {
		return calendars, nil
	}

	user, err := c.queryUser(ctx, opCalendars, login, calendarsQuery(years))
	if err != nil {
		return nil, err
	}

	var collections map[string]collectionPayload
	if err := json.Unmarshal(user, &collections); err != nil {
		return nil, upstreamError(err, "failed to decode contribution calendars", opCalendars)
	}

	for _, year := range years {
		collection, ok := collections[yearAlias(year)]
		if !ok || collection.ContributionCalendar == nil {
			continue
		}
		calendars[year] = toYearCalendar(collection.ContributionCalendar)
	}
	return calendars, nil
}

func toYearCalendar(payload *calendarPayload) domain.YearCalendar {
	calendar := domain.YearCalendar{Weeks: make([]domain.Week, 0, len(payload.Weeks))}
	for _, week := range payload.Weeks {
		days := make([]domain.Day, 0, len(week.ContributionDays))
		for _, day := range week.ContributionDays {
			days = append(days, domain.Day{Date: day.Date, Count: day.ContributionCount})
		}
		calendar.Weeks = append(calendar.Weeks, domain.Week{Days: days})
	}
	return calendar
}

// queryUser runs query for login and returns the raw user object.
func (c *Client) queryUser(ctx context.Context, operation, login, query string) (json.RawMessage, error) {
	token, err := c.tokens.Next()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(graphQLRequest{
		Query:     query,
		Variables: map[string]any{"login": login},
	})
	if err != nil {
		return nil, upstreamError(err, "failed to encode graphql request", operation)
	}

	start := time.Now()
	resp, err := c.breaker.Execute(func() (response, error) {
		return c.post(ctx, token, payload)
	})
	c.observer.ObserveUpstream(operation, time.Since(start), err)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, zerr.With(zerr.Wrap(domain.ErrCircuitOpen, err.Error()), "operation", operation)
		}
		return nil, zerr.With(upstreamError(err, "graphql request failed", operation), "username", login)
	}

	if resp.status != http.StatusOK {
		statusErr := zerr.With(upstreamError(errors.New(http.StatusText(resp.status)), "graphql request rejected", operation), "status_code", resp.status)
		return nil, zerr.With(statusErr, "username", login)
	}

	return decodeUser(resp.body, operation, login)
}

func decodeUser(body []byte, operation, login string) (json.RawMessage, error) {
	var gql graphQLResponse
	if err := json.Unmarshal(body, &gql); err != nil {
		return nil, upstreamError(err, "failed to decode graphql response", operation)
	}

	if present(gql.Data) {
		var envelope userEnvelope
		if err := json.Unmarshal(gql.Data, &envelope); err != nil {
			return nil, upstreamError(err, "failed to decode graphql data", operation)
		}
		if present(envelope.User) {
			return envelope.User, nil
		}
		if envelope.Data != nil && present(envelope.Data.User) {
			return envelope.Data.User, nil
		}
	}

	for _, gqlErr := range gql.Errors {
		if gqlErr.Type != "NOT_FOUND" {
			return nil, zerr.With(upstreamError(errors.New(gqlErr.Message), "graphql query failed", operation), "username", login)
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrUserNotFound, "user not present in graphql response"), "username", login)
}

// post sends one GraphQL request. Transport failures and 5xx responses are
// returned as errors so the breaker counts them; other statuses are returned as
// responses.
func (c *Client) post(ctx context.Context, token string, payload []byte) (response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return response{}, err
	}
	req.Header.Set("Authorization", "bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return response{}, err
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return response{}, zerr.With(errServerStatus, "status_code", resp.StatusCode)
	}
	return response{status: resp.StatusCode, body: body}, nil
}

func upstreamError(cause error, msg, operation string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrUpstreamQuery, cause), msg), "operation", operation)
}

func breakerStateValue(state gobreaker.State) int {
	switch state {
	case gobreaker.StateHalfOpen:
		return metrics.BreakerHalfOpen
	case gobreaker.StateOpen:
		return metrics.BreakerOpen
	default:
		return metrics.BreakerClosed
	}
}

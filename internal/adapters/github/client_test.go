package github_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/streak/internal/adapters/github"
	"go.trai.ch/streak/internal/adapters/metrics"
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const testURL = "https://api.github.test/graphql"

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

type fakeObserver struct {
	mu       sync.Mutex
	calls    map[string]int
	failures int
	states   []int
}

func (o *fakeObserver) ObserveUpstream(operation string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.calls == nil {
		o.calls = map[string]int{}
	}
	o.calls[operation]++
	if err != nil {
		o.failures++
	}
}

func (o *fakeObserver) BreakerState(_ string, state int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.states = append(o.states, state)
}

type capturedRequest struct {
	auth      string
	query     string
	variables map[string]any
}

func newClient(t *testing.T, cfg domain.UpstreamConfig, handler func(req capturedRequest) (*http.Response, error)) (*github.Client, *fakeObserver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	if cfg.GraphQLURL == "" {
		cfg.GraphQLURL = testURL
	}
	if cfg.Tokens == nil {
		cfg.Tokens = []string{"token-1"}
	}

	transport := &MockRoundTripper{RoundTripFunc: func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, testURL, req.URL.String())

		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		raw, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))

		return handler(capturedRequest{
			auth:      req.Header.Get("Authorization"),
			query:     body.Query,
			variables: body.Variables,
		})
	}}

	observer := &fakeObserver{}
	client := github.NewClient(cfg, &http.Client{Transport: transport}, observer, log)
	return client, observer
}

func TestClient_ContributionYears(t *testing.T) {
	client, observer := newClient(t, domain.UpstreamConfig{}, func(req capturedRequest) (*http.Response, error) {
		assert.Equal(t, "bearer token-1", req.auth)
		assert.Equal(t, "octocat", req.variables["login"])
		assert.Contains(t, req.query, "contributionYears")
		return jsonResponse(http.StatusOK, `{"data":{"user":{"contributionsCollection":{"contributionYears":[2024,2023]}}}}`), nil
	})

	years, err := client.ContributionYears(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2023}, years)
	assert.Equal(t, 1, observer.calls["years"])
}

func TestClient_NestedDataEnvelope(t *testing.T) {
	client, _ := newClient(t, domain.UpstreamConfig{}, func(capturedRequest) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"data":{"data":{"user":{"contributionsCollection":{"contributionYears":[2022]}}}}}`), nil
	})

	years, err := client.ContributionYears(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, []int{2022}, years)
}

func TestClient_UserNotFound(t *testing.T) {
	bodies := map[string]string{
		"null user":       `{"data":{"user":null}}`,
		"not found error": `{"data":{"user":null},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a User"}]}`,
		"no data":         `{"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a User"}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client, _ := newClient(t, domain.UpstreamConfig{}, func(capturedRequest) (*http.Response, error) {
				return jsonResponse(http.StatusOK, body), nil
			})

			_, err := client.ContributionYears(context.Background(), "my-org")
			require.ErrorIs(t, err, domain.ErrUserNotFound)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, "my-org", zErr.Metadata()["username"])
		})
	}
}

func TestClient_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name     string
		response *http.Response
		err      error
	}{
		{"graphql error", jsonResponse(http.StatusOK, `{"errors":[{"type":"RATE_LIMITED","message":"API rate limit exceeded"}]}`), nil},
		{"unauthorized", jsonResponse(http.StatusUnauthorized, `{"message":"Bad credentials"}`), nil},
		{"malformed body", jsonResponse(http.StatusOK, `{"data":`), nil},
		{"transport", nil, errors.New("connection reset by peer")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, observer := newClient(t, domain.UpstreamConfig{}, func(capturedRequest) (*http.Response, error) {
				return tt.response, tt.err
			})

			_, err := client.ContributionYears(context.Background(), "octocat")
			require.ErrorIs(t, err, domain.ErrUpstreamQuery)
			assert.NotErrorIs(t, err, domain.ErrUserNotFound)
			if tt.err != nil {
				assert.Equal(t, 1, observer.failures)
			}
		})
	}
}

func TestClient_Calendars(t *testing.T) {
	body := `{"data":{"user":{
		"y2023":{"contributionCalendar":{"weeks":[{"contributionDays":[
			{"date":"2023-12-30","contributionCount":0},
			{"date":"2023-12-31","contributionCount":4}]}]}},
		"y2024":{"contributionCalendar":{"weeks":[{"contributionDays":[
			{"date":"2024-01-01","contributionCount":2}]}]}}
	}}}`

	client, _ := newClient(t, domain.UpstreamConfig{}, func(req capturedRequest) (*http.Response, error) {
		assert.Contains(t, req.query, `y2023: contributionsCollection(from: "2023-01-01T00:00:00Z", to: "2023-12-31T23:59:59Z")`)
		assert.Contains(t, req.query, `y2024: contributionsCollection(from: "2024-01-01T00:00:00Z", to: "2024-12-31T23:59:59Z")`)
		assert.Contains(t, req.query, "contributionDays { date contributionCount }")
		return jsonResponse(http.StatusOK, body), nil
	})

	calendars, err := client.Calendars(context.Background(), "octocat", []int{2023, 2024, 2025})
	require.NoError(t, err)

	require.Len(t, calendars, 2)
	assert.Equal(t, domain.YearCalendar{Weeks: []domain.Week{{Days: []domain.Day{
		{Date: "2023-12-30", Count: 0},
		{Date: "2023-12-31", Count: 4},
	}}}}, calendars[2023])
	assert.Equal(t, domain.ContributionMap{"2023-12-31": 4, "2024-01-01": 2},
		domain.AggregateContributions([]int{2023, 2024, 2025}, calendars))
}

func TestClient_CalendarsWithoutYearsSkipsRequest(t *testing.T) {
	client, observer := newClient(t, domain.UpstreamConfig{}, func(capturedRequest) (*http.Response, error) {
		t.Fatal("unexpected request")
		return nil, nil
	})

	calendars, err := client.Calendars(context.Background(), "octocat", nil)
	require.NoError(t, err)
	assert.Empty(t, calendars)
	assert.Empty(t, observer.calls)
}

func TestClient_RotatesTokens(t *testing.T) {
	var seen []string
	client, _ := newClient(t, domain.UpstreamConfig{Tokens: []string{"a", "b"}}, func(req capturedRequest) (*http.Response, error) {
		seen = append(seen, strings.TrimPrefix(req.auth, "bearer "))
		return jsonResponse(http.StatusOK, `{"data":{"user":{"contributionsCollection":{"contributionYears":[]}}}}`), nil
	})

	for range 3 {
		_, err := client.ContributionYears(context.Background(), "octocat")
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a", "b", "a"}, seen)
}

func TestClient_NoToken(t *testing.T) {
	client, _ := newClient(t, domain.UpstreamConfig{Tokens: []string{}}, func(capturedRequest) (*http.Response, error) {
		t.Fatal("unexpected request")
		return nil, nil
	})

	_, err := client.ContributionYears(context.Background(), "octocat")
	require.ErrorIs(t, err, domain.ErrTokenNotConfigured)
}

func TestClient_BreakerOpensAfterConsecutiveServerErrors(t *testing.T) {
	var requests int
	client, observer := newClient(t, domain.UpstreamConfig{
		BreakerFailures: 2,
		BreakerTimeout:  time.Hour,
	}, func(capturedRequest) (*http.Response, error) {
		requests++
		return jsonResponse(http.StatusBadGateway, `bad gateway`), nil
	})

	for range 2 {
		_, err := client.ContributionYears(context.Background(), "octocat")
		require.ErrorIs(t, err, domain.ErrUpstreamQuery)
	}

	_, err := client.ContributionYears(context.Background(), "octocat")
	require.ErrorIs(t, err, domain.ErrCircuitOpen)
	assert.Equal(t, 2, requests)
	assert.Equal(t, []int{metrics.BreakerClosed, metrics.BreakerOpen}, observer.states)
}

func TestClient_UserErrorsDoNotTripBreaker(t *testing.T) {
	client, _ := newClient(t, domain.UpstreamConfig{BreakerFailures: 1}, func(capturedRequest) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"data":{"user":null}}`), nil
	})

	for range 3 {
		_, err := client.ContributionYears(context.Background(), "ghost")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	}
}

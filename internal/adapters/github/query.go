package github

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const yearsQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionYears
    }
  }
}`

// calendarsQuery builds one query fetching every year through aliased
// contributionsCollection fields named y<year>.
func calendarsQuery(years []int) string {
	var b strings.Builder
	b.WriteString("query($login: String!) {\n  user(login: $login) {\n")
	for _, year := range years {
		fmt.Fprintf(&b,
			"    %s: contributionsCollection(from: \"%d-01-01T00:00:00Z\", to: \"%d-12-31T23:59:59Z\") {\n"+
				"      contributionCalendar { weeks { contributionDays { date contributionCount } } }\n"+
				"    }\n",
			yearAlias(year), year, year)
	}
	b.WriteString("  }\n}")
	return b.String()
}

func yearAlias(year int) string {
	return "y" + strconv.Itoa(year)
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// userEnvelope accepts the user both at data.user and at data.data.user, as
// some proxies nest the payload once more.
type userEnvelope struct {
	User json.RawMessage `json:"user"`
	Data *struct {
		User json.RawMessage `json:"user"`
	} `json:"data"`
}

type yearsPayload struct {
	ContributionsCollection struct {
		ContributionYears []int `json:"contributionYears"`
	} `json:"contributionsCollection"`
}

type collectionPayload struct {
	ContributionCalendar *calendarPayload `json:"contributionCalendar"`
}

type calendarPayload struct {
	Weeks []weekPayload `json:"weeks"`
}

type weekPayload struct {
	ContributionDays []dayPayload `json:"contributionDays"`
}

type dayPayload struct {
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

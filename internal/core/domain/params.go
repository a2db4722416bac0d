package domain

import (
	"fmt"
	"slices"

	"github.com/goccy/go-json"
)

// Param is a single normalized option.
type Param struct {
	Key   string
	Value string
}

// NormalizedParams is an option bag with blank entries removed and keys sorted.
type NormalizedParams []Param

// NormalizeParams drops nil and empty-string values, coerces the remaining values
// to strings and orders the result by key. Option bags that differ only in field
// order or in blank fields normalize to equal values.
func NormalizeParams(params map[string]any) NormalizedParams {
	normalized := make(NormalizedParams, 0, len(params))
	for key, value := range params {
		if value == nil {
			continue
		}
		str := fmt.Sprint(value)
		if str == "" {
			continue
		}
		normalized = append(normalized, Param{Key: key, Value: str})
	}

	slices.SortFunc(normalized, func(a, b Param) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		default:
			return 0
		}
	})
	return normalized
}

// Map returns the params as a plain map.
func (p NormalizedParams) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, param := range p {
		m[param.Key] = param.Value
	}
	return m
}

// Key serializes the params as a JSON object with sorted keys.
func (p NormalizedParams) Key() string {
	// go-json writes map keys in sorted order.
	data, err := json.Marshal(p.Map())
	if err != nil {
		// map[string]string always marshals
		return "{}"
	}
	return string(data)
}

// RenderKey builds the render cache key of a card for username and options.
func RenderKey(username string, params NormalizedParams) string {
	return "streak-svg:" + username + ":" + params.Key()
}

// ResultKey builds the result cache key of username.
func ResultKey(username string) string {
	return "streak:" + username
}

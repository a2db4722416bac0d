package github

import (
	"sync/atomic"

	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/zerr"
)

// TokenPool hands out upstream credentials in round-robin order.
// It is safe for concurrent use.
type TokenPool struct {
	tokens []string
	next   atomic.Uint64
}

// NewTokenPool creates a pool over tokens, skipping empty values.
func NewTokenPool(tokens []string) *TokenPool {
	p := &TokenPool{}
	for _, token := range tokens {
		if token != "" {
			p.tokens = append(p.tokens, token)
		}
	}
	return p
}

// Next returns the next token.
func (p *TokenPool) Next() (string, error) {
	if len(p.tokens) == 0 {
		return "", zerr.Wrap(domain.ErrTokenNotConfigured, "no upstream credential available")
	}
	i := p.next.Add(1) - 1
	return p.tokens[i%uint64(len(p.tokens))], nil
}

// Len returns the number of tokens in the pool.
func (p *TokenPool) Len() int {
	return len(p.tokens)
}

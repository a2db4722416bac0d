package github_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/streak/internal/adapters/github"
	"go.trai.ch/streak/internal/core/domain"
)

func TestTokenPool_RoundRobin(t *testing.T) {
	pool := github.NewTokenPool([]string{"a", "", "b"})
	require.Equal(t, 2, pool.Len())

	var got []string
	for range 5 {
		token, err := pool.Next()
		require.NoError(t, err)
		got = append(got, token)
	}
	assert.Equal(t, []string{"a", "b", "a", "b", "a"}, got)
}

func TestTokenPool_Empty(t *testing.T) {
	_, err := github.NewTokenPool(nil).Next()
	require.ErrorIs(t, err, domain.ErrTokenNotConfigured)
}

func TestTokenPool_ConcurrentUseSpreadsEvenly(t *testing.T) {
	pool := github.NewTokenPool([]string{"a", "b"})

	var mu sync.Mutex
	counts := map[string]int{}
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			token, err := pool.Next()
			assert.NoError(t, err)
			mu.Lock()
			counts[token]++
			mu.Unlock()
		})
	}
	wg.Wait()

	assert.Equal(t, map[string]int{"a": 50, "b": 50}, counts)
}

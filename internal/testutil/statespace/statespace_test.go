package statespace

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasics(t *testing.T) {
	failures := []string{}
	subject := func(state int) string { return strconv.Itoa(state) }

	Test(subject).
		WithMutation("increment by one", func(state int) int {
			return state + 1
		}).
		WithMutation("increment by 10", func(state int) int {
			return state + 10
		}).
		WithInvariant("fail on initial", func(_ int, result string) bool {
			return result != "0"
		}).
		WithInvariant("never fail", func(_ int, result string) bool {
			return result != ""
		}).
		WithInvariant("fail when 11", func(state int, result string) bool {
			return result != "11"
		}).
		evaluate(func(msg string, args ...any) {
			failures = append(failures, fmt.Sprintf(msg, args...))
		})

	assert.ElementsMatch(t, []string{
		"invariant 'fail on initial' failed with mutation stack: []",
		"invariant 'fail when 11' failed with mutation stack: [increment by one, increment by 10]",
	}, failures)
}

func TestDescription(t *testing.T) {
	failures := []string{}
	Test(func(s string) int { return len(s) }).
		WithSeed(7).
		WithDescription(strconv.Quote).
		WithMutation("append a", func(s string) string { return s + "a" }).
		WithInvariant("empty", func(_ string, n int) bool { return n == 0 }).
		evaluate(func(msg string, args ...any) {
			failures = append(failures, fmt.Sprintf(msg, args...))
		})

	assert.Equal(t, []string{`invariant 'empty' failed with mutation stack: [append a] (state: "a", seed: 7)`}, failures)
}

func TestSeedIsReproducible(t *testing.T) {
	collect := func() []string {
		var states []string
		m := Test(func(s string) string { states = append(states, s); return s }).WithSeed(42)
		for _, frag := range []string{"a", "b", "c", "d"} {
			m.WithMutation(frag, func(s string) string { return s + frag })
		}
		m.Evaluate(t)
		return states
	}

	first := collect()
	assert.Len(t, first, 16)
	assert.Equal(t, first, collect())
	for _, s := range first {
		assert.LessOrEqual(t, len(s), 4, strings.Join(first, ","))
	}
}

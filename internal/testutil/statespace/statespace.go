package statespace

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
)

// Model enumerates every subset of a set of mutations, applies each subset to an initial state
// in a random order, and asserts every invariant against the subject's result.
// It is useful for inputs built from fragments (e.g. source text) where order should not matter to the invariants.
type Model[State any, Result any] struct {
	initial     func() State
	subject     func(State) Result
	describe    func(State) string
	seed        uint64
	transitions []mutation[State]
	invariants  []*invariant[State, Result]
}

type invariant[T any, TT any] struct {
	Name   string
	Assert func(T, TT) bool
}

type mutation[T any] struct {
	Name string
	Func func(T) T
}

// Test creates a new model for testing the given subject.
func Test[T any, TT any](fn func(T) TT) *Model[T, TT] {
	return &Model[T, TT]{subject: fn, seed: rand.Uint64()}
}

func (m *Model[T, TT]) WithInitialState(fn func() T) *Model[T, TT] {
	m.initial = fn
	return m
}

// WithSeed fixes the order in which mutations are applied. Failure messages include the seed.
func (m *Model[T, TT]) WithSeed(seed uint64) *Model[T, TT] {
	m.seed = seed
	return m
}

// WithDescription sets a function used to render the state in failure messages.
func (m *Model[T, TT]) WithDescription(fn func(T) string) *Model[T, TT] {
	m.describe = fn
	return m
}

// WithMutation appends a function that will be applied to the state while evaluating the model.
func (m *Model[T, TT]) WithMutation(name string, fn func(T) T) *Model[T, TT] {
	m.transitions = append(m.transitions, mutation[T]{Name: name, Func: fn})
	return m
}

// WithInvariant appends a function that must hold for every subset of mutations.
func (m *Model[T, TT]) WithInvariant(name string, fn func(state T, result TT) bool) *Model[T, TT] {
	m.invariants = append(m.invariants, &invariant[T, TT]{Name: name, Assert: fn})
	return m
}

// Evaluate executes the test.
func (m *Model[T, TT]) Evaluate(t *testing.T) {
	m.evaluate(t.Errorf)
}

func (m *Model[T, TT]) evaluate(fail func(msg string, args ...any)) {
	rng := rand.New(rand.NewPCG(m.seed, m.seed))

	for i := range 1 << len(m.transitions) {
		state := m.build(rng, func(j int) bool { return (i>>j)&1 == 1 })
		result := m.subject(state)

		var stack []string
		for _, inv := range m.invariants {
			if inv.Assert(state, result) {
				continue
			}

			// Only build the stack once something fails
			if stack == nil {
				stack = []string{}
				for j := range m.transitions {
					if (i>>j)&1 == 1 {
						stack = append(stack, m.transitions[j].Name)
					}
				}
			}

			msg := fmt.Sprintf("invariant '%s' failed with mutation stack: [%s]", inv.Name, strings.Join(stack, ", "))
			if m.describe != nil {
				msg += fmt.Sprintf(" (state: %s, seed: %d)", m.describe(state), m.seed)
			}
			fail("%s", msg)
		}
	}
}

func (m *Model[T, TT]) build(rng *rand.Rand, enabled func(int) bool) T {
	var state T
	if m.initial != nil {
		state = m.initial()
	}
	for _, j := range rng.Perm(len(m.transitions)) {
		if enabled(j) {
			state = m.transitions[j].Func(state)
		}
	}
	return state
}

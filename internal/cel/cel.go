package cel

import (
	"context"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types/ref"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Azure/lexis/pkg/lexer"
)

var Env *cel.Env

var filterEvalCost = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "lexis_filter_eval_cost_total",
		Help: "Total cost of all evaluated CEL token filter expressions",
	},
)

func init() {
	initDefaultEnv()
	prometheus.MustRegister(filterEvalCost)
}

func initDefaultEnv() {
	var err error
	Env, err = cel.NewEnv(cel.Variable("token", cel.MapType(cel.StringType, cel.DynType)))
	if err != nil {
		panic(fmt.Sprintf("failed to create default CEL environment: %v", err))
	}
}

// Parse compiles an expression over the "token" variable.
//
// The variable is a map with the keys kind, text, number, line, column, and keyword.
// For example: `token.kind == "Identifier" && !token.keyword`.
func Parse(expr string) (cel.Program, error) {
	ast, iss := Env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	return Env.Program(ast, cel.InterruptCheckFrequency(10), cel.EvalOptions(cel.OptTrackCost))
}

func Eval(ctx context.Context, prgm cel.Program, tok lexer.Token, keyword bool) (ref.Val, error) {
	val, details, err := prgm.ContextEval(ctx, map[string]any{"token": newTokenMap(tok, keyword)})
	if details != nil {
		if cost := details.ActualCost(); cost != nil {
			filterEvalCost.Add(float64(*cost))
		}
	}
	return val, err
}

// Filter selects tokens using a boolean CEL expression.
type Filter struct {
	expr    string
	program cel.Program
}

func NewFilter(expr string) (*Filter, error) {
	prgm, err := Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", expr, err)
	}
	return &Filter{expr: expr, program: prgm}, nil
}

func (f *Filter) String() string { return f.expr }

// Matches evaluates the filter. Expressions that do not produce a bool are an error.
func (f *Filter) Matches(ctx context.Context, tok lexer.Token, keyword bool) (bool, error) {
	val, err := Eval(ctx, f.program, tok, keyword)
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.expr, err)
	}
	b, ok := val.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %s, expected bool", f.expr, val.Type().TypeName())
	}
	return b, nil
}

func newTokenMap(tok lexer.Token, keyword bool) map[string]any {
	return map[string]any{
		"kind":    tok.Kind.String(),
		"text":    tok.Text,
		"number":  tok.Number,
		"line":    int64(tok.Start.Line),
		"column":  int64(tok.Start.Column),
		"keyword": keyword,
	}
}

package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/Azure/lexis/internal/cel"
	"github.com/Azure/lexis/internal/logging"
	"github.com/Azure/lexis/pkg/keywords"
	"github.com/Azure/lexis/pkg/lexer"
)

// contextCheckInterval is how many tokens are read between checks for context cancellation.
const contextCheckInterval = 1024

// Session tokenizes inputs and turns their tokens into output records.
type Session struct {
	ID string

	keywords  *keywords.Set
	filter    *cel.Filter
	kindNames map[lexer.Kind]string
	logger    *logging.Logger
}

func New(opts Options) (*Session, error) {
	names, err := opts.kindNames()
	if err != nil {
		return nil, err
	}
	filter, err := opts.filter()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        uuid.NewString(),
		keywords:  opts.keywordSet(),
		filter:    filter,
		kindNames: names,
		logger:    logging.NewLogger(),
	}, nil
}

// Record is the output form of a single token.
type Record struct {
	Source  string `json:"source"`
	Kind    string `json:"kind"`
	Value   any    `json:"value"`
	Keyword bool   `json:"keyword,omitempty"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Result holds the records of one input. When tokenization fails Err is set and
// Records holds the tokens that were read before the failure.
type Result struct {
	Name    string
	Tokens  int
	Records []Record
	Err     error
}

// Run tokenizes the text of the named input.
// The returned error is non-nil when the lexer failed, the filter failed, or the context was canceled.
func (s *Session) Run(ctx context.Context, name string, text string) (*Result, error) {
	logger := logr.FromContextOrDiscard(ctx).WithValues("sessionID", s.ID, "source", name)
	ctx = logr.NewContext(ctx, logger)
	logger.V(1).Info("tokenizing", "bytes", len(text))

	start := time.Now()
	defer func() { sessionDuration.Observe(time.Since(start).Seconds()) }()

	result := &Result{Name: name}
	for tok, err := range lexer.Tokens(lexer.NewSource(text)) {
		if err != nil {
			errorsTotal.WithLabelValues(reason(err)).Inc()
			result.Err = fmt.Errorf("%s: %w", name, err)
			s.logger.Log(ctx, "tokenization failed", "error", err.Error(), "tokens", result.Tokens)
			return result, result.Err
		}

		result.Tokens++
		tokensTotal.WithLabelValues(tok.Kind.String()).Inc()
		if result.Tokens%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				errorsTotal.WithLabelValues("canceled").Inc()
				result.Err = fmt.Errorf("%s: %w", name, err)
				return result, result.Err
			}
			s.logger.Progress(ctx, "tokenizing", "tokens", result.Tokens, "line", tok.Start.Line)
		}

		keyword := s.keywords.IsKeyword(tok)
		if s.filter != nil {
			ok, err := s.filter.Matches(ctx, tok, keyword)
			if err != nil {
				errorsTotal.WithLabelValues("filter").Inc()
				result.Err = fmt.Errorf("%s: %w", name, err)
				return result, result.Err
			}
			if !ok {
				continue
			}
		}
		result.Records = append(result.Records, s.record(name, tok, keyword))
	}

	s.logger.Log(ctx, "tokenized", "tokens", result.Tokens, "records", len(result.Records), "latency", time.Since(start).Milliseconds())
	return result, nil
}

// record converts a token. Numbers too large for float64 keep their literal text since
// JSON and YAML cannot represent infinities.
func (s *Session) record(name string, tok lexer.Token, keyword bool) Record {
	value := tok.Value()
	if tok.Kind == lexer.Number && math.IsInf(tok.Number, 0) {
		value = tok.Text
	}
	return Record{
		Source:  name,
		Kind:    s.kindNames[tok.Kind],
		Value:   value,
		Keyword: keyword,
		Start:   tok.Start.String(),
		End:     tok.End.String(),
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, lexer.ErrUnterminatedString):
		return "unterminated_string"
	case errors.Is(err, lexer.ErrUnterminatedBlockComment):
		return "unterminated_block_comment"
	case errors.Is(err, lexer.ErrUnrecognizedCharacter):
		return "unrecognized_character"
	default:
		return "unknown"
	}
}

package session

import (
	"flag"
	"fmt"

	"github.com/Azure/lexis/internal/cel"
	"github.com/Azure/lexis/pkg/config"
	"github.com/Azure/lexis/pkg/keywords"
	"github.com/Azure/lexis/pkg/lexer"
)

// shortKindNames are the compact kind names accepted by --short-kinds.
var shortKindNames = map[lexer.Kind]string{
	lexer.Number:      "num",
	lexer.String:      "str",
	lexer.Identifier:  "id",
	lexer.Punctuation: "punc",
	lexer.Operator:    "op",
}

type Options struct {
	Keywords   config.ListValue
	KindNames  config.MapValue
	ShortKinds bool
	Filter     string
	Format     string
}

func (o *Options) Bind(set *flag.FlagSet) {
	set.Var(&o.Keywords, "keywords", "Comma-separated keywords to flag in the output (default var,function)")
	set.Var(&o.KindNames, "kind-names", "Comma-separated Kind=name pairs used to rename token kinds in the output e.g. Identifier=ident")
	set.BoolVar(&o.ShortKinds, "short-kinds", false, "Use the short kind names num, str, id, punc, and op")
	set.StringVar(&o.Filter, "filter", "", "Optional CEL expression over `token` selecting which tokens are written e.g. token.kind == \"Identifier\"")
	set.StringVar(&o.Format, "format", FormatJSON, "Output format: json, yaml, or text")
}

func (o *Options) keywordSet() *keywords.Set {
	if len(o.Keywords) == 0 {
		return keywords.Default()
	}
	return keywords.New(o.Keywords...)
}

func (o *Options) filter() (*cel.Filter, error) {
	if o.Filter == "" {
		return nil, nil
	}
	return cel.NewFilter(o.Filter)
}

// kindNames resolves the output name of each kind. Explicit names take precedence over short names.
func (o *Options) kindNames() (map[lexer.Kind]string, error) {
	byName := map[string]lexer.Kind{}
	names := map[lexer.Kind]string{}
	for _, k := range lexer.Kinds() {
		byName[k.String()] = k
		names[k] = k.String()
		if o.ShortKinds {
			names[k] = shortKindNames[k]
		}
	}

	for key, val := range o.KindNames {
		k, ok := byName[key]
		if !ok {
			return nil, fmt.Errorf("unknown token kind %q", key)
		}
		if val == "" {
			return nil, fmt.Errorf("empty name for token kind %q", key)
		}
		names[k] = val
	}
	return names, nil
}

// Package inspect evaluates JSONPath queries against stored space records.
package inspect

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

// Query runs a JSONPath expression over a serialized space record and
// returns the matched value rendered as indented JSON. An empty expression
// returns the whole document reformatted.
func Query(raw []byte, expr string) (string, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", &domain.OpError{
			Op:   "inspect.query",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("record is not valid JSON: %w", err),
		}
	}

	expr = strings.TrimSpace(expr)
	if expr == "" {
		return render(doc)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", &domain.OpError{
			Op:   "inspect.query",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("jsonpath %q: %w", expr, err),
		}
	}
	return render(val)
}

func render(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "inspect.render",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return string(b), nil
}

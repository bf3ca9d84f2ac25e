// Package query builds upstream request URLs for the UK Parliament APIs.
package query

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// Param is a single query string entry. An empty Value means the parameter was not supplied.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter set. Entries are emitted in insertion order.
type Params []Param

// Add appends a parameter and returns the extended set.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Build appends the non-empty parameters to baseURL as a percent-encoded query string.
// When no parameter carries a value baseURL is returned unchanged.
func Build(baseURL string, params Params) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		pairs = append(pairs, p.Key+"="+EscapeValue(p.Value))
	}

	if len(pairs) == 0 {
		return baseURL
	}
	return baseURL + "?" + strings.Join(pairs, "&")
}

// EscapeValue percent-encodes a query value. Spaces become %20 rather than '+'.
func EscapeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

var placeholder = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Placeholders returns the names of the {name} segments in a path template, in order.
func Placeholders(template string) []string {
	matches := placeholder.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Expand substitutes every {name} in template with the path-escaped value from values.
func Expand(template string, values map[string]string) (string, error) {
	var firstErr error
	expanded := placeholder.ReplaceAllStringFunc(template, func(token string) string {
		if firstErr != nil {
			return token
		}
		name := token[1 : len(token)-1]
		value, ok := values[name]
		if !ok || value == "" {
			firstErr = fmt.Errorf("missing value for path parameter %q", name)
			return token
		}
		styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
		if err != nil {
			firstErr = fmt.Errorf("invalid value for path parameter %q: %w", name, err)
			return token
		}
		return styled
	})
	if firstErr != nil {
		return "", firstErr
	}
	return expanded, nil
}

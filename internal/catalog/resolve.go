package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/janisz/uk-parliament-mcp/pkg/common"
	"github.com/janisz/uk-parliament-mcp/pkg/query"
)

// ArgumentError reports a tool argument that is missing or has the wrong type.
type ArgumentError struct {
	Tool     string
	Argument string
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q for %s: %s", e.Argument, e.Tool, e.Reason)
}

// URL builds the upstream request URL for args, which are decoded JSON tool arguments.
// Missing optional arguments fall back to their default or are omitted; fixed
// parameters are emitted in declaration order alongside the supplied ones.
func (t Tool) URL(baseURL string, args map[string]any) (string, error) {
	pathValues := make(map[string]string)
	var queryParams query.Params

	for _, p := range t.Params {
		if p.In == Fixed {
			queryParams = queryParams.Add(p.Key, p.Value)
			continue
		}

		value, err := p.format(args[p.Name])
		if err != nil {
			return "", &ArgumentError{Tool: t.Name, Argument: p.Name, Reason: err.Error()}
		}
		if value == "" {
			value = p.Default
		}
		if value == "" && p.Required {
			return "", &ArgumentError{Tool: t.Name, Argument: p.Name, Reason: "is required"}
		}

		if p.In == InPath {
			pathValues[p.Key] = value
		} else {
			queryParams = queryParams.Add(p.Key, value)
		}
	}

	path, err := query.Expand(t.Path, pathValues)
	if err != nil {
		return "", fmt.Errorf("failed to expand path for %s: %w", t.Name, err)
	}

	return query.Build(strings.TrimRight(baseURL, "/")+path, queryParams), nil
}

// format renders a decoded JSON value as the upstream string form. nil means absent.
func (p Param) format(raw any) (string, error) {
	if raw == nil {
		return "", nil
	}

	switch p.Type {
	case Integer:
		return formatInteger(raw)
	case Boolean:
		return formatBoolean(raw)
	case IntegerList:
		return formatIntegerList(raw)
	case Date:
		return formatDate(raw)
	default:
		switch v := raw.(type) {
		case string:
			return strings.TrimSpace(v), nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case bool:
			return strconv.FormatBool(v), nil
		default:
			return "", fmt.Errorf("expected string, got %T", raw)
		}
	}
}

func formatInteger(raw any) (string, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return "", fmt.Errorf("expected integer, got %v", v)
		}
		return strconv.FormatInt(int64(v), 10), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return "", nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return "", fmt.Errorf("expected integer, got %q", v)
		}
		return strconv.FormatInt(n, 10), nil
	default:
		return "", fmt.Errorf("expected integer, got %T", raw)
	}
}

// formatDate passes a valid date through unchanged.
func formatDate(raw any) (string, error) {
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("expected date string, got %T", raw)
	}
	s := strings.TrimSpace(v)
	if s == "" {
		return "", nil
	}
	if !common.IsDate(s) {
		return "", fmt.Errorf("expected date as YYYY-MM-DD, got %q", v)
	}
	return s, nil
}

func formatBoolean(raw any) (string, error) {
	switch v := raw.(type) {
	case bool:
		return strconv.FormatBool(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return "", nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return "", fmt.Errorf("expected boolean, got %q", v)
		}
		return strconv.FormatBool(b), nil
	default:
		return "", fmt.Errorf("expected boolean, got %T", raw)
	}
}

func formatIntegerList(raw any) (string, error) {
	switch v := raw.(type) {
	case []any:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			id, err := formatInteger(item)
			if err != nil {
				return "", err
			}
			if id != "" {
				ids = append(ids, id)
			}
		}
		return strings.Join(ids, ","), nil
	case []int:
		ids := make([]string, 0, len(v))
		for _, id := range v {
			ids = append(ids, strconv.Itoa(id))
		}
		return strings.Join(ids, ","), nil
	default:
		// A single id or an already comma separated string.
		if s, ok := raw.(string); ok {
			parts := strings.Split(s, ",")
			items := make([]any, 0, len(parts))
			for _, part := range parts {
				items = append(items, part)
			}
			return formatIntegerList(items)
		}
		return formatInteger(raw)
	}
}

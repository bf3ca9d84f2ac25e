package fetch

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Outcome is the envelope returned for every fetch: either {url, data} or {url, error[, statusCode]}.
type Outcome struct {
	URL        string  `json:"url"`
	Data       *string `json:"data,omitempty"`
	Error      string  `json:"error,omitempty"`
	StatusCode int     `json:"statusCode,omitempty"`

	// Kind and Attempts describe how the outcome was reached. They are not serialized.
	Kind     Kind `json:"-"`
	Attempts int  `json:"-"`
}

// OK reports whether the upstream answered with a 2xx status.
func (o Outcome) OK() bool {
	return o.Data != nil
}

// JSON serializes the envelope. HTML characters in the upstream body are left unescaped.
func (o Outcome) JSON() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(o); err != nil {
		// Only strings and ints are encoded, so this cannot happen in practice.
		return fmt.Sprintf(`{"url":%q,"error":%q}`, o.URL, "Unexpected error: "+err.Error())
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

func success(url, body string, attempts int) Outcome {
	return Outcome{URL: url, Data: &body, Kind: KindSuccess, Attempts: attempts}
}

func failure(url string, kind Kind, message string, statusCode, attempts int) Outcome {
	return Outcome{URL: url, Error: message, StatusCode: statusCode, Kind: kind, Attempts: attempts}
}

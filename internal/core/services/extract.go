package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON indicates the response text contained no JSON object at all.
var ErrNoJSON = errors.New("no json object in response")

// ErrMalformedJSON indicates a JSON object was located but failed to decode.
var ErrMalformedJSON = errors.New("malformed json in response")

// MalformedJSONError reports which extraction stage located the object that
// then failed to decode.
type MalformedJSONError struct {
	Stage string // "fenced" or "braced"
	Err   error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed json in %s block: %v", e.Stage, e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

func (e *MalformedJSONError) Is(target error) bool { return target == ErrMalformedJSON }

// DecodeResponse extracts the JSON object from a generative-text completion
// and decodes it into v. Extraction is two-stage: a fenced ```json code
// block takes precedence; without one, the first balanced {...} span in the
// raw text is used. Returns ErrNoJSON when neither stage locates an object
// and a MalformedJSONError when the located object fails to decode.
func DecodeResponse(text string, v any) error {
	if block, ok := fencedBlock(text); ok {
		if err := json.Unmarshal([]byte(block), v); err != nil {
			return &MalformedJSONError{Stage: "fenced", Err: err}
		}
		return nil
	}

	span, ok := bracedSpan(text)
	if !ok {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return &MalformedJSONError{Stage: "braced", Err: err}
	}

	return nil
}

// fencedBlock returns the contents of the first ```json fenced code block.
func fencedBlock(text string) (string, bool) {
	start := strings.Index(text, "```json")
	if start == -1 {
		return "", false
	}
	rest := text[start+len("```json"):]

	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}

	return strings.TrimSpace(rest[:end]), true
}

// bracedSpan returns the first balanced {...} span in the text, honoring
// string literals and escapes so braces inside values don't end the span.
func bracedSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// unwrapEnvelope returns the "data" member of a JSON object body, or the body
// itself for any other JSON value. An empty body yields nil.
func unwrapEnvelope(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrNetwork)
	}

	if trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			if data, ok := obj["data"]; ok {
				return data, nil
			}
		}
	}
	return json.RawMessage(trimmed), nil
}

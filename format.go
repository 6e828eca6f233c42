package smartscrape

import (
	"bytes"
	"encoding/json"
)

// FormatResult renders an extraction result as indented JSON for display.
// HTML characters are left unescaped so the output matches what the model
// returned.
func FormatResult(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

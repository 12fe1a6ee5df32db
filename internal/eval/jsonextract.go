package eval

import "errors"

var ErrNoJSON = errors.New("no JSON object found in response")

// ExtractJSON returns the first balanced {...} region of text. Models
// routinely wrap their JSON in prose or markdown fences, so extraction
// is lenient by design: brace matching, aware of string literals and
// escapes, no schema assumptions.
func ExtractJSON(text string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if start == -1 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], nil
				}
			}
		}
	}
	return "", ErrNoJSON
}

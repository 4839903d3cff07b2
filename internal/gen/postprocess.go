package gen

import "strings"

// enumMarkers are the characters stripped from both ends of each line of
// a multi-line response: enumeration digits, dots and list punctuation
// the model tends to prepend despite instructions.
const enumMarkers = " \t1234567890.)）-・"

// Lines splits a multi-line response into its non-empty lines, stripping
// enumeration markers from each.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.Trim(line, enumMarkers))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// bracketPairs maps opening runes of enclosing punctuation to their
// closers. Symmetric quotes map to themselves.
var bracketPairs = map[rune]rune{
	'「': '」',
	'『': '』',
	'（': '）',
	'(': ')',
	'[': ']',
	'【': '】',
	'"': '"',
	'\'': '\'',
}

// TrimEnclosing removes a single pair of enclosing brackets or quotes,
// but only when exactly one such pair wraps the whole text. Inner
// occurrences of the same characters leave the text untouched.
func TrimEnclosing(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	open := runes[0]
	closer, ok := bracketPairs[open]
	if !ok || runes[len(runes)-1] != closer {
		return text
	}
	inner := runes[1 : len(runes)-1]
	for _, r := range inner {
		if r == open || r == closer {
			return text
		}
	}
	return strings.TrimSpace(string(inner))
}

package token

import "strings"

// Quote renders v as a single header value token. Double quotes cannot
// be represented in a value and each one becomes '?'; a value containing
// a space is wrapped in double quotes so it survives field splitting.
func Quote(v string) string {
	v = strings.ReplaceAll(v, `"`, "?")
	if strings.Contains(v, " ") {
		return `"` + v + `"`
	}
	return v
}

// Unquote strips one pair of surrounding double quotes from v, if
// present. There is no escape syntax: interior quotes and backslashes
// pass through untouched.
func Unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

package strutil

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var tokenPattern = regexp.MustCompile(`\{#(\w*):?([^}]*)\}`)

// Evaluator produces the replacement for one {#TAG:format} token.
type Evaluator func(tag, format string) string

// Interpolate replaces every {#TAG} or {#TAG:format} token in s with the
// result of evaluator. Text outside tokens is left as is.
func Interpolate(s string, evaluator Evaluator) string {
	if evaluator == nil {
		return s
	}
	return tokenPattern.ReplaceAllStringFunc(s, func(token string) string {
		m := tokenPattern.FindStringSubmatch(token)
		return evaluator(m[1], m[2])
	})
}

// DefaultEvaluator understands two tags, matched case-insensitively:
//
//	{#GUID}           a random UUID; format N, D, B or P (default D)
//	{#DATE:layout}    now() formatted with a Go time layout (default RFC 3339)
//
// Unknown tags are replaced with "". A nil now uses time.Now.
func DefaultEvaluator(now func() time.Time) Evaluator {
	if now == nil {
		now = time.Now
	}
	return func(tag, format string) string {
		switch strings.ToUpper(tag) {
		case "GUID":
			return formatUUID(uuid.New(), format)
		case "DATE":
			if format == "" {
				format = time.RFC3339
			}
			return now().Format(format)
		default:
			return ""
		}
	}
}

func formatUUID(id uuid.UUID, format string) string {
	s := id.String()
	switch strings.ToUpper(format) {
	case "N":
		return strings.ReplaceAll(s, "-", "")
	case "B":
		return "{" + s + "}"
	case "P":
		return "(" + s + ")"
	default:
		return s
	}
}

package strutil

import (
	"regexp"
	"testing"
	"time"
)

func TestInterpolate(t *testing.T) {
	echo := func(tag, format string) string { return "<" + tag + "|" + format + ">" }
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a {#X} b", "a <X|> b"},
		{"{#X:yy}{#Y:}", "<X|yy><Y|>"},
		{"{#} end", "<|> end"},
		{"{not a token}", "{not a token}"},
	}
	for _, tc := range tests {
		if got := Interpolate(tc.in, echo); got != tc.want {
			t.Errorf("Interpolate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := Interpolate("{#X}", nil); got != "{#X}" {
		t.Errorf("nil evaluator should leave text unchanged, got %q", got)
	}
}

func TestDefaultEvaluator(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC) }
	eval := DefaultEvaluator(now)

	if got := Interpolate("on {#date:2006-01-02}", eval); got != "on 2024-03-09" {
		t.Errorf("date token = %q", got)
	}
	if got := Interpolate("{#DATE}", eval); got != "2024-03-09T14:05:00Z" {
		t.Errorf("default date layout = %q", got)
	}
	if got := Interpolate("[{#UNKNOWN}]", eval); got != "[]" {
		t.Errorf("unknown tag = %q, want empty replacement", got)
	}

	patterns := map[string]*regexp.Regexp{
		"{#GUID}":   regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`),
		"{#GUID:N}": regexp.MustCompile(`^[0-9a-f]{32}$`),
		"{#GUID:B}": regexp.MustCompile(`^\{[0-9a-f-]{36}\}$`),
		"{#GUID:P}": regexp.MustCompile(`^\([0-9a-f-]{36}\)$`),
	}
	for in, re := range patterns {
		if got := Interpolate(in, eval); !re.MatchString(got) {
			t.Errorf("Interpolate(%q) = %q, does not match %s", in, got, re)
		}
	}
	if Interpolate("{#GUID}", eval) == Interpolate("{#GUID}", eval) {
		t.Error("expected a fresh GUID per token")
	}
}

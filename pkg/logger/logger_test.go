package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Output: &buf, Service: "leads-api"})
	log.Info().Msg("dropped")
	log.Warn().Str("lead_id", "abc").Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line should be filtered at warn level: %s", out)
	}
	for _, want := range []string{`"lead_id":"abc"`, `"level":"warn"`, `"service":"leads-api"`, `"caller":`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
}

func TestNew_NoServiceField(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf})
	log.Info().Msg("hello")

	if strings.Contains(buf.String(), `"service"`) {
		t.Errorf("service field should be absent: %s", buf.String())
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Pretty: true})
	log.Info().Msg("hello")

	out := buf.String()
	if strings.HasPrefix(out, "{") || !strings.Contains(out, "hello") {
		t.Errorf("expected console output, got %s", out)
	}
}

func TestInit_FirstCallWins(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var first, second bytes.Buffer
	Init(Options{Level: "warn", Output: &first})
	log := Init(Options{Level: "debug", Output: &second})
	log.Warn().Msg("again")

	if second.Len() != 0 || !strings.Contains(first.String(), "again") {
		t.Error("second Init must not replace the process logger")
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("global level = %v, want warn", zerolog.GlobalLevel())
	}
}

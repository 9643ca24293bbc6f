package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn")

	log.Info("não deve aparecer")
	log.Warn("aviso", "empresa", "demo")

	out := buf.String()
	if strings.Contains(out, "não deve aparecer") {
		t.Errorf("info logged at warn level: %s", out)
	}
	if !strings.Contains(out, "empresa=demo") {
		t.Errorf("missing attribute: %s", out)
	}
}

func TestLogger_SetLevelAndWith(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "error")
	child := log.With("componente", "monitor")

	log.SetLevel("debug")
	child.Debug("detalhe")

	if !strings.Contains(buf.String(), "componente=monitor") {
		t.Errorf("child did not follow parent level: %q", buf.String())
	}
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	if got := parseLevel("verbose"); got.String() != "INFO" {
		t.Errorf("parseLevel = %s, want INFO", got)
	}
}

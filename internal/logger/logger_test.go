package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevelAndFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	Init(&buf)

	if Log.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", Log.GetLevel())
	}

	Log.Info("hidden")
	Log.WithField("walk", 1).Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info entry written at warn level")
	}
	if !strings.Contains(out, `"walk":1`) {
		t.Errorf("json output missing field: %q", out)
	}
}

func TestInitBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	var buf bytes.Buffer
	Init(&buf)

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info fallback", Log.GetLevel())
	}
}

package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(Info)
	defer func() {
		SetLevel(Notice)
		SetSink(os.Stderr)
	}()

	logger := New("logtest")
	logger.Debugf("hidden %d", 1)
	logger.Infof("shown %d", 2)

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Error("Debug message should be filtered at Info level")
	}
	for _, want := range []string{"[logtest]", "[INFO]", "shown 2"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output %q does not contain %q", output, want)
		}
	}
}

func TestEnabled(t *testing.T) {
	SetLevel(Warning)
	defer SetLevel(Notice)

	tests := []struct {
		level    Level
		expected bool
	}{
		{Debug, false},
		{Info, false},
		{Notice, false},
		{Warning, true},
		{Error, true},
	}
	for _, tt := range tests {
		if got := Enabled(tt.level); got != tt.expected {
			t.Errorf("Enabled(%d) = %v, want %v", tt.level, got, tt.expected)
		}
	}
}

func TestSetSink_PreservesLevel(t *testing.T) {
	SetLevel(Error)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	if Enabled(Warning) {
		t.Error("Level should survive a sink change")
	}
}

package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure(t *testing.T) {
	if err := Configure("debug", FormatText, false); err != nil {
		t.Fatalf("Configure() returned %v", err)
	}
	if got := logrus.GetLevel(); got != logrus.DebugLevel {
		t.Errorf("level = %v, want %v", got, logrus.DebugLevel)
	}

	if err := Configure("nope", FormatText, false); err == nil {
		t.Error("expected error for bad level")
	}
	if err := Configure("info", "nope", false); err == nil {
		t.Error("expected error for bad format")
	}
}

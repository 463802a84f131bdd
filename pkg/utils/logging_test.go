package utils

import "testing"

func TestLoggerVerbose(t *testing.T) {
	if NewLogger(false).Verbose() {
		t.Error("NewLogger(false).Verbose() = true, expected false")
	}
	if !NewLogger(true).Verbose() {
		t.Error("NewLogger(true).Verbose() = false, expected true")
	}
}

package logging

import (
	"bytes"
	"testing"
)

func TestIsTTY_Buffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a terminal")
	}
}

func TestSupportsColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if supportsColor(&bytes.Buffer{}, true) {
		t.Error("NO_COLOR must disable color even on a TTY")
	}
}

func TestSupportsColor_DumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if supportsColor(&bytes.Buffer{}, true) {
		t.Error("TERM=dumb must disable color")
	}
}

func TestSupportsColor_NotTTY(t *testing.T) {
	if supportsColor(&bytes.Buffer{}, false) {
		t.Error("non-TTY writer must not support color")
	}
}

package internal

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	err := newError(NotFound, "/missing.txt", fs.ErrNotExist)

	if !errors.Is(err, NotFound) {
		t.Error("expected errors.Is to match the kind")
	}
	if errors.Is(err, ResourceFailure) {
		t.Error("matched the wrong kind")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected the underlying error to unwrap")
	}

	msg := err.Error()
	if !strings.Contains(msg, "not found") || !strings.Contains(msg, `"/missing.txt"`) {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestKind_Unknown(t *testing.T) {
	if got := Kind(99).Error(); got != "unknown error: 99" {
		t.Errorf("unexpected message: %s", got)
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := WithMetadata(CodeNotFound, "character missing", map[string]string{"ID": "x"})
	target := New(CodeNotFound, "different message")

	if !stderrors.Is(err, target) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(err, New(CodePermissionDenied, "other")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk failure")
	err := Wrap(CodeUnknown, "storage failed", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be found")
	}
}

func TestHandleErrorDomainError(t *testing.T) {
	err := WithMetadata(CodePermissionDenied, "secret mismatch", map[string]string{"ID": "abc"})

	status, body := HandleError(err, "")
	if status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
	if body.Code != string(CodePermissionDenied) {
		t.Fatalf("unexpected code %q", body.Code)
	}
	if body.Message != "Incorrect password for character with id 'abc'" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestHandleErrorLocalized(t *testing.T) {
	err := WithMetadata(CodeNotFound, "missing", map[string]string{"ID": "abc"})

	status, body := HandleError(err, "ja-JP")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if body.Locale != "ja" {
		t.Fatalf("expected ja locale, got %q", body.Locale)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	status, body := HandleError(fmt.Errorf("boom"), "")
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body.Code != string(CodeUnknown) {
		t.Fatalf("unexpected code %q", body.Code)
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(New(CodeNotFound, "x")) != CodeNotFound {
		t.Fatal("expected NOT_FOUND")
	}
	if GetCode(fmt.Errorf("plain")) != CodeUnknown {
		t.Fatal("expected UNKNOWN for plain errors")
	}
	if !IsCode(New(CodeNotFound, "x"), CodeNotFound) {
		t.Fatal("expected IsCode match")
	}
}

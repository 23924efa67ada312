package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeValidation, "bad input")
	if err.Code != ErrCodeValidation {
		t.Errorf("expected code %s, got %s", ErrCodeValidation, err.Code)
	}
	if err.Message != "bad input" {
		t.Errorf("expected message 'bad input', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("VALIDATION_ERROR should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeFilesystem, "disk trouble")
	if !err.Retryable {
		t.Error("FILESYSTEM_ERROR should be retryable")
	}
}

func TestAppError_MissingField_Success(t *testing.T) {
	err := MissingField("speaker")
	if err.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", err.Code)
	}
	if err.Details["field"] != "speaker" {
		t.Errorf("expected field=speaker, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "speaker") {
		t.Errorf("expected field name in message, got %q", err.Message)
	}
}

func TestAppError_EmptyInput_Success(t *testing.T) {
	err := EmptyInput()
	if err.Code != ErrCodeEmptyInput {
		t.Errorf("expected EMPTY_INPUT, got %s", err.Code)
	}
	if err.Retryable {
		t.Error("EmptyInput should not be retryable")
	}
}

func TestAppError_Filesystem_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Filesystem("write", "/tmp/out.eaf", cause)
	if err.Code != ErrCodeFilesystem {
		t.Errorf("expected FILESYSTEM_ERROR, got %s", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the OS cause")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("expected cause in error string, got %q", err.Error())
	}
	if err.Details["op"] != "write" {
		t.Errorf("expected op=write, got %v", err.Details["op"])
	}
}

func TestAppError_InternalConsistency_NotRetryable(t *testing.T) {
	err := InternalConsistency("time slot lookup miss")
	if err.Code != ErrCodeInternalConsistency {
		t.Errorf("expected INTERNAL_CONSISTENCY, got %s", err.Code)
	}
	if err.Retryable {
		t.Error("InternalConsistency must never be retryable")
	}
}

func TestAppError_HasCode_Success(t *testing.T) {
	err := fmt.Errorf("outer: %w", Validation("nope"))
	if !HasCode(err, ErrCodeValidation) {
		t.Error("expected HasCode to match wrapped AppError")
	}
	if HasCode(err, ErrCodeFilesystem) {
		t.Error("expected HasCode to reject a different code")
	}
	if HasCode(fmt.Errorf("plain"), ErrCodeValidation) {
		t.Error("expected HasCode to reject a plain error")
	}
}

func TestAppError_WithDetail_Success(t *testing.T) {
	err := Validation("bad").WithDetail("line", 3)
	if err.Details["line"] != 3 {
		t.Errorf("expected line=3, got %v", err.Details["line"])
	}
}

func TestAppError_WithCause_Success(t *testing.T) {
	cause := fmt.Errorf("inner")
	err := Validation("bad").WithCause(cause)
	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

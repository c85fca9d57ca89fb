package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "item-api/pkg/errors"
)

func TestFieldErrors(t *testing.T) {
	fe := pkgErrors.FieldErrors{}
	if !fe.Empty() {
		t.Fatalf("new FieldErrors should be empty")
	}

	fe.Add("name", "")
	if !fe.Empty() {
		t.Errorf("empty message must not be recorded, got %v", fe)
	}

	fe.Add("name", "Name cannot be empty")
	fe.Add("name", "second")
	if got := fe["name"]; len(got) != 2 || got[0] != "Name cannot be empty" {
		t.Errorf("messages out of order: %v", got)
	}

	fe["quantity"] = nil
	compact := fe.Compact()
	if _, ok := compact["quantity"]; ok {
		t.Errorf("Compact should drop empty fields, got %v", compact)
	}
	if len(compact["name"]) != 2 {
		t.Errorf("Compact lost messages: %v", compact)
	}
}

func TestKindOf(t *testing.T) {
	cause := errors.New("disk I/O error")
	storage := pkgErrors.NewStorageError("ListItems", cause)
	wrapped := fmt.Errorf("uc.List: %w", storage)

	if got := pkgErrors.KindOf(wrapped); got != pkgErrors.KindStorage {
		t.Errorf("expected storage kind, got %s", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Errorf("storage error must unwrap to its cause")
	}
	if got := pkgErrors.KindOf(cause); got != pkgErrors.KindUnknown {
		t.Errorf("untagged errors must be unknown, got %s", got)
	}
}

func TestHTTPMapping(t *testing.T) {
	cases := []struct {
		kind   pkgErrors.Kind
		status int
		code   string
	}{
		{pkgErrors.KindValidation, http.StatusBadRequest, pkgErrors.CodeValidation},
		{pkgErrors.KindStorage, http.StatusInternalServerError, pkgErrors.CodeInternalServer},
		{pkgErrors.KindConfig, http.StatusInternalServerError, pkgErrors.CodeInternalServer},
		{pkgErrors.KindUnknown, http.StatusInternalServerError, pkgErrors.CodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := pkgErrors.HTTPStatus(tc.kind); got != tc.status {
				t.Errorf("status: expected %d, got %d", tc.status, got)
			}
			if got := pkgErrors.Code(tc.kind); got != tc.code {
				t.Errorf("code: expected %s, got %s", tc.code, got)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := pkgErrors.NewValidationError(pkgErrors.FieldErrors{
		"quantity": {"Quantity must be 0 or greater"},
		"name":     {"Name cannot be empty"},
	})

	want := "validation failed: name: Name cannot be empty, quantity: Quantity must be 0 or greater"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if fields := pkgErrors.FieldsOf(err); len(fields) != 2 {
		t.Errorf("expected 2 fields, got %v", fields)
	}
}

func TestConfigError(t *testing.T) {
	err := pkgErrors.NewConfigError("database.url", "DATABASE_URL is required")
	if pkgErrors.KindOf(err) != pkgErrors.KindConfig {
		t.Fatalf("expected config kind")
	}
	if err.Error() != "config database.url: DATABASE_URL is required" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

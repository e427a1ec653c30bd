package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type sampleRequest struct {
	Name       string    `validate:"required"`
	LocationID uuid.UUID `validate:"uuid_required"`
	Price      int64     `validate:"gte=0"`
}

func TestValidateStructPasses(t *testing.T) {
	req := sampleRequest{Name: "Laptop", LocationID: uuid.New(), Price: 100}
	if err := ValidateStruct(req); err != nil {
		t.Fatalf("ValidateStruct: %v", err)
	}
}

func TestValidateStructReportsEveryFailedField(t *testing.T) {
	req := sampleRequest{Price: -1} // Name missing, LocationID nil, Price negative

	err := ValidateStruct(req)
	if err == nil {
		t.Fatal("expected an error")
	}

	var fieldErrors FieldErrors
	if !errors.As(err, &fieldErrors) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	if len(fieldErrors) != 3 {
		t.Fatalf("got %d field errors, want 3: %v", len(fieldErrors), fieldErrors)
	}

	msg := err.Error()
	for _, field := range []string{"Name", "LocationID", "Price"} {
		if !strings.Contains(msg, field) {
			t.Errorf("message %q does not mention field %s", msg, field)
		}
	}
}

func TestUUIDRequiredRejectsNilUUID(t *testing.T) {
	req := sampleRequest{Name: "Laptop", LocationID: uuid.Nil, Price: 0}

	err := ValidateStruct(req)
	if err == nil {
		t.Fatal("expected an error for the nil UUID")
	}

	var fieldErrors FieldErrors
	if !errors.As(err, &fieldErrors) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Tag != "uuid_required" {
		t.Errorf("got %v, want a single uuid_required failure", fieldErrors)
	}
}

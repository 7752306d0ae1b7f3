package utils

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sampleRequest struct {
	PiecePins []string `json:"piece_pins" validate:"required"`
}

func TestProcessValidationErrors_ValidatorErrors(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fields := ProcessValidationErrors(err)
	if fields["PiecePins"] != "required" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestProcessValidationErrors_TypeAndSyntax(t *testing.T) {
	var req sampleRequest
	err := json.Unmarshal([]byte(`{"piece_pins": 5}`), &req)
	if fields := ProcessValidationErrors(err); fields["piece_pins"] != "type" {
		t.Fatalf("unexpected fields for type error: %v", fields)
	}

	if fields := ProcessValidationErrors(errors.New("EOF")); fields["body"] != ErrorMalformedBody.Error() {
		t.Fatalf("unexpected fields for generic error: %v", fields)
	}
}

package validation

import (
	"strings"
	"testing"

	"github.com/robokoder/processor/errors"
)

type entry struct {
	Name     string `mapstructure:"name" validate:"required"`
	Kind     string `mapstructure:"kind" validate:"required,oneof=basic static"`
	Priority int    `mapstructure:"priority" validate:"gte=0"`
}

type chainDef struct {
	Service    string  `mapstructure:"service" validate:"required"`
	Processors []entry `mapstructure:"processors" validate:"dive"`
}

func TestValidate_OK(t *testing.T) {
	def := chainDef{Service: "svc", Processors: []entry{{Name: "p1", Kind: "basic", Priority: 5}}}
	if err := Validate(def); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ReportsFieldPaths(t *testing.T) {
	def := chainDef{Processors: []entry{{Name: "", Kind: "grpc", Priority: -1}}}
	err := Validate(def)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %s", appErr.Code)
	}

	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected []FieldError details, got %T", appErr.Details["fields"])
	}
	if len(fields) != 4 {
		t.Fatalf("expected 4 field errors, got %+v", fields)
	}

	for _, want := range []string{"service: is required", "processors[0].name: is required", "processors[0].kind: must be one of: basic static", "processors[0].priority: must be >= 0"} {
		if !strings.Contains(appErr.Message, want) {
			t.Errorf("expected %q in %q", want, appErr.Message)
		}
	}
}

func TestFieldPath(t *testing.T) {
	if got := fieldPath("chainDef.processors[1].kind"); got != "processors[1].kind" {
		t.Errorf("unexpected %q", got)
	}
	if got := fieldPath("name"); got != "name" {
		t.Errorf("unexpected %q", got)
	}
}

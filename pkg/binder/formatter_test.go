package binder

import (
	"reflect"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"
)

type mockFieldError struct {
	tag   string
	field string
	param string
	kind  reflect.Kind
}

func (e *mockFieldError) Error() string           { return "Mock Field Error" }
func (e *mockFieldError) Tag() string             { return e.tag }
func (e *mockFieldError) ActualTag() string       { return e.tag }
func (e *mockFieldError) Namespace() string       { return "" }
func (e *mockFieldError) StructNamespace() string { return "" }
func (e *mockFieldError) Field() string           { return e.field }
func (e *mockFieldError) StructField() string     { return "" }
func (e *mockFieldError) Value() interface{}      { return "" }
func (e *mockFieldError) Param() string           { return e.param }
func (e *mockFieldError) Kind() reflect.Kind {
	if e.kind == 0 {
		return reflect.String
	}
	return e.kind
}
func (e *mockFieldError) Type() reflect.Type               { return reflect.TypeOf("") }
func (e *mockFieldError) Translate(_ ut.Translator) string { return "" }

func TestFormatValidationError(t *testing.T) {
	cases := []struct {
		tag   string
		param string
		kind  reflect.Kind
		msg   string
	}{
		{date, "", 0, `"date_publish" should be in the format of YYYY-MM-DD`},
		// String min/max
		{mx, "300", reflect.String, `"date_publish" length must be less than or equal to 300 characters`},
		{mx, "1", reflect.String, `"date_publish" length must be less than or equal to 1 character`},
		{mn, "1", reflect.String, `"date_publish" length must be greater than or equal to 1 character`},
		// Numeric min/max
		{mx, "50", reflect.Int, `"date_publish" must be less than or equal to 50`},
		{mn, "1", reflect.Int, `"date_publish" must be greater than or equal to 1`},
		// Slice min/max
		{mx, "5", reflect.Slice, `"date_publish" length must be less than or equal to 5 elements`},
		{mn, "1", reflect.Slice, `"date_publish" length must be greater than or equal to 1 element`},
		// Other
		{ne, "", 0, `"date_publish" can't be ""`},
		{oneof, "one two three", 0, `"date_publish" must be one of the following: "one", "two", "three"`},
		{required, "", 0, `"date_publish" is required`},
		{"foo", "", 0, `"date_publish" is invalid`},
	}

	for _, tt := range cases {
		err := mockFieldError{tag: tt.tag, field: "date_publish", param: tt.param, kind: tt.kind}
		msg := formatValidationError(&err)
		assert.Equal(t, tt.msg, msg)
	}
}

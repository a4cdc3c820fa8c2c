package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactSchema struct {
	Name  string  `json:"name" label:"Name" validate:"required,min=2,max=10"`
	Phone string  `json:"phone" label:"Phone" validate:"required,phone"`
	Ref   string  `json:"ref" label:"Reference" validate:"omitempty,objectid"`
	Slug  *string `json:"slug,omitempty" label:"Slug" validate:"omitempty,slug"`
}

func (s *contactSchema) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Phone = strings.TrimSpace(s.Phone)
	TrimPtr(s.Slug)
}

func asErrors(t *testing.T, err error) Errors {
	t.Helper()
	var errs Errors
	require.True(t, errors.As(err, &errs), "expected validation.Errors, got %T", err)
	require.NotEmpty(t, errs)
	return errs
}

func TestDecode_ReportsAllFieldsInOrder(t *testing.T) {
	var out contactSchema
	err := Decode(map[string]any{"ref": "nope", "slug": "Bad Slug"}, &out)

	errs := asErrors(t, err)
	assert.Equal(t, []string{"name", "phone", "ref", "slug"}, errs.Fields())
	assert.Equal(t, "Name is required", errs.MessageFor("name"))
	assert.Equal(t, "Phone is required", errs.MessageFor("phone"))
	assert.Equal(t, "Reference must be a 24-character hex identifier", errs.MessageFor("ref"))
	assert.Equal(t, "Slug must be lowercase with hyphens", errs.MessageFor("slug"))
}

func TestDecode_NormalizesBeforeChecking(t *testing.T) {
	var out contactSchema
	err := Decode(map[string]any{"name": "  Al  ", "phone": " +1 555-0100 "}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Al", out.Name)
	assert.Equal(t, "+1 555-0100", out.Phone)
	assert.Nil(t, out.Slug)
}

func TestDecode_WeakTypingCoercesNumbers(t *testing.T) {
	var out contactSchema
	err := Decode(map[string]any{"name": "Bob", "phone": float64(5551234567)}, &out)

	require.NoError(t, err)
	assert.Equal(t, "5551234567", out.Phone)
}

func TestDecode_TypeErrorsReportedWithOtherFields(t *testing.T) {
	var out contactSchema
	err := Decode(map[string]any{
		"name":  map[string]any{"first": "x"},
		"phone": "abc",
		"ref":   "nothex",
	}, &out)

	errs := asErrors(t, err)
	assert.Equal(t, []string{"name", "phone", "ref"}, errs.Fields())
	assert.Equal(t, "Expected a string", errs.MessageFor("name"))
	assert.Equal(t, "Invalid phone number", errs.MessageFor("phone"))
	assert.Equal(t, "Reference must be a 24-character hex identifier", errs.MessageFor("ref"))
}

func TestDecode_TypeErrorsFollowDeclaredOrder(t *testing.T) {
	var out contactSchema
	err := Decode(map[string]any{
		"name": "Al",
		"slug": map[string]any{"a": 1},
		"ref":  map[string]any{},
	}, &out)

	errs := asErrors(t, err)
	assert.Equal(t, []string{"phone", "ref", "slug"}, errs.Fields())
	assert.Equal(t, "Expected a string", errs.MessageFor("ref"))
}

func TestDecode_KeysMatchExactly(t *testing.T) {
	var out contactSchema
	err := Decode(map[string]any{"NAME": "Alice", "Name": "Bob", "phone": "0123456789"}, &out)

	errs := asErrors(t, err)
	assert.Equal(t, []string{"name"}, errs.Fields())
	assert.Equal(t, "Name is required", errs.MessageFor("name"))
	assert.Empty(t, out.Name)
}

func TestDecode_AcceptsJSONBytesAndStructs(t *testing.T) {
	var fromJSON contactSchema
	require.NoError(t, Decode([]byte(`{"name":"Cy","phone":"0123456789"}`), &fromJSON))
	assert.Equal(t, "Cy", fromJSON.Name)

	var fromStruct contactSchema
	require.NoError(t, Decode(contactSchema{Name: "Di", Phone: "0123456789"}, &fromStruct))
	assert.Equal(t, "Di", fromStruct.Name)
}

func TestDecode_RejectsNonObjects(t *testing.T) {
	for name, input := range map[string]any{
		"nil":        nil,
		"number":     42,
		"json array": []byte(`[1,2]`),
		"json null":  []byte(`null`),
		"bad json":   []byte(`{`),
	} {
		t.Run(name, func(t *testing.T) {
			var out contactSchema
			errs := asErrors(t, Decode(input, &out))
			assert.Equal(t, "", errs[0].Field)
		})
	}
}

func TestDecode_Idempotent(t *testing.T) {
	input := map[string]any{"name": "x", "phone": "abc"}
	var a, b contactSchema
	errA := Decode(input, &a)
	errB := Decode(input, &b)
	assert.Equal(t, errA, errB)
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{{Field: "name", Message: "Name is required"}, {Message: "Expected an object"}}
	assert.Equal(t, "validation failed: name: Name is required; Expected an object", errs.Error())
}

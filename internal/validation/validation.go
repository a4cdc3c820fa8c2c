// Package validation decodes loosely typed input into schema structs, normalizes it,
// and checks it against go-playground/validator tags, collecting every field violation.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"dealership_backend/internal/common"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// FieldError is a single violation: the offending field path and a human readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is a non-empty, ordered list of field violations.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		if fe.Field == "" {
			parts[i] = fe.Message
			continue
		}
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the violated field paths in order.
func (e Errors) Fields() []string {
	out := make([]string, len(e))
	for i, fe := range e {
		out[i] = fe.Field
	}
	return out
}

// MessageFor returns the first message reported for field, or "".
func (e Errors) MessageFor(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Schema is implemented by every input contract.
// Normalize runs after decoding and before the tag checks.
type Schema interface {
	Normalize()
}

var (
	phonePattern = regexp.MustCompile(`^[0-9+][0-9\s-]{8,14}$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	typeErrName  = regexp.MustCompile(`^'([^']*)'`)
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func validate() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "objectid", func(fl validator.FieldLevel) bool {
			return common.IsValidID(fl.Field().String())
		})
		engine = v
	})
	return engine
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Decode fills dst (a pointer to a Schema struct) from input, normalizes it and validates it.
// input may be a map, raw JSON bytes, or a struct. On failure the error is always Errors.
// Only input that is not an object stops before the rule checks; a field of the wrong type
// is reported alongside every other field's violations.
func Decode(input any, dst Schema) error {
	typeErrs, err := decode(input, dst)
	if err != nil {
		return err
	}
	dst.Normalize()

	ruleErrs := checkErrors(dst)
	if len(typeErrs) == 0 {
		if len(ruleErrs) == 0 {
			return nil
		}
		return ruleErrs
	}
	return merge(dst, typeErrs, ruleErrs)
}

// Check runs the tag rules against an already decoded value.
func Check(dst any) error {
	if errs := checkErrors(dst); len(errs) > 0 {
		return errs
	}
	return nil
}

func checkErrors(dst any) Errors {
	err := validate().Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Message: err.Error()}}
	}

	labels := labelsOf(dst)
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe),
			Message: message(fe, labels[fe.StructField()]),
		})
	}
	return out
}

// merge interleaves type errors with rule errors in declared field order.
// A field with a type error reports only that error.
func merge(dst any, typeErrs, ruleErrs Errors) Errors {
	mistyped := make(map[string]bool, len(typeErrs))
	for _, fe := range typeErrs {
		mistyped[fe.Field] = true
	}
	out := make(Errors, 0, len(typeErrs)+len(ruleErrs))
	out = append(out, typeErrs...)
	for _, fe := range ruleErrs {
		if !mistyped[fe.Field] {
			out = append(out, fe)
		}
	}

	order := fieldOrder(dst)
	rank := func(field string) int {
		if i, ok := order[field]; ok {
			return i
		}
		return len(order)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Field) < rank(out[j].Field)
	})
	return out
}

// fieldOrder maps each field path to its declaration index.
func fieldOrder(v any) map[string]int {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	order := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		order[jsonFieldName(t.Field(i))] = i
	}
	return order
}

// decode returns per-field type errors, or a non-nil error when input is not an object at all.
func decode(input any, dst any) (Errors, error) {
	switch in := input.(type) {
	case nil:
		return nil, Errors{{Message: "Expected an object"}}
	case []byte:
		return decodeJSON(in, dst)
	case json.RawMessage:
		return decodeJSON(in, dst)
	}

	kind := reflect.Indirect(reflect.ValueOf(input)).Kind()
	if kind != reflect.Map && kind != reflect.Struct {
		return nil, Errors{{Message: "Expected an object"}}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		// Keys must match exactly; the default case-folding picks among candidates in map order.
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
		Result:    dst,
	})
	if err != nil {
		return nil, Errors{{Message: err.Error()}}
	}
	if err := dec.Decode(input); err != nil {
		return typeErrors(err)
	}
	return nil, nil
}

func decodeJSON(raw []byte, dst any) (Errors, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, Errors{{Message: "Expected a JSON object"}}
	}
	if m == nil {
		return nil, Errors{{Message: "Expected an object"}}
	}
	return decode(m, dst)
}

// typeErrors turns mapstructure's "'field' expected type ..." messages into field errors.
// An error that names no field is structural.
func typeErrors(err error) (Errors, error) {
	var msErr *mapstructure.Error
	if !errors.As(err, &msErr) {
		return nil, Errors{{Message: err.Error()}}
	}
	out := make(Errors, 0, len(msErr.Errors))
	for _, raw := range msErr.Errors {
		m := typeErrName.FindStringSubmatch(raw)
		if m == nil || m[1] == "" {
			return nil, Errors{{Message: "Expected an object"}}
		}
		out = append(out, FieldError{Field: m[1], Message: "Expected a string"})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out, nil
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// labelsOf maps Go field names to their `label` tag, falling back to the Go name.
func labelsOf(v any) map[string]string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	labels := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		label := f.Tag.Get("label")
		if label == "" {
			label = f.Name
		}
		labels[f.Name] = label
	}
	return labels
}

func message(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", label, fe.Param())
	case "url":
		return label + " must be a valid URL"
	case "phone":
		return "Invalid phone number"
	case "slug":
		return "Slug must be lowercase with hyphens"
	case "objectid":
		return label + " must be a 24-character hex identifier"
	default:
		return fmt.Sprintf("%s failed the '%s' check", label, fe.Tag())
	}
}

// TrimPtr trims the pointed-to string in place; nil is left alone.
func TrimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// ToAPIError turns Errors into the 422 API error and passes any other error through.
func ToAPIError(err error) error {
	var errs Errors
	if errors.As(err, &errs) {
		return common.NewValidationAPIError([]FieldError(errs))
	}
	return err
}

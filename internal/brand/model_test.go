package brand

import (
	"errors"
	"strings"
	"testing"

	"dealership_backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brandErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var errs validation.Errors
	require.True(t, errors.As(err, &errs), "expected validation.Errors, got %v", err)
	return errs
}

func TestValidateCreate_Slug(t *testing.T) {
	in, err := ValidateCreate(map[string]any{"name": "My Car Brand", "slug": "my-car-brand"})
	require.NoError(t, err)
	require.NotNil(t, in.Slug)
	assert.Equal(t, "my-car-brand", *in.Slug)

	_, err = ValidateCreate(map[string]any{"name": "My Car Brand", "slug": "My_Car!"})
	errs := brandErrors(t, err)
	assert.Equal(t, []string{"slug"}, errs.Fields())
	assert.Equal(t, "Slug must be lowercase with hyphens", errs.MessageFor("slug"))
}

func TestValidateCreate_SlugOptional(t *testing.T) {
	in, err := ValidateCreate(map[string]any{"name": "  Volvo  "})
	require.NoError(t, err)
	assert.Equal(t, "Volvo", in.Name)
	assert.Nil(t, in.Slug)

	in, err = ValidateCreate(map[string]any{"name": "Volvo", "slug": nil})
	require.NoError(t, err)
	assert.Nil(t, in.Slug)
}

func TestValidateCreate_FieldRules(t *testing.T) {
	_, err := ValidateCreate(map[string]any{
		"name":        "V",
		"slug":        "a",
		"logo":        "not a url",
		"description": strings.Repeat("d", 1001),
		"metaTitle":   strings.Repeat("t", 61),
		"metaDesc":    strings.Repeat("m", 161),
	})

	errs := brandErrors(t, err)
	assert.Equal(t, []string{"name", "slug", "logo", "description", "metaTitle", "metaDesc"}, errs.Fields())
	assert.Equal(t, "Name must be at least 2 characters", errs.MessageFor("name"))
	assert.Equal(t, "Slug must be at least 2 characters", errs.MessageFor("slug"))
	assert.Equal(t, "Logo must be a valid URL", errs.MessageFor("logo"))
	assert.Equal(t, "Meta title must be at most 60 characters", errs.MessageFor("metaTitle"))
}

func TestValidateCreate_BoundariesPass(t *testing.T) {
	_, err := ValidateCreate(map[string]any{
		"name":        strings.Repeat("n", 100),
		"slug":        strings.Repeat("s", 100),
		"logo":        "https://cdn.example.com/logos/volvo.svg",
		"description": strings.Repeat("d", 1000),
		"metaTitle":   strings.Repeat("t", 60),
		"metaDesc":    strings.Repeat("m", 160),
	})
	assert.NoError(t, err)
}

func TestValidateCreate_NameRequired(t *testing.T) {
	_, err := ValidateCreate(map[string]any{"slug": "volvo"})
	errs := brandErrors(t, err)
	assert.Equal(t, "Name is required", errs.MessageFor("name"))
}

func TestValidateUpdate_EmptyObjectIsValid(t *testing.T) {
	in, err := ValidateUpdate(map[string]any{})
	require.NoError(t, err)
	assert.True(t, in.IsEmpty())
}

func TestValidateUpdate_PresentFieldsAreChecked(t *testing.T) {
	_, err := ValidateUpdate(map[string]any{"slug": "BAD SLUG"})
	errs := brandErrors(t, err)
	assert.Equal(t, []string{"slug"}, errs.Fields())
	assert.Equal(t, "Slug must be lowercase with hyphens", errs.MessageFor("slug"))

	_, err = ValidateUpdate(map[string]any{"name": ""})
	assert.Equal(t, []string{"name"}, brandErrors(t, err).Fields())

	in, err := ValidateUpdate(map[string]any{"metaTitle": " Fast cars "})
	require.NoError(t, err)
	assert.Equal(t, "Fast cars", *in.MetaTitle)
	assert.False(t, in.IsEmpty())
}

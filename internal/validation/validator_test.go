package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/GamingGoku/ProductionMealApp/internal/errors"
)

type sampleRequest struct {
	Name string `json:"name" validate:"required,max=10"`
	URL  string `json:"url,omitempty" validate:"omitempty,url"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(sampleRequest{Name: "Tacos"}))
	assert.NoError(t, v.Validate(sampleRequest{Name: "Tacos", URL: "https://example.com"}))
}

func TestValidate_ReturnsDomainError(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{Name: ""})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{Name: "Tacos", URL: "::nope"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, domainerrors.As(err, &domainErr))

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "url")
	assert.Equal(t, "must be a valid URL", details["url"])
}

func TestValidate_FriendlyMessages(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{Name: "a name far too long"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, domainerrors.As(err, &domainErr))

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must not exceed 10", details["name"])
}

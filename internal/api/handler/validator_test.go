package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

func TestValidator_NamesFieldsByJSONKey(t *testing.T) {
	err := NewValidator().Validate(&createSocialMediaRequest{URL: "not a url"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"platform is required", "url must be a valid URL"}, ve.Violations)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestValidator_Rules(t *testing.T) {
	negative := int64(-1)
	v := NewValidator()

	cases := []struct {
		name string
		in   any
		want string
	}{
		{"enum", &createTaskRequest{Title: "t", Status: "done"}, "status must be one of: pending in_progress completed"},
		{"either name", &createAssetRequest{FileURL: "https://cdn.example/a.png"}, "filename is required when Name is missing"},
		{"size", &createAssetRequest{Name: "a", FileURL: "https://cdn.example/a.png", FileSize: &negative}, "fileSize must be at least 0"},
		{"key length", &createAPIKeyRequest{Name: "n", Key: string(make([]byte, 73))}, "key must be at most 72 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidator_AcceptsOptionalEnumsWhenEmpty(t *testing.T) {
	assert.NoError(t, NewValidator().Validate(&createTaskRequest{Title: "Mix"}))
	assert.NoError(t, NewValidator().Validate(&createAssetRequest{Filename: "a.png", FileURL: "https://cdn.example/a.png"}))
}

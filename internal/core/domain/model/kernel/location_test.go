package kernel_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "plain name",
			input: "North Wing",
			want:  "North Wing",
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  ICU \t",
			want:  "ICU",
		},
		{
			name:  "max length",
			input: strings.Repeat("a", kernel.LocationMaxLength),
			want:  strings.Repeat("a", kernel.LocationMaxLength),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "too long",
			input:   strings.Repeat("a", kernel.LocationMaxLength+1),
			wantErr: errs.ErrValueIsOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, loc.IsZero())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.Name())
			assert.Equal(t, tt.want, loc.String())
			assert.NoError(t, loc.Validate())
		})
	}
}

func TestLocation_Validate(t *testing.T) {
	t.Run("should reject zero value location", func(t *testing.T) {
		var loc kernel.Location

		assert.Equal(t, kernel.ErrLocationIsNotConstructed, loc.Validate())
		assert.True(t, loc.IsZero())
	})
}

func TestLocation_IsEqual(t *testing.T) {
	t.Run("should compare case-insensitively", func(t *testing.T) {
		a := kernel.MustLocation("North Wing")
		b := kernel.MustLocation("north wing")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should differ for different names", func(t *testing.T) {
		assert.False(t, kernel.MustLocation("ICU").IsEqual(kernel.MustLocation("ER")))
	})

	t.Run("should never equal a zero location", func(t *testing.T) {
		var zero kernel.Location

		assert.False(t, zero.IsEqual(zero))
		assert.False(t, kernel.MustLocation("ICU").IsEqual(zero))
	})
}

func TestMustLocation(t *testing.T) {
	t.Run("should panic on blank name", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustLocation(" ") })
	})
}

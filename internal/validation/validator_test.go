package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "salescli/internal/errors"
)

type sampleOptions struct {
	File      string   `flag:"file" validate:"required"`
	Weeks     int      `flag:"weeks" validate:"gte=1"`
	Lead      float64  `flag:"lead" validate:"gte=0"`
	Format    string   `yaml:"format" validate:"oneof=json text"`
	Delimiter string   `yaml:"delimiter" validate:"delimiter"`
	Layouts   []string `yaml:"date_layouts" validate:"min=1,dive,datelayout"`
}

func validSample() sampleOptions {
	return sampleOptions{
		File:    "Walmart.csv",
		Weeks:   4,
		Lead:    2,
		Format:  "json",
		Layouts: []string{"2006-01-02"},
	}
}

func TestValidator_Struct(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(o *sampleOptions)
		wantFields int
		wantMsg    string
	}{
		{
			name:   "valid options",
			mutate: func(o *sampleOptions) {},
		},
		{
			name:       "missing file",
			mutate:     func(o *sampleOptions) { o.File = "" },
			wantFields: 1,
			wantMsg:    "file is required",
		},
		{
			name:       "zero window",
			mutate:     func(o *sampleOptions) { o.Weeks = 0 },
			wantFields: 1,
			wantMsg:    "weeks must be greater than or equal to 1",
		},
		{
			name:       "negative lead",
			mutate:     func(o *sampleOptions) { o.Lead = -1 },
			wantFields: 1,
			wantMsg:    "lead must be greater than or equal to 0",
		},
		{
			name:       "bad format",
			mutate:     func(o *sampleOptions) { o.Format = "xml" },
			wantFields: 1,
			wantMsg:    "format must be one of: json, text",
		},
		{
			name:   "tab delimiter",
			mutate: func(o *sampleOptions) { o.Delimiter = "tab" },
		},
		{
			name:       "multi character delimiter",
			mutate:     func(o *sampleOptions) { o.Delimiter = ";;" },
			wantFields: 1,
			wantMsg:    `delimiter must be a single character or "tab"`,
		},
		{
			name:       "layout without date",
			mutate:     func(o *sampleOptions) { o.Layouts = []string{"15:04"} },
			wantFields: 1,
		},
		{
			name:       "no layouts",
			mutate:     func(o *sampleOptions) { o.Layouts = nil },
			wantFields: 1,
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validSample()
			tt.mutate(&opts)

			fields, err := v.Struct(opts)
			require.NoError(t, err)
			assert.Len(t, fields, tt.wantFields)
			if tt.wantMsg != "" {
				require.NotEmpty(t, fields)
				assert.Equal(t, tt.wantMsg, fields[0].Message)
			}
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(validSample()))

	opts := validSample()
	opts.File = ""
	opts.Weeks = -2
	err := v.Validate(opts)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	assert.Contains(t, err.Error(), "file is required")
	assert.Contains(t, err.Error(), "weeks must be greater than or equal to 1")
}

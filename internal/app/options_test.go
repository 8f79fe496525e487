package app

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/internal/config"
	"salescli/internal/errors"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, opts Options)
	}{
		{
			name: "defaults",
			args: []string{"--file", "sales.csv"},
			validate: func(t *testing.T, opts Options) {
				assert.Equal(t, "sales.csv", opts.File)
				assert.Equal(t, config.DefaultStore, opts.Store)
				assert.Equal(t, config.DefaultWindow, opts.Weeks)
				assert.Equal(t, config.DefaultLeadTimeWeeks, opts.Lead)
				assert.Equal(t, config.DefaultServiceFactor, opts.ServiceFactor)
				assert.Equal(t, config.DefaultTopN, opts.Top)
				assert.Equal(t, config.DefaultOutputDir, opts.OutDir)
				assert.False(t, opts.AnyAnalysis())
			},
		},
		{
			name: "all analyses",
			args: []string{"--file", "s.csv", "--summary", "--holiday-impact", "--forecast", "--safety-stock",
				"--store", "20", "--weeks", "8", "--lead", "1.5", "--service-factor", "2.33", "--top", "0", "--out", "reports"},
			validate: func(t *testing.T, opts Options) {
				assert.True(t, opts.Summary)
				assert.True(t, opts.HolidayImpact)
				assert.True(t, opts.Forecast)
				assert.True(t, opts.SafetyStock)
				assert.Equal(t, "20", opts.StoreID())
				assert.Equal(t, 8, opts.Weeks)
				assert.Equal(t, 1.5, opts.Lead)
				assert.Equal(t, 2.33, opts.ServiceFactor)
				assert.Equal(t, 0, opts.Top)
				assert.Equal(t, "reports", opts.OutDir)
				assert.True(t, opts.AnyAnalysis())
			},
		},
		{
			name: "single dash flags",
			args: []string{"-file=s.csv", "-forecast"},
			validate: func(t *testing.T, opts Options) {
				assert.Equal(t, "s.csv", opts.File)
				assert.True(t, opts.Forecast)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			opts, err := ParseArgs("sales-analysis", tt.args, &out)
			require.NoError(t, err)
			tt.validate(t, opts)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	var out bytes.Buffer

	_, err := ParseArgs("sales-analysis", []string{"--weeks", "many"}, &out)
	assert.Error(t, err)
	assert.Contains(t, out.String(), "invalid value")

	out.Reset()
	_, err = ParseArgs("sales-analysis", []string{"-h"}, &out)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "-holiday-impact")
}

func TestApplyConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.Store = 7
	cfg.Analysis.Window = 12
	cfg.Analysis.LeadTimeWeeks = 3
	cfg.Analysis.ServiceFactor = 2.05
	cfg.Output.TopN = 5
	cfg.Output.Dir = "from-config"

	t.Run("config fills unset flags", func(t *testing.T) {
		opts, err := ParseArgs("sales-analysis", []string{"--file", "s.csv"}, &bytes.Buffer{})
		require.NoError(t, err)

		opts.ApplyConfig(cfg)

		assert.Equal(t, 7, opts.Store)
		assert.Equal(t, 12, opts.Weeks)
		assert.Equal(t, 3.0, opts.Lead)
		assert.Equal(t, 2.05, opts.ServiceFactor)
		assert.Equal(t, 5, opts.Top)
		assert.Equal(t, "from-config", opts.OutDir)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		// flags equal to the built-in defaults still count as explicit
		opts, err := ParseArgs("sales-analysis",
			[]string{"--file", "s.csv", "--store", "1", "--weeks", "4", "--out", "mine"}, &bytes.Buffer{})
		require.NoError(t, err)

		opts.ApplyConfig(cfg)

		assert.Equal(t, 1, opts.Store)
		assert.Equal(t, 4, opts.Weeks)
		assert.Equal(t, "mine", opts.OutDir)
		assert.Equal(t, 3.0, opts.Lead)
	})
}

func TestOptionsValidate(t *testing.T) {
	valid := func() Options {
		opts := DefaultOptions(config.Default())
		opts.File = "sales.csv"
		return opts
	}

	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr string
	}{
		{name: "valid", mutate: func(o *Options) {}},
		{name: "zero lead time", mutate: func(o *Options) { o.Lead = 0 }},
		{name: "missing file", mutate: func(o *Options) { o.File = "" }, wantErr: "file is required"},
		{name: "zero window", mutate: func(o *Options) { o.Weeks = 0 }, wantErr: "weeks must be greater than or equal to 1"},
		{name: "negative lead", mutate: func(o *Options) { o.Lead = -1 }, wantErr: "lead must be greater than or equal to 0"},
		{name: "zero service factor", mutate: func(o *Options) { o.ServiceFactor = 0 }, wantErr: "service-factor must be greater than 0"},
		{name: "negative top", mutate: func(o *Options) { o.Top = -1 }, wantErr: "top must be greater than or equal to 0"},
		{name: "empty out dir", mutate: func(o *Options) { o.OutDir = "" }, wantErr: "out is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid()
			tt.mutate(&opts)

			err := opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

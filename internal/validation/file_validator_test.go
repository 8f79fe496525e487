package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "salescli/internal/errors"
	"salescli/internal/shared/testutil"
)

func TestFileValidator_ValidateSalesFile(t *testing.T) {
	tests := []struct {
		name          string
		setupFunc     func(t *testing.T) string
		wantErr       bool
		errorContains string
		wantWarning   bool
	}{
		{
			name: "csv file",
			setupFunc: func(t *testing.T) string {
				return testutil.WriteSampleSales(t)
			},
		},
		{
			name: "workbook",
			setupFunc: func(t *testing.T) string {
				return writeFile(t, "sales.xlsx")
			},
		},
		{
			name: "no extension",
			setupFunc: func(t *testing.T) string {
				return writeFile(t, "Walmart")
			},
		},
		{
			name: "unknown extension warns",
			setupFunc: func(t *testing.T) string {
				return writeFile(t, "sales.export")
			},
			wantWarning: true,
		},
		{
			name: "non-existent file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErr: true,
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:       true,
			errorContains: "is a directory",
		},
		{
			name: "legacy xls",
			setupFunc: func(t *testing.T) string {
				return writeFile(t, "sales.xls")
			},
			wantErr:       true,
			errorContains: ".xls",
		},
		{
			name: "excel lock file",
			setupFunc: func(t *testing.T) string {
				return writeFile(t, "~$sales.xlsx")
			},
			wantErr:       true,
			errorContains: "temporary Excel file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := testutil.NewTestLogger(t)
			path := tt.setupFunc(t)

			err := NewFileValidator(logger).ValidateSalesFile(path)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFile))
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantWarning, logs.ContainsMessage("Unrecognized extension"))
		})
	}
}

func writeFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

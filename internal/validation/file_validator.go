package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "salescli/internal/errors"
)

// Input file kinds accepted by the loader
var (
	excelExtensions = map[string]bool{".xlsx": true, ".xlsm": true}
	textExtensions  = map[string]bool{"": true, ".csv": true, ".tsv": true, ".txt": true, ".dat": true}
)

// FileValidator checks input files before they are loaded
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateFile checks that path exists, is a regular file and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		v.logger.Error("Input file not accessible",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewFileError(path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return apperrors.NewFileError(path, fmt.Errorf("%s is a directory, not a file", path))
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewFileError(path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateSalesFile checks that path is a file the loader can read: delimited
// text or an Excel 2007+ workbook. Legacy .xls workbooks and Excel lock files
// are rejected. Unknown extensions are read as text with a warning.
func (v *FileValidator) ValidateSalesFile(path string) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	base := filepath.Base(path)

	switch {
	case strings.HasPrefix(base, "~$"):
		v.logger.Error("Temporary Excel lock file given as input",
			slog.String("file", path))
		return apperrors.NewFileError(path, fmt.Errorf("%s is a temporary Excel file", base))
	case ext == ".xls":
		v.logger.Error("Legacy Excel format not supported",
			slog.String("file", path))
		return apperrors.NewFileError(path, fmt.Errorf("legacy .xls workbooks are not supported, save as .xlsx or .csv"))
	case excelExtensions[ext], textExtensions[ext]:
		return nil
	default:
		v.logger.Warn("Unrecognized extension, reading as delimited text",
			slog.String("file", path),
			slog.String("extension", ext))
		return nil
	}
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the file system locations used by one run.
// Relative locations resolve against the working directory the tool was started in.
type Paths struct {
	WorkingDir string
	OutputDir  string
}

// GetPaths resolves the output directory against the working directory
func GetPaths(outputDir string) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(wd, outputDir)
	}

	return &Paths{
		WorkingDir: wd,
		OutputDir:  filepath.Clean(outputDir),
	}, nil
}

// EnsureDirectories creates the output directory and its parents. Calling it
// again on an existing directory is a no-op.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.OutputDir, err)
	}

	slog.Default().Debug("Ensured directory exists",
		slog.String("directory", p.OutputDir))

	return nil
}

// GetReportPath returns the full path of a report file in the output directory
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// SummaryCSV is the per-store summary report
func (p *Paths) SummaryCSV() string {
	return p.GetReportPath(StoreSummaryFile)
}

// HolidayCSV is the holiday comparison report
func (p *Paths) HolidayCSV() string {
	return p.GetReportPath(HolidayImpactFile)
}

// SafetyStockCSV is the safety-stock report of one store; the store id is
// part of the name so runs for different stores do not overwrite each other.
func (p *Paths) SafetyStockCSV(store string) string {
	return p.GetReportPath(SafetyStockFilePrefix + sanitizeFileComponent(store) + SafetyStockFileSuffix)
}

// sanitizeFileComponent keeps a store identifier from escaping the output directory
func sanitizeFileComponent(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

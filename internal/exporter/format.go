package exporter

import (
	"strconv"
	"strings"

	"salescli/pkg/contracts/domain"
)

// formatFloat formats a float64 with the fewest digits that read back exactly
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatNullFloat formats an undefined value as an empty cell
func formatNullFloat(n domain.NullFloat) string {
	if !n.Valid {
		return ""
	}
	return formatFloat(n.Float64)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}

// formatBool formats a boolean value for CSV output
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseNullFloat reads an empty cell as the undefined value
func parseNullFloat(s string) (domain.NullFloat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.Null, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.Null, err
	}
	return domain.Float(f), nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

package contracts

import (
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, ReportFormatVersion, info.ReportFormat)
	assert.Equal(t, Version, strings.Join([]string{
		strconv.Itoa(VersionMajor), strconv.Itoa(VersionMinor), strconv.Itoa(VersionPatch),
	}, "."))
	assert.False(t, IsPrerelease())
}

func TestGetFullVersionString(t *testing.T) {
	s := GetFullVersionString()

	assert.True(t, strings.HasPrefix(s, "sales-analysis v"+Version))
	assert.Contains(t, s, "commit: "+GitCommit)
	assert.Contains(t, s, "reports: "+ReportFormatVersion)
}


package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withBuildInfo swaps the build information for the duration of a test.
func withBuildInfo(t *testing.T, version, gitCommit, buildDate string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	SetBuildInfo(version, gitCommit, buildDate)
	t.Cleanup(func() {
		SetBuildInfo(origVersion, origCommit, origDate)
	})
}

func TestDefaultVersionIsValid(t *testing.T) {
	assert.NoError(t, ValidateVersion())
	assert.Equal(t, "0.0", GetShortVersion())
}

func TestGetShortVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{name: "release", version: "1.4.2", expected: "1.4"},
		{name: "prerelease", version: "0.3.0-beta.1", expected: "0.3"},
		{name: "build metadata", version: "2.0.1+12.abc1234", expected: "2.0"},
		{name: "invalid version returned as is", version: "dev", expected: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, "unknown", "unknown")
			assert.Equal(t, tt.expected, GetShortVersion())
			assert.Equal(t, tt.version, GetVersion())
		})
	}
}

func TestGetInfo(t *testing.T) {
	withBuildInfo(t, "1.2.3", "abcdef1234567", "2026-10-01")

	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abcdef1234567", info.GitCommit)
	assert.Equal(t, "2026-10-01", info.BuildDate)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
	require.NotNil(t, info.SemVer)
	assert.Equal(t, uint64(2), info.SemVer.Minor())
}

func TestGetInfo_InvalidVersion(t *testing.T) {
	withBuildInfo(t, "not-a-version", "unknown", "unknown")

	_, err := GetInfo()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid semantic version 'not-a-version'")
	assert.Error(t, ValidateVersion())
	assert.Equal(t, "Cookbook vnot-a-version (invalid version)", GetFormattedVersion())
}

func TestGetFormattedVersion(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		gitCommit string
		buildDate string
		expected  string
	}{
		{
			name:      "development build",
			version:   "0.0.0",
			gitCommit: "unknown",
			buildDate: "unknown",
			expected:  "Cookbook v0.0.0, development build",
		},
		{
			name:      "release build shortens commit",
			version:   "1.0.0",
			gitCommit: "0123456789abcdef",
			buildDate: "2026-10-16",
			expected:  "Cookbook v1.0.0, commit 0123456, built 2026-10-16",
		},
		{
			name:      "short commit kept",
			version:   "1.0.0",
			gitCommit: "abc",
			buildDate: "",
			expected:  "Cookbook v1.0.0, commit abc",
		},
		{
			name:      "commit without build date",
			version:   "1.1.0",
			gitCommit: "abc1234",
			buildDate: "unknown",
			expected:  "Cookbook v1.1.0, commit abc1234, development build",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, tt.gitCommit, tt.buildDate)
			assert.Equal(t, tt.expected, GetFormattedVersion())
		})
	}
}

func TestIsDevelopment(t *testing.T) {
	withBuildInfo(t, "1.0.0", "unknown", "unknown")
	assert.True(t, IsDevelopment())

	SetBuildInfo("1.0.0", "abc1234", "2026-10-16")
	assert.False(t, IsDevelopment())
}

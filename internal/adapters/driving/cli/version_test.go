package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "1.2.3"
	defer func() { version = originalVersion }()

	out, err := runCommand(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "lawkit version 1.2.3")
}

func TestSetVersion(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	SetVersion("9.9.9")
	assert.Equal(t, "9.9.9", version)

	// An empty value keeps the current version.
	SetVersion("")
	assert.Equal(t, "9.9.9", version)
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "lawkit", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "개인정보처리방침")
	assert.Contains(t, rootCmd.Long, "서비스 이용약관")
}

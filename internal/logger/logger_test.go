package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects the log output into a buffer and restores the
// default writer and verbosity when the test finishes.
func capture(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)

	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_Verbose(t *testing.T) {
	buf := capture(t, true)

	Debug("assembling %d sections", 9)
	Info("document saved")
	Warn("remote generation failed: %s", "timeout")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] assembling 9 sections\n")
	assert.Contains(t, out, "[INFO] document saved\n")
	assert.Contains(t, out, "[WARN] remote generation failed: timeout\n")
}

func TestLevels_Quiet(t *testing.T) {
	buf := capture(t, false)

	Debug("assembling sections")
	Info("document saved")
	Warn("remote generation failed")
	Section("generate")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("export")

	assert.Equal(t, "\n=== export ===\n", buf.String())
}

func TestConcurrentUse(t *testing.T) {
	capture(t, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Debug("worker %d", n)
			IsVerbose()
			SetVerbose(n%2 == 0)
		}(i)
	}
	wg.Wait()
}

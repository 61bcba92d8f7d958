//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	// Ensure the test binary exists (it should be built by TestMain)
	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Flag usage exits before the TUI starts, so no PTY is needed
	cmd := exec.Command(binPath, "--help")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.True(t,
		strings.Contains(output, "Usage") || strings.Contains(output, "usage"),
		"Help should contain usage information")
	require.Contains(t, output, "-ticker")
	require.Contains(t, output, "-base-url")
	require.Contains(t, output, "FNETGRIP_BASE_URL")
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should show fnetgrip title")

	tf.Escape()
	time.Sleep(150 * time.Millisecond)
	tf.Help()
	require.NoError(t, tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), "fnetgrip Help")
	}, 3*time.Second, "help overlay not shown"))
	require.True(t, tf.SeePlain("Document Actions"))

	tf.Help()
	tf.Escape()
	time.Sleep(150 * time.Millisecond)
	require.NoError(t, tf.PressQuit())
}

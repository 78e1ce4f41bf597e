package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlag_BoolFlag(t *testing.T) {
	var boolTarget bool
	cmd := &cobra.Command{}

	RegisterFlag(cmd, "quiet", "q", false, "Suppress spinner output", &boolTarget)

	flag := cmd.Flags().Lookup("quiet")
	require.NotNil(t, flag)
	assert.Equal(t, "quiet", flag.Name)
	assert.Equal(t, "q", flag.Shorthand)
	assert.Equal(t, "Suppress spinner output\n (default false)", flag.Usage)
	assert.Equal(t, "false", flag.DefValue)
}

func TestRegisterFlag_StringFlag(t *testing.T) {
	var stringTarget string
	cmd := &cobra.Command{}

	RegisterFlag(cmd, "output-directory", "o", "/tmp/out", "Output directory", &stringTarget)

	flag := cmd.Flags().Lookup("output-directory")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "Output directory\n", flag.Usage)
	assert.Equal(t, "/tmp/out", flag.DefValue)
}

func TestRegisterFlag_IntFlag(t *testing.T) {
	var intTarget int
	cmd := &cobra.Command{}

	RegisterFlag(cmd, "max-results", "m", 25, "Maximum results to show", &intTarget)

	flag := cmd.Flags().Lookup("max-results")
	require.NotNil(t, flag)
	assert.Equal(t, "25", flag.DefValue)
}

func TestRegisterFlag_Int64Flag(t *testing.T) {
	var int64Target int64
	cmd := &cobra.Command{}

	RegisterFlag(cmd, "app-id", "a", int64(0), "Steam app id", &int64Target)

	flag := cmd.Flags().Lookup("app-id")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}

func TestRegisterFlag_StringSliceFlag(t *testing.T) {
	var sliceTarget []string
	cmd := &cobra.Command{}

	RegisterFlag(cmd, "steam-library", "l", []string{}, "Steam library compatdata paths", &sliceTarget)

	flag := cmd.Flags().Lookup("steam-library")
	require.NotNil(t, flag)
	assert.Equal(t, "l", flag.Shorthand)
}

func TestRegisterFlag_NonPointerPanics(t *testing.T) {
	cmd := &cobra.Command{}

	assert.Panics(t, func() {
		RegisterFlag(cmd, "bad", "b", false, "Not a pointer", false)
	})
}

func TestRegisterFlag_UnsupportedTypePanics(t *testing.T) {
	var target float32
	cmd := &cobra.Command{}

	assert.Panics(t, func() {
		RegisterFlag(cmd, "bad", "b", float32(1.0), "Unsupported", &target)
	})
}

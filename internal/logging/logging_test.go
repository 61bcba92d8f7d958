package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fnetgrip.log")
	cfg := DefaultConfig()
	cfg.File = path
	cfg.Level = "debug"

	cleanup, err := Setup(cfg)
	require.NoError(t, err)

	l := Component("api")
	l.Info().Str("ticker", "BLCA11").Msg("search")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.True(t, strings.Contains(line, `"component":"api"`), line)
	assert.True(t, strings.Contains(line, `"ticker":"BLCA11"`), line)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	log.Logger = zerolog.Nop()
}

func TestSetupUnknownLevelFallsBackToInfo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "x.log")
	cfg.Level = "loud"

	cleanup, err := Setup(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	log.Logger = zerolog.Nop()
}

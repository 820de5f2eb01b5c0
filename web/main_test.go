package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmineEl59/ProjetRayTracer/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	warnConfig := writeConfig("warn.yaml", "log_level: warn\nserver:\n  addr: \":9000\"\n")
	badLevel := writeConfig("bad.yaml", "log_level: loud\n")

	tests := []struct {
		name      string
		path      string
		addr      string
		scenesDir string
		expectErr bool
		wantAddr  string
		wantDir   string
		wantLevel zerolog.Level
	}{
		{"missing file uses defaults", filepath.Join(dir, "absent.yaml"), "", "", false, ":8080", "scenes", zerolog.InfoLevel},
		{"file values", warnConfig, "", "", false, ":9000", "scenes", zerolog.WarnLevel},
		{"flags override file", warnConfig, ":7000", "other", false, ":7000", "other", zerolog.WarnLevel},
		{"invalid log level", badLevel, "", "", true, "", "", zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, level, err := loadConfig(tt.path, tt.addr, tt.scenesDir)
			if tt.expectErr {
				assert.ErrorIs(t, err, config.ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, cfg.Server.Addr)
			assert.Equal(t, tt.wantDir, cfg.Server.ScenesDir)
			assert.Equal(t, tt.wantLevel, level)
		})
	}
}

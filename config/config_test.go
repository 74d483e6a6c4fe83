package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/mogaika/creature_retargeter/animdata"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Windows 1252", cfg.Encoding)
	assert.True(t, cfg.SaveMerged)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, ioutil.WriteFile(path, []byte(`
log_level: debug
save_merged: false
aliases:
  troll: [Troll, FrostTroll]
`), 0666))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SaveMerged)
	assert.Equal(t, "\n", cfg.Newline)
	assert.Equal(t, []string{"Troll", "FrostTroll"}, cfg.Aliases["troll"])
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	cfg := Defaults()
	cfg.Newline = "\r\n"
	cfg.Aliases = map[string][]string{"dog": {"Dog", "Hound"}}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRejectsBrokenYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, ioutil.WriteFile(path, []byte("aliases: [unclosed"), 0666))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	defer func() {
		animdata.DefaultNewline = "\n"
		require.NoError(t, SetEncoding("Windows 1252"))
	}()

	cfg := Defaults()
	cfg.Newline = "\r\n"
	cfg.Encoding = "Windows 1251"
	require.NoError(t, cfg.Apply())
	assert.Equal(t, "\r\n", animdata.DefaultNewline)
	assert.Equal(t, charmap.Windows1251, GetEncoding())

	cfg.Newline = "\r"
	assert.Error(t, cfg.Apply())

	cfg.Newline = "\n"
	cfg.Encoding = "EBCDIC-whatever"
	err := cfg.Apply()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Windows 1251")
	assert.Contains(t, ListEncodings(), "Windows 1252")
}

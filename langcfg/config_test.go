package langcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Default_hasSaneLimits(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Greater(cfg.MaxParseDepth, 0)
	assert.Greater(cfg.DiagnosticSoftCap, 0)
}

func Test_Load_overridesFromFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "max_parse_depth = 42\n"
	assert.NoError(os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(42, cfg.MaxParseDepth)
	assert.Equal(Default().DiagnosticSoftCap, cfg.DiagnosticSoftCap)
}

func Test_Load_missingFile_returnsError(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(err)
}

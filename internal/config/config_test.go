package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetpages-go/pkg/sheetpages"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeConfig(t, `
sheet: Roster
page_size: 60
column_size: 30
locale: sv
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, &File{Sheet: "Roster", PageSize: 60, ColumnSize: 30, Locale: "sv"}, cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "page_size: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse config YAML")
}

func TestResolve_Defaults(t *testing.T) {
	opts, err := Resolve(nil, Flags{})
	require.NoError(t, err)
	assert.Equal(t, sheetpages.DefaultOptions(), opts)
}

func TestResolve_Precedence(t *testing.T) {
	cfg := &File{Sheet: "FromFile", PageSize: 60, ColumnSize: 30, Locale: "sv"}
	flags := Flags{
		PageSize:    40,
		PageSizeSet: true,
		Locale:      "de",
		// Not marked as set, so the file value wins.
		Sheet: "ignored",
	}

	opts, err := Resolve(cfg, flags)
	require.NoError(t, err)

	assert.Equal(t, "FromFile", opts.Sheet)
	assert.Equal(t, 40, opts.PageSize)
	assert.Equal(t, 30, opts.ColumnSize)
	assert.Equal(t, "sv", opts.Locale)
}

func TestResolve_Invalid(t *testing.T) {
	_, err := Resolve(&File{PageSize: 500}, Flags{})
	assert.True(t, errors.Is(err, sheetpages.ErrInvalidOptions))

	_, err = Resolve(nil, Flags{ColumnSize: -1, ColumnSizeSet: true})
	assert.True(t, errors.Is(err, sheetpages.ErrInvalidOptions))

	_, err = Resolve(&File{ColumnSize: 1000000000}, Flags{})
	assert.True(t, errors.Is(err, sheetpages.ErrInvalidOptions))
}

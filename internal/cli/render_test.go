package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRenderSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.svg")
	err := runRender(context.Background(), []string{"testdata/sample.toml"}, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
	assert.Contains(t, string(data), "</svg>")
}

func TestRunRenderHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "page.html")
	err := runRender(context.Background(),
		[]string{"testdata/sample.toml", "testdata/sample.toml"}, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "<svg"))
}

func TestRunRenderMultipleNeedHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.svg")
	err := runRender(context.Background(),
		[]string{"testdata/sample.toml", "testdata/sample.toml"}, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".html")
}

func TestRunRenderBadInput(t *testing.T) {
	err := runRender(context.Background(), []string{"testdata/nope.toml"}, "")
	require.Error(t, err)
}

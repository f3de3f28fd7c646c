package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestLabel(t *testing.T) {
	small, err := Label(10)
	require.NoError(t, err)
	large, err := Label(30)
	require.NoError(t, err)

	assert.True(t, font.MeasureString(large, "name") > font.MeasureString(small, "name"))

	y := 100.0
	assert.Greater(t, Baseline(large, y), y)
	assert.Greater(t, Baseline(large, y), Baseline(small, y))
}

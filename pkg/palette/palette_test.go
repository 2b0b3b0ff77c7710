package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableColors(t *testing.T) {
	table := Default()

	tests := []struct {
		name     string
		params   string
		category Category
	}{
		{"red", "31", Foreground},
		{"blue", "34", Foreground},
		{"on-red", "41", Background},
		{"bright-red", "91", Foreground},
		{"on-bright-green", "102", Background},
		{"bold", "1", Weight},
		{"dim", "2", Weight},
		{"underline", "4", Underline},
		{"strike", "9", CrossOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := table.Resolve(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.params, code.Params)
			assert.Equal(t, tt.category, code.Category)
		})
	}
}

func TestTableUnknownName(t *testing.T) {
	_, ok := Default().Resolve("no-such-style")
	assert.False(t, ok)
}

func TestHexPassthrough(t *testing.T) {
	table := Default()

	code, ok := table.Resolve("#ff0000")
	require.True(t, ok)
	assert.Equal(t, Foreground, code.Category)
	assert.NotEmpty(t, code.Params)

	bg, ok := table.Resolve("on#00ff00")
	require.True(t, ok)
	assert.Equal(t, Background, bg.Category)
	assert.NotEqual(t, code.Params, bg.Params)

	_, ok = table.Resolve("#zzzzzz")
	assert.False(t, ok)
}

func TestCustomTable(t *testing.T) {
	table := Table{"shout": {Weight, "1"}}

	code, ok := table.Resolve("shout")
	require.True(t, ok)
	assert.Equal(t, "1", code.Params)

	_, ok = table.Resolve("red")
	assert.False(t, ok)
}

func TestPlainResolvesNothing(t *testing.T) {
	_, ok := Plain().Resolve("red")
	assert.False(t, ok)
	_, ok = Plain().Resolve("#ff0000")
	assert.False(t, ok)
}

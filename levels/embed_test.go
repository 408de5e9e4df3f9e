package levels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	for _, in := range []string{"1-1", "1-1.json", "levels/1-1.json", "levels/1-1"} {
		assert.Equal(t, "1-1.json", Clean(in), in)
	}
}

func TestTrim(t *testing.T) {
	for _, in := range []string{"1-2", "1-2.json", "levels/1-2.json"} {
		assert.Equal(t, "1-2", Trim(in), in)
	}
}

func TestBundledLevelsLoad(t *testing.T) {
	names := Names()
	require.Contains(t, names, "1-1")
	require.Contains(t, names, "1-2")

	for _, name := range names {
		data, err := Load(name)
		require.NoError(t, err, name)

		var header struct {
			Name   string  `json:"name"`
			Width  int     `json:"width"`
			Height int     `json:"height"`
			Layers [][]int `json:"layers"`
		}
		require.NoError(t, json.Unmarshal(data, &header), name)
		assert.Equal(t, name, header.Name)
		for _, layer := range header.Layers {
			assert.Len(t, layer, header.Width*header.Height, name)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("9-9")
	assert.Error(t, err)
}

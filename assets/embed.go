// Package assets holds the embedded artwork.
package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

// TileSheet is the tileset file every tile layer draws from.
const TileSheet = "tiles.png"

// Tile indexes in TileSheet.
const (
	TileGround = iota
	TileBrick
	TileQuestion
	TileUsed
)

var (
	tilesOnce sync.Once
	tiles     *ebiten.Image
)

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeImage decodes an embedded image without uploading it.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// Tile returns one tile of the tileset, or nil when the index is outside
// the sheet or the sheet failed to load.
func Tile(index, size int) *ebiten.Image {
	tilesOnce.Do(func() {
		img, err := LoadImage(TileSheet)
		if err != nil {
			log.Error("load tileset", "path", TileSheet, "err", err)
			return
		}
		tiles = img
	})
	if tiles == nil || index < 0 || size <= 0 {
		return nil
	}
	r, ok := TileRect(tiles.Bounds(), index, size)
	if !ok {
		return nil
	}
	return tiles.SubImage(r).(*ebiten.Image)
}

// TileRect locates tile index in a sheet laid out left to right, top to
// bottom.
func TileRect(sheet image.Rectangle, index, size int) (image.Rectangle, bool) {
	cols := sheet.Dx() / size
	rows := sheet.Dy() / size
	if cols <= 0 || rows <= 0 || index < 0 || index >= cols*rows {
		return image.Rectangle{}, false
	}
	x := sheet.Min.X + (index%cols)*size
	y := sheet.Min.Y + (index/cols)*size
	return image.Rect(x, y, x+size, y+size), true
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}

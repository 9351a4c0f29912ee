package ppu

import "github.com/hextide/gbcore/internal/ppu/palette"

// renderScanline composes one row of the raster buffer at p.line from
// the background tiles and visible sprites; the window layer is not
// drawn. Grounded on the
// teacher's simpler internal/ppu/renderer.go (rather than its
// pixel-FIFO revision).
func (p *PPU) renderScanline() {
	if !p.lcdEnabled {
		return
	}
	line := p.line

	if p.bgEnabled {
		p.renderBackground(line)
	} else {
		for x := 0; x < ScreenWidth; x++ {
			p.bgIndex[x] = 0
			p.writePixel(x, int(line), palette.Shades[0])
		}
	}

	if p.objEnabled {
		p.renderSprites(line)
	}
}

func (p *PPU) renderBackground(line uint8) {
	bgY := uint16(line) + uint16(p.scy)
	bgY &= 0xFF
	mapBase := uint16(0x1800) // 0x9800 - 0x8000
	if p.bgTileMap == 1 {
		mapBase = 0x1C00 // 0x9C00 - 0x8000
	}
	tileRow := bgY >> 3

	for i := 0; i < ScreenWidth; i++ {
		bgX := (uint16(i) + uint16(p.scx)) & 0xFF
		tileCol := bgX >> 3

		mapOffset := mapBase + tileRow*32 + tileCol
		tileNum := p.VRAM[mapOffset]

		var tileIndex uint16
		if p.bgTileSet == 1 {
			tileIndex = uint16(tileNum)
		} else {
			if tileNum < 128 {
				tileIndex = uint16(tileNum) + 256
			} else {
				tileIndex = uint16(tileNum)
			}
		}

		tile := p.tiles.Tile(tileIndex)
		colourIndex := tile[bgY&7][bgX&7]

		p.bgIndex[i] = colourIndex
		p.writePixel(i, int(line), p.BGP.Shade(colourIndex))
	}
}

func (p *PPU) renderSprites(line uint8) {
	drawn := 0
	for s := 0; s < SpriteCount && drawn < 10; s++ {
		sprite := &p.sprites.Sprites[s]
		height := int16(8)
		if p.objSize == 1 {
			height = 16
		}
		if int16(line) < sprite.Y || int16(line) >= sprite.Y+height {
			continue
		}
		drawn++

		row := int16(line) - sprite.Y
		if sprite.FlipY {
			row = height - 1 - row
		}
		tileIndex := uint16(sprite.Tile)
		if height == 16 {
			tileIndex &^= 1
			tileIndex += uint16(row) / 8
			row %= 8
		}
		tile := p.tiles.Tile(tileIndex)

		for x := int16(0); x < 8; x++ {
			srcX := x
			if sprite.FlipX {
				srcX = 7 - x
			}
			colourIndex := tile[row][srcX]
			if colourIndex == 0 {
				continue
			}
			screenX := sprite.X + x
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}
			if sprite.Priority == 1 || p.bgIndex[screenX] == 0 {
				var shade uint8
				if sprite.Palette == 0 {
					shade = p.OBP0.Shade(colourIndex)
				} else {
					shade = p.OBP1.Shade(colourIndex)
				}
				p.writePixel(int(screenX), int(line), shade)
			}
		}
	}
}

// writePixel stores an opaque grayscale pixel at (x, y) into the
// host raster buffer, row-major RGBA with full alpha.
func (p *PPU) writePixel(x, y int, shade uint8) {
	offset := (y*ScreenWidth + x) * 4
	p.Raster[offset] = shade
	p.Raster[offset+1] = shade
	p.Raster[offset+2] = shade
	p.Raster[offset+3] = 255
}

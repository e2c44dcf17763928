package render

// The boot-screen mascot: a pixel-art emu, stored as character art and
// expanded to packed pixels at init. One art cell becomes a 4x4 pixel
// block, giving the same chunky look as the glyph grid.

const mascotScale = 4

// Art palette: space is transparent.
var mascotColors = map[byte]uint32{
	'#': 0xFF3A2E20, // outline, dark brown
	'o': 0xFF8A6E4B, // body feathers
	'+': 0xFFB59A6F, // breast, light feathers
	'b': 0xFFE0A040, // beak
	'w': 0xFFFFFFFF, // eye
	'.': 0xFF000000, // pupil
	'l': 0xFFC0A060, // legs
}

var mascotArt = []string{
	"            ####        ",
	"           #oooo#       ",
	"          #oow.o#bb     ",
	"          #oooo#bb      ",
	"           #oo#         ",
	"           #oo#         ",
	"            #oo#        ",
	"            #oo#        ",
	"            #oo#        ",
	"           #ooo#        ",
	"          #oooo#        ",
	"        ##oooooo##      ",
	"      ##oooooooooo##    ",
	"     #oooooooooooooo#   ",
	"    #oooo++++++oooooo#  ",
	"   #oooo++++++++oooooo# ",
	"   #ooo++++++++++ooooo# ",
	"   #ooo++++++++++ooooo# ",
	"   #oooo++++++++oooooo# ",
	"    #oooo++++++oooooo#  ",
	"    #ooooooooooooooo#   ",
	"     #ooooooooooooo#    ",
	"      ##ooooooooo##     ",
	"        ###ooo###       ",
	"          #l#l#         ",
	"           l l          ",
	"           l l          ",
	"           l l          ",
	"           l l          ",
	"          ll ll         ",
	"         ll   ll        ",
	"                        ",
}

var (
	// MascotW and MascotH are the sprite's pixel dimensions.
	MascotW = len(mascotArt[0]) * mascotScale
	MascotH = len(mascotArt) * mascotScale

	mascotPixels []uint32
)

func init() {
	mascotPixels = make([]uint32, MascotW*MascotH)
	for ay, row := range mascotArt {
		for ax := 0; ax < len(row) && ax*mascotScale < MascotW; ax++ {
			col, ok := mascotColors[row[ax]]
			if !ok {
				continue // transparent
			}
			for dy := 0; dy < mascotScale; dy++ {
				y := ay*mascotScale + dy
				for dx := 0; dx < mascotScale; dx++ {
					x := ax*mascotScale + dx
					mascotPixels[y*MascotW+x] = col
				}
			}
		}
	}
}

// Mascot blits the sprite centered on (cx, cy). alpha 0 is invisible and
// 255 fully opaque; partial alpha blends each channel toward the
// background color, which reads as a fade-in on the cleared screen.
func (d *Drawer) Mascot(cx, cy, alpha int) {
	x0 := cx - MascotW/2
	y0 := cy - MascotH/2

	for y := 0; y < MascotH; y++ {
		sy := y0 + y
		if sy < 0 || sy >= ScreenH {
			continue
		}
		for x := 0; x < MascotW; x++ {
			sx := x0 + x
			if sx < 0 || sx >= ScreenW {
				continue
			}
			px := mascotPixels[y*MascotW+x]
			if px>>24 == 0 {
				continue
			}
			if alpha >= 255 {
				d.pix[sy*ScreenW+sx] = px | 0xFF000000
				continue
			}
			d.pix[sy*ScreenW+sx] = blendToward(px, ColBG, alpha)
		}
	}
}

// blendToward mixes src toward dst per channel; alpha 255 returns src.
func blendToward(src, dst uint32, alpha int) uint32 {
	if alpha < 0 {
		alpha = 0
	}
	sr := int(src >> 16 & 0xFF)
	sg := int(src >> 8 & 0xFF)
	sb := int(src & 0xFF)
	dr := int(dst >> 16 & 0xFF)
	dg := int(dst >> 8 & 0xFF)
	db := int(dst & 0xFF)
	r := dr + (sr-dr)*alpha/255
	g := dg + (sg-dg)*alpha/255
	b := db + (sb-db)*alpha/255
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

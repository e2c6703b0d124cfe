// Interactive viewer for tcolour blend modes and gradient sampling.
//
// Renders a gradient strip in truecolor and 256-colour quantized form, and a
// swatch matrix of every blend mode applied over a set of base colours.
// Tab/Shift-Tab cycle the blend mode, Up/Down adjust the blend layer alpha,
// Left/Right adjust the blend layer grey level, Esc/Ctrl-C quit.
package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tcolour"
	"github.com/lixenwraith/tcolour/terminal"
)

type state struct {
	mode  tcolour.BlendMode
	alpha float64
	grey  float64
}

var blendModes = []tcolour.BlendMode{
	tcolour.BlendNormal,
	tcolour.BlendMultiply,
	tcolour.BlendDivide,
	tcolour.BlendAddition,
	tcolour.BlendSubtract,
	tcolour.BlendScreen,
	tcolour.BlendOverlay,
	tcolour.BlendHardLight,
	tcolour.BlendSoftLight,
	tcolour.BlendDarken,
	tcolour.BlendLighten,
}

var baseColours = []struct {
	name string
	c    tcolour.Colour
}{
	{"Red", tcolour.Red(1.0)},
	{"Green", tcolour.Green(1.0)},
	{"Blue", tcolour.Blue(1.0)},
	{"Grey50", tcolour.Grey(0.5)},
	{"Amber", tcolour.FromUint8(255, 165, 0)},
	{"Navy", tcolour.FromUint8(26, 27, 38)},
	{"Teal", tcolour.FromUint8(0, 139, 139)},
	{"White", tcolour.Grey(1.0)},
}

// galaxyGradient is the noise-palette ramp used by the procedural galaxy
// texture tests.
func galaxyGradient() tcolour.Gradient {
	return tcolour.Gradient{
		{Position: -1.0, Colour: tcolour.Solid(0, 0, 0.02)},
		{Position: -0.1, Colour: tcolour.Solid(0.04, 0.04, 0.08)},
		{Position: 0.3, Colour: tcolour.Solid(0.1, 0.08, 0.24)},
		{Position: 0.6, Colour: tcolour.Solid(0.20, 0.08, 0.45)},
		{Position: 0.75, Colour: tcolour.Solid(0.40, 0.12, 0.55)},
		{Position: 0.9, Colour: tcolour.Solid(0.65, 0.30, 0.75)},
		{Position: 1.0, Colour: tcolour.Solid(0.65, 0.40, 0.80)},
	}
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		panic(err)
	}
	if err := screen.Init(); err != nil {
		panic(err)
	}
	defer screen.Fini()

	st := state{
		mode:  tcolour.BlendScreen,
		alpha: 0.8,
		grey:  0.5,
	}
	modeIdx := 5 // BlendScreen

	gradient := galaxyGradient()

	for {
		screen.Clear()
		w, _ := screen.Size()

		printStr(screen, 0, 0, "TCOLOUR BLEND TESTER", tcolour.Grey(1.0))
		printStr(screen, 0, 1, fmt.Sprintf(
			"Mode [Tab/S-Tab]: %-10s  Alpha [Up/Dn]: %.2f  Grey [Lt/Rt]: %.2f",
			st.mode, st.alpha, st.grey), tcolour.FromUint8(255, 165, 0))

		printStr(screen, 0, 3, "--- Gradient (truecolor vs 256) ---", tcolour.Grey(0.7))
		drawGradientStrip(screen, w, 4, gradient)

		printStr(screen, 0, 7, "--- Blend Matrix ---", tcolour.Grey(0.7))
		drawBlendGrid(screen, 8, st)

		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlC, tcell.KeyEscape:
				return
			case tcell.KeyTab:
				modeIdx = (modeIdx + 1) % len(blendModes)
				st.mode = blendModes[modeIdx]
			case tcell.KeyBacktab:
				modeIdx = (modeIdx - 1 + len(blendModes)) % len(blendModes)
				st.mode = blendModes[modeIdx]
			case tcell.KeyUp:
				st.alpha = clamp01(st.alpha + 0.05)
			case tcell.KeyDown:
				st.alpha = clamp01(st.alpha - 0.05)
			case tcell.KeyRight:
				st.grey = clamp01(st.grey + 0.05)
			case tcell.KeyLeft:
				st.grey = clamp01(st.grey - 0.05)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func drawGradientStrip(screen tcell.Screen, w, y int, g tcolour.Gradient) {
	barWidth := w - 6
	if barWidth < 1 {
		return
	}
	for x := 0; x < barWidth; x++ {
		// Strip spans the gradient's full [-1,1] noise domain
		t := -1.0 + 2.0*float64(x)/float64(barWidth-1)
		c := g.Sample(t)

		tc := terminal.ToTcell(c)
		screen.SetContent(x+2, y, ' ', nil, tcell.StyleDefault.Background(tc))

		quantized := terminal.PaletteColor(c)
		screen.SetContent(x+2, y+1, ' ', nil, tcell.StyleDefault.Background(quantized))
	}
	printStr(screen, barWidth+3, y, "TC", tcolour.Grey(1.0))
	printStr(screen, barWidth+3, y+1, "256", tcolour.Grey(1.0))
}

func drawBlendGrid(screen tcell.Screen, startY int, st state) {
	headers := []string{"Name", "Base", "Blended", "256", "Hex"}
	colX := []int{2, 12, 20, 28, 34}
	for i, h := range headers {
		printStr(screen, colX[i], startY, h, tcolour.Grey(0.7))
	}

	layer := tcolour.Grey(st.grey).WithAlpha(st.alpha)
	y := startY + 2
	for _, base := range baseColours {
		printStr(screen, colX[0], y, base.name, tcolour.Grey(0.8))
		swatch(screen, colX[1], y, 4, terminal.ToTcell(base.c))

		blended := base.c.Blend(layer, st.mode)
		swatch(screen, colX[2], y, 4, terminal.ToTcell(blended))
		swatch(screen, colX[3], y, 4, terminal.PaletteColor(blended))

		printStr(screen, colX[4], y, terminal.Hex(blended), tcolour.Grey(0.7))
		y++
	}
}

func swatch(screen tcell.Screen, x, y, width int, c tcell.Color) {
	style := tcell.StyleDefault.Background(c)
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func printStr(screen tcell.Screen, x, y int, s string, fg tcolour.Colour) {
	style := tcell.StyleDefault.Foreground(terminal.ToTcell(fg))
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

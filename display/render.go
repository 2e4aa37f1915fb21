//go:build !headless

package display

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/wg-forge/hextanks-client/game"
)

func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// hexSize is the flat-top hex radius in pixels at zoom 1.
const hexSize = 28.0

var ownerColors = [][3]float32{
	{0.75, 0.75, 0.75}, // neutral / unowned
	{0.85, 0.25, 0.25},
	{0.25, 0.55, 0.85},
	{0.35, 0.80, 0.35},
	{0.85, 0.75, 0.25},
}

// Viewer owns the window, the hex-outline shader, and the last Update it
// was handed; Run blocks until either the window is closed or the queue
// is stopped.
type Viewer struct {
	window *glfw.Window
	queue  *Queue
	latest Update

	program    uint32
	vao, vbo   uint32
	resolution int32
	center     int32
	colorUnif  int32
}

// NewViewer opens a window, compiles the hex-outline shader, and attaches
// the viewer to queue.
func NewViewer(queue *Queue) (*Viewer, error) {
	window, err := initWindow()
	if err != nil {
		return nil, err
	}

	program, err := linkProgram(hexVertSrc, hexFragSrc)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("hex shader: %w", err)
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return &Viewer{
		window:     window,
		queue:      queue,
		program:    program,
		vao:        vao,
		vbo:        vbo,
		resolution: gl.GetUniformLocation(program, gl.Str("uResolution\x00")),
		center:     gl.GetUniformLocation(program, gl.Str("uCenter\x00")),
		colorUnif:  gl.GetUniformLocation(program, gl.Str("uColor\x00")),
	}, nil
}

// Close tears down the GL context and window.
func (v *Viewer) Close() {
	gl.DeleteBuffers(1, &v.vbo)
	gl.DeleteVertexArrays(1, &v.vao)
	gl.DeleteProgram(v.program)
	v.window.Destroy()
	glfw.Terminate()
}

// Run drives the per-frame draw loop: poll input, drain the freshest
// pending update, clear, draw the board, swap.
func (v *Viewer) Run() error {
	updates := v.queue.merged()

	for !v.window.ShouldClose() {
		glfw.PollEvents()

		select {
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			if len(u.Tanks) > 0 {
				v.latest = u
			}
		default:
		}

		width, height := v.window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		v.drawBoard(width, height)

		v.window.SwapBuffers()
	}
	return nil
}

// drawBoard renders each living tank as a flat-top hex outline colored by
// owner.
func (v *Viewer) drawBoard(width, height int) {
	if len(v.latest.Tanks) == 0 {
		return
	}

	gl.UseProgram(v.program)
	gl.Uniform2f(v.resolution, float32(width), float32(height))
	gl.BindVertexArray(v.vao)

	for _, tank := range v.latest.Tanks {
		if !tank.Alive {
			continue
		}
		cx, cy := hexCenter(tank.Position, width, height)
		color := ownerColors[tank.OwnerID%len(ownerColors)]
		gl.Uniform2f(v.center, cx, cy)
		gl.Uniform3f(v.colorUnif, color[0], color[1], color[2])
		v.uploadOutline()
		gl.DrawArrays(gl.LINE_LOOP, 0, 6)
	}

	gl.BindVertexArray(0)
}

// uploadOutline writes the six flat-top hex corners, relative to the
// center already bound as uCenter, into the shared vertex buffer.
func (v *Viewer) uploadOutline() {
	var verts [12]float32
	for i := 0; i < 6; i++ {
		angle := math.Pi / 180 * float64(60*i)
		verts[i*2] = float32(hexSize * math.Cos(angle))
		verts[i*2+1] = float32(hexSize * math.Sin(angle))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
}

// hexCenter converts axial/cube coordinates into flat-top pixel centers,
// origin at the viewport center.
func hexCenter(c game.Cube, width, height int) (float32, float32) {
	x := hexSize * 1.5 * float32(c.X)
	y := hexSize * (sqrt3 * (float32(c.X)/2 + float32(c.Z)))
	return float32(width)/2 + x, float32(height)/2 + y
}

const sqrt3 = 1.7320508

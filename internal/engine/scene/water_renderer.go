package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/engine/scene/shaders"
	"github.com/Faultbox/wavesurface/internal/engine/shader"
	"github.com/Faultbox/wavesurface/internal/engine/water"
	"github.com/Faultbox/wavesurface/internal/logger"
	"github.com/Faultbox/wavesurface/pkg/math"
)

var waterUniforms = []string{
	"uModel", "uView", "uProjection",
	"uTime", "uWaveLength", "uFrequency", "uWaveSpeed",
	"uSmallWaveElevation", "uSmallWaveFrequency", "uSmallWaveSpeed",
	"uDepthColor", "uSurfaceColor", "uColorOffset", "uColorMultiplier",
}

// WaterRenderer draws the displaced water plane on the GPU.
type WaterRenderer struct {
	program uint32
	loc     map[string]int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	// Model is the plane's world transform.
	Model     math.Mat4
	Wireframe bool
}

// NewWaterRenderer compiles the water program.
func NewWaterRenderer() (*WaterRenderer, error) {
	program, err := shader.CompileProgram(shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}

	loc, missing := shader.Uniforms(program, waterUniforms...)
	if len(missing) > 0 {
		logger.Named("scene").Warn("water uniforms inactive", zap.Strings("names", missing))
	}

	return &WaterRenderer{
		program: program,
		loc:     loc,
		Model:   math.Identity(),
	}, nil
}

// Upload replaces the GPU mesh with the given plane. Positions lie at y=0;
// all displacement happens in the vertex shader.
func (wr *WaterRenderer) Upload(p water.Plane) error {
	positions := p.Positions()
	indices := p.Indices()
	if len(positions) == 0 || len(indices) == 0 {
		return fmt.Errorf("empty plane mesh (%d segments)", p.Segments)
	}

	wr.destroyMesh()

	gl.GenVertexArrays(1, &wr.vao)
	gl.BindVertexArray(wr.vao)

	gl.GenBuffers(1, &wr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &wr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	wr.indexCount = int32(len(indices))
	logger.Named("scene").Debug("water mesh uploaded",
		zap.Int("segments", p.Segments),
		zap.Int("vertices", p.VertexCount()),
		zap.Int32("indices", wr.indexCount))
	return nil
}

// Render draws the plane. Every uniform is written from p on each call.
func (wr *WaterRenderer) Render(view, proj math.Mat4, t float64, p *water.Params) {
	if wr.vao == 0 {
		return
	}

	gl.UseProgram(wr.program)

	gl.UniformMatrix4fv(wr.loc["uModel"], 1, false, &wr.Model[0])
	gl.UniformMatrix4fv(wr.loc["uView"], 1, false, &view[0])
	gl.UniformMatrix4fv(wr.loc["uProjection"], 1, false, &proj[0])

	gl.Uniform1f(wr.loc["uTime"], float32(t))
	gl.Uniform1f(wr.loc["uWaveLength"], float32(p.WaveLength))
	gl.Uniform2f(wr.loc["uFrequency"], float32(p.Frequency[0]), float32(p.Frequency[1]))
	gl.Uniform1f(wr.loc["uWaveSpeed"], float32(p.WaveSpeed))

	gl.Uniform1f(wr.loc["uSmallWaveElevation"], float32(p.SmallWaveElevation))
	gl.Uniform1f(wr.loc["uSmallWaveFrequency"], float32(p.SmallWaveFrequency))
	gl.Uniform1f(wr.loc["uSmallWaveSpeed"], float32(p.SmallWaveSpeed))

	depth := p.DepthColor.Array32()
	surface := p.SurfaceColor.Array32()
	gl.Uniform3fv(wr.loc["uDepthColor"], 1, &depth[0])
	gl.Uniform3fv(wr.loc["uSurfaceColor"], 1, &surface[0])
	gl.Uniform1f(wr.loc["uColorOffset"], float32(p.ColorOffset))
	gl.Uniform1f(wr.loc["uColorMultiplier"], float32(p.ColorMultiplier))

	if wr.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(wr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, wr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (wr *WaterRenderer) destroyMesh() {
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
		wr.vao = 0
	}
	if wr.vbo != 0 {
		gl.DeleteBuffers(1, &wr.vbo)
		wr.vbo = 0
	}
	if wr.ebo != 0 {
		gl.DeleteBuffers(1, &wr.ebo)
		wr.ebo = 0
	}
	wr.indexCount = 0
}

// Destroy releases all resources.
func (wr *WaterRenderer) Destroy() {
	wr.destroyMesh()
	if wr.program != 0 {
		gl.DeleteProgram(wr.program)
		wr.program = 0
	}
}

package main

import (
	_ "embed"
	"fmt"
	"log"
)

var (
	//go:embed shaders/mesh.vert
	vertexShaderSource string

	//go:embed shaders/mesh.frag
	fragmentShaderSource string
)

// Shading modes understood by the vertex shader. Anything above 0.5 draws
// solid white.
const (
	modeColored   float32 = 0
	modeWireframe float32 = 1
	modePoints    float32 = 2
)

const (
	polygonOffsetFactor = 1.0
	polygonOffsetUnits  = 100.0
	vertexPointSize     = 10.0
)

// instanceDisplacements feeds the per-instance disp attribute. Only one
// instance is ever drawn.
var instanceDisplacements = []float32{0, 0}

// Renderer owns every GPU object the viewer creates. None are released;
// they live until the context is destroyed at exit.
type Renderer struct {
	dev device

	program        uint32
	vao            uint32
	vertexBuffer   uint32
	indexBuffer    uint32
	instanceBuffer uint32

	projectionLoc int32
	cameraLoc     int32
	modeLoc       int32

	indexCount int32
	frame      uint64

	viewportWidth  int32
	viewportHeight int32
}

// NewRenderer compiles the shading program and uploads mesh to the GPU.
// A mesh without faces is valid and draws nothing.
func NewRenderer(dev device, mesh *Mesh, cfg Config) (*Renderer, error) {
	r := &Renderer{
		dev:        dev,
		indexCount: int32(len(mesh.Indices)),
	}

	dev.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], cfg.ClearColor[3])

	var err error
	r.program, err = dev.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	dev.UseProgram(r.program)

	r.vao = dev.CreateVertexArray()

	r.vertexBuffer = uploadBuffer(dev, ArrayBuffer, mesh.Vertices, StaticDraw)
	if err := r.bindAttrib("position", 3, 0); err != nil {
		return nil, err
	}

	r.indexBuffer = uploadBuffer(dev, ElementArrayBuffer, mesh.Indices, StaticDraw)
	r.instanceBuffer = uploadBuffer(dev, ArrayBuffer, instanceDisplacements, StaticDraw)
	if err := r.bindAttrib("disp", 2, 1); err != nil {
		return nil, err
	}

	dev.EnableDepthTest()

	r.cameraLoc = dev.UniformLocation(r.program, "camera")
	r.modeLoc = dev.UniformLocation(r.program, "mode")
	r.projectionLoc = dev.UniformLocation(r.program, "projection")
	dev.UniformMatrix4(r.projectionLoc, Perspective(cfg.FovY, cfg.Aspect, cfg.Near, cfg.Far))

	return r, nil
}

// bindAttrib binds the most recently uploaded array buffer to the named
// attribute. position must exist; other attributes the linker dropped are
// skipped.
func (r *Renderer) bindAttrib(name string, components int32, divisor uint32) error {
	loc := r.dev.AttribLocation(r.program, name)
	if loc < 0 {
		if name == "position" {
			return fmt.Errorf("shader has no %q attribute", name)
		}
		log.Printf("attribute %q not active, skipping", name)
		return nil
	}
	r.dev.VertexAttrib(uint32(loc), components, divisor)
	return nil
}

// Resize sets the viewport to the new framebuffer size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.viewportWidth = int32(width)
	r.viewportHeight = int32(height)
	r.dev.Viewport(r.viewportWidth, r.viewportHeight)
}

// Frame returns the number of frames drawn so far.
func (r *Renderer) Frame() uint64 {
	return r.frame
}

// DrawFrame advances the frame counter and draws the mesh three times:
// colored triangles pushed back by a polygon offset, white triangle
// outlines, and white vertex dots.
func (r *Renderer) DrawFrame() {
	r.frame++
	camera := cameraMatrix(r.frame)

	r.dev.Clear()
	r.dev.UniformMatrix4(r.cameraLoc, camera)

	r.dev.EnablePolygonOffsetFill(polygonOffsetFactor, polygonOffsetUnits)
	r.dev.Uniform1f(r.modeLoc, modeColored)
	r.dev.DrawElementsInstanced(Triangles, r.indexCount, 1)

	r.dev.Uniform1f(r.modeLoc, modeWireframe)
	r.dev.DrawElementsInstanced(LineLoop, r.indexCount, 1)

	r.dev.Uniform1f(r.modeLoc, modePoints)
	r.dev.PointSize(vertexPointSize)
	r.dev.DrawElementsInstanced(Points, r.indexCount, 1)
}

package main

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// BufferTarget selects what a buffer object is bound as.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// BufferUsage is the data store usage hint passed to the driver.
type BufferUsage int

const (
	StaticDraw BufferUsage = iota
	DynamicDraw
)

// Primitive is the topology an indexed draw assembles.
type Primitive int

const (
	Triangles Primitive = iota
	LineLoop
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case LineLoop:
		return "line loop"
	case Points:
		return "points"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// device is the slice of the GL API the renderer uses. Object handles only
// come back from Create* calls.
type device interface {
	CompileProgram(vertexSource, fragmentSource string) (uint32, error)
	UseProgram(program uint32)
	CreateVertexArray() uint32
	CreateBuffer(target BufferTarget, data unsafe.Pointer, size int, usage BufferUsage) uint32
	AttribLocation(program uint32, name string) int32
	// VertexAttrib points loc at the currently bound array buffer as
	// tightly packed float vectors and enables it.
	VertexAttrib(loc uint32, components int32, divisor uint32)
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(loc int32, m Mat4)
	Uniform1f(loc int32, v float32)
	Viewport(width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	EnableDepthTest()
	EnablePolygonOffsetFill(factor, units float32)
	PointSize(size float32)
	DrawElementsInstanced(mode Primitive, count, instances int32)
	Version() string
}

// uploadBuffer creates a buffer object holding data. All size and pointer
// arithmetic for buffer uploads lives here. An empty slice creates a
// zero-length buffer.
func uploadBuffer[T float32 | int32](dev device, target BufferTarget, data []T, usage BufferUsage) uint32 {
	if len(data) == 0 {
		return dev.CreateBuffer(target, nil, 0, usage)
	}
	var zero T
	size := len(data) * int(unsafe.Sizeof(zero))
	return dev.CreateBuffer(target, unsafe.Pointer(unsafe.SliceData(data)), size, usage)
}

// glDevice implements device on the current OpenGL 4.1 core context.
type glDevice struct{}

func newGLDevice() (*glDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize gl: %w", err)
	}
	return &glDevice{}, nil
}

func (glDevice) CompileProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %v shader: %v", shaderKind(shaderType), strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func shaderKind(shaderType uint32) string {
	if shaderType == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

func (glDevice) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (glDevice) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return vao
}

// CreateBuffer leaves the new buffer bound to target.
func (glDevice) CreateBuffer(target BufferTarget, data unsafe.Pointer, size int, usage BufferUsage) uint32 {
	glTarget := uint32(gl.ARRAY_BUFFER)
	if target == ElementArrayBuffer {
		glTarget = gl.ELEMENT_ARRAY_BUFFER
	}
	glUsage := uint32(gl.STATIC_DRAW)
	if usage == DynamicDraw {
		glUsage = gl.DYNAMIC_DRAW
	}

	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(glTarget, buf)
	gl.BufferData(glTarget, size, data, glUsage)
	return buf
}

func (glDevice) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (glDevice) VertexAttrib(loc uint32, components int32, divisor uint32) {
	gl.VertexAttribPointerWithOffset(loc, components, gl.FLOAT, false, components*4, 0)
	gl.EnableVertexAttribArray(loc)
	if divisor > 0 {
		gl.VertexAttribDivisor(loc, divisor)
	}
}

func (glDevice) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (glDevice) UniformMatrix4(loc int32, m Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (glDevice) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (glDevice) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (glDevice) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (glDevice) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (glDevice) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

func (glDevice) EnablePolygonOffsetFill(factor, units float32) {
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(factor, units)
}

func (glDevice) PointSize(size float32) {
	gl.PointSize(size)
}

func (glDevice) DrawElementsInstanced(mode Primitive, count, instances int32) {
	var glMode uint32
	switch mode {
	case Triangles:
		glMode = gl.TRIANGLES
	case LineLoop:
		glMode = gl.LINE_LOOP
	case Points:
		glMode = gl.POINTS
	default:
		panic(fmt.Sprintf("unsupported primitive %v", mode))
	}
	gl.DrawElementsInstanced(glMode, count, gl.UNSIGNED_INT, nil, instances)
}

func (glDevice) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

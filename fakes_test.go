package main

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

type fakeBuffer struct {
	target BufferTarget
	usage  BufferUsage
	words  []uint32
}

func (b fakeBuffer) floats() []float32 {
	out := make([]float32, len(b.words))
	for i, w := range b.words {
		out[i] = math.Float32frombits(w)
	}
	return out
}

func (b fakeBuffer) ints() []int32 {
	out := make([]int32, len(b.words))
	for i, w := range b.words {
		out[i] = int32(w)
	}
	return out
}

type fakeAttrib struct {
	buffer     uint32
	components int32
	divisor    uint32
}

// fakeDevice records the GL calls a Renderer makes.
type fakeDevice struct {
	compileErr error
	attribs    map[string]int32

	nextHandle uint32
	program    uint32
	boundArray uint32
	buffers    map[uint32]fakeBuffer
	bound      map[uint32]fakeAttrib
	uniforms   map[int32]string
	matrices   map[string]Mat4
	floats     map[string]float32
	viewport   [2]int32
	clearColor [4]float32
	depthTest  bool
	pointSize  float32
	offset     [2]float32
	calls      []string
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		attribs:  map[string]int32{"position": 0, "disp": 1},
		buffers:  map[uint32]fakeBuffer{},
		bound:    map[uint32]fakeAttrib{},
		uniforms: map[int32]string{},
		matrices: map[string]Mat4{},
		floats:   map[string]float32{},
	}
}

func (d *fakeDevice) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) CompileProgram(vertexSource, fragmentSource string) (uint32, error) {
	if d.compileErr != nil {
		return 0, d.compileErr
	}
	if vertexSource == "" || fragmentSource == "" {
		return 0, errors.New("empty shader source")
	}
	return d.handle(), nil
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.program = program
}

func (d *fakeDevice) CreateVertexArray() uint32 {
	return d.handle()
}

func (d *fakeDevice) CreateBuffer(target BufferTarget, data unsafe.Pointer, size int, usage BufferUsage) uint32 {
	h := d.handle()
	words := make([]uint32, size/4)
	if size > 0 {
		copy(words, unsafe.Slice((*uint32)(data), size/4))
	}
	d.buffers[h] = fakeBuffer{target: target, usage: usage, words: words}
	if target == ArrayBuffer {
		d.boundArray = h
	}
	return h
}

func (d *fakeDevice) AttribLocation(program uint32, name string) int32 {
	if loc, ok := d.attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) VertexAttrib(loc uint32, components int32, divisor uint32) {
	d.bound[loc] = fakeAttrib{buffer: d.boundArray, components: components, divisor: divisor}
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	loc := int32(len(d.uniforms))
	d.uniforms[loc] = name
	return loc
}

func (d *fakeDevice) UniformMatrix4(loc int32, m Mat4) {
	d.matrices[d.uniforms[loc]] = m
	d.record("matrix %s", d.uniforms[loc])
}

func (d *fakeDevice) Uniform1f(loc int32, v float32) {
	d.floats[d.uniforms[loc]] = v
	d.record("%s=%v", d.uniforms[loc], v)
}

func (d *fakeDevice) Viewport(width, height int32) {
	d.viewport = [2]int32{width, height}
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) {
	d.clearColor = [4]float32{r, g, b, a}
}

func (d *fakeDevice) Clear() {
	d.record("clear")
}

func (d *fakeDevice) EnableDepthTest() {
	d.depthTest = true
}

func (d *fakeDevice) EnablePolygonOffsetFill(factor, units float32) {
	d.offset = [2]float32{factor, units}
	d.record("polygon offset")
}

func (d *fakeDevice) PointSize(size float32) {
	d.pointSize = size
}

func (d *fakeDevice) DrawElementsInstanced(mode Primitive, count, instances int32) {
	d.record("draw %v %d x%d", mode, count, instances)
}

func (d *fakeDevice) Version() string {
	return "fake 4.1"
}

// fakeWindow requests close on the poll numbered closeAfter.
type fakeWindow struct {
	closeAfter int
	polls      int
	swaps      int
	sizes      [][2]int
	onPoll     func(poll int)
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	if w.onPoll != nil {
		w.onPoll(w.polls)
	}
}

func (w *fakeWindow) ShouldClose() bool {
	return w.polls >= w.closeAfter
}

func (w *fakeWindow) SetSize(width, height int) {
	w.sizes = append(w.sizes, [2]int{width, height})
}

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
}

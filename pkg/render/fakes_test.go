package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// recorder collects device and program calls in order.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) index(event string) int {
	for i, e := range r.events {
		if e == event {
			return i
		}
	}
	return -1
}

func (r *recorder) lastIndex(event string) int {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i] == event {
			return i
		}
	}
	return -1
}

type fakeTexture struct{ id uint32 }

func (t *fakeTexture) Handle() uint32 { return t.id }

type fakeFramebuffer struct {
	id            uint32
	width, height int
}

func (f *fakeFramebuffer) Handle() uint32            { return f.id }
func (f *fakeFramebuffer) Size() (width, height int) { return f.width, f.height }

type fakeDevice struct {
	rec *recorder

	framebuffer uint32
	depthFunc   DepthFunc
	depthMask   bool
	blend       bool
	mode        RenderMode
	textures    map[int]uint32
}

func newFakeDevice(rec *recorder) *fakeDevice {
	return &fakeDevice{rec: rec, depthMask: true, textures: map[int]uint32{}}
}

func (d *fakeDevice) BindFramebuffer(fb Framebuffer) {
	if fb == nil {
		d.framebuffer = 0
	} else {
		d.framebuffer = fb.Handle()
	}
	d.rec.add("framebuffer %d", d.framebuffer)
}

func (d *fakeDevice) Viewport(width, height int) { d.rec.add("viewport %dx%d", width, height) }
func (d *fakeDevice) Clear(mask ClearMask)       { d.rec.add("clear %d", mask) }

func (d *fakeDevice) PolygonMode(mode RenderMode) {
	d.mode = mode
	d.rec.add("polygon %s", mode)
}

func (d *fakeDevice) DepthFunc(fn DepthFunc) {
	d.depthFunc = fn
	d.rec.add("depthfunc %d", fn)
}

func (d *fakeDevice) DepthMask(write bool) {
	d.depthMask = write
	d.rec.add("depthmask %t", write)
}

func (d *fakeDevice) Blend(enabled bool) {
	d.blend = enabled
	d.rec.add("blend %t", enabled)
}

func (d *fakeDevice) BindTexture(unit int, target TextureTarget, tex Texture) {
	var id uint32
	if tex != nil {
		id = tex.Handle()
	}
	d.textures[unit] = id
	d.rec.add("texture %d %d", unit, id)
}

// fakeProgram stores uniform values per frame; history keeps every upload.
type fakeProgram struct {
	name string
	rec  *recorder

	values  map[string]any
	history map[string][]any
}

func newFakeProgram(name string, rec *recorder) *fakeProgram {
	return &fakeProgram{name: name, rec: rec, values: map[string]any{}, history: map[string][]any{}}
}

func (p *fakeProgram) set(name string, v any) {
	p.values[name] = v
	p.history[name] = append(p.history[name], v)
}

func (p *fakeProgram) Use()                                { p.rec.add("use %s", p.name) }
func (p *fakeProgram) SetBool(name string, value bool)     { p.set(name, value) }
func (p *fakeProgram) SetInt(name string, value int32)     { p.set(name, value) }
func (p *fakeProgram) SetFloat(name string, value float32) { p.set(name, value) }
func (p *fakeProgram) SetVec2(name string, vec mgl32.Vec2) { p.set(name, vec) }
func (p *fakeProgram) SetVec3(name string, vec mgl32.Vec3) { p.set(name, vec) }
func (p *fakeProgram) SetMat3(name string, mat mgl32.Mat3) { p.set(name, mat) }
func (p *fakeProgram) SetMat4(name string, mat mgl32.Mat4) { p.set(name, mat) }

type fakeMesh struct {
	name string
	rec  *recorder
}

func (m *fakeMesh) Draw(p Program) {
	m.rec.add("draw %s with %s", m.name, p.(*fakeProgram).name)
}

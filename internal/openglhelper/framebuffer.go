package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/go-garden/pkg/render"
)

var _ render.Framebuffer = (*Framebuffer)(nil)

// Framebuffer is an off-screen render target.
type Framebuffer struct {
	ID     uint32
	width  int
	height int
}

// NewShadowFramebuffer creates a depth-only framebuffer of size x size and
// its depth texture.
func NewShadowFramebuffer(size int) (*Framebuffer, *Texture, error) {
	depth := NewDepthTexture(size, size)

	var id uint32
	gl.GenFramebuffers(1, &id)
	gl.BindFramebuffer(gl.FRAMEBUFFER, id)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, depth.ID, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	fb := &Framebuffer{ID: id, width: size, height: size}
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Delete()
		depth.Delete()
		return nil, nil, fmt.Errorf("shadow framebuffer incomplete: status 0x%x", status)
	}
	return fb, depth, nil
}

// Handle returns the GL name.
func (f *Framebuffer) Handle() uint32 {
	return f.ID
}

// Size returns the attachment dimensions.
func (f *Framebuffer) Size() (width, height int) {
	return f.width, f.height
}

// Delete releases the framebuffer. Attachments are owned by the caller.
func (f *Framebuffer) Delete() {
	gl.DeleteFramebuffers(1, &f.ID)
}

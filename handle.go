package shade

import "github.com/cogentcore/webgpu/wgpu"

// Texture is a shared reference to a GPU texture binding. The underlying
// view is created and released by the resource manager; this package
// only stores and copies the reference.
type Texture struct {
	View  *wgpu.TextureView
	Label string
}

// Sampler is a shared reference to a GPU sampler.
type Sampler struct {
	Sampler *wgpu.Sampler
	Label   string
}

// Buffer is a shared reference to a GPU buffer backing a uniform block.
type Buffer struct {
	Buffer *wgpu.Buffer
	Label  string
}

// TextureParam pairs a texture with an optional sampler. Not every
// texture needs one: multisampled textures bind without a sampler.
// Whether a nil sampler is valid for a given texture is a runtime fact,
// not enforced here.
type TextureParam struct {
	Texture Texture
	Sampler *Sampler
}

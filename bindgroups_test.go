package shade

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupedBindingsGroupsByLayout(t *testing.T) {
	info := NewProgramInfo(
		[]UniformVar{{Name: "color", Kind: KindFloatVec4}},
		[]BlockVar{{Name: "lights"}},
		[]TextureVar{{Name: "albedo"}},
	)
	layout := &BindingLayout{
		Uniforms: []BindingSlot{{Group: 0, Binding: 0}},
		Blocks:   []BindingSlot{{Group: 0, Binding: 1}},
		Textures: []BindingSlot{{Group: 1, Binding: 0}},
		Samplers: []BindingSlot{{Group: 1, Binding: 1}},
	}

	dict := NewParamDictionary().
		AddUniform("color", UniformVec4(mgl32.Vec4{1, 0, 0, 1})).
		AddBlock("lights", Buffer{Label: "lights"}).
		AddTexture("albedo", TextureParam{Texture: Texture{Label: "albedo"}, Sampler: &Sampler{Label: "linear"}})
	link, err := dict.CreateLink(info)
	require.NoError(t, err)

	storage := NewParamStorage(info)
	dict.FillParams(link, storage)

	uniformBuffers := make([]*wgpu.Buffer, 1)
	grouped := GroupedBindings(storage, layout, uniformBuffers)

	require.Len(t, grouped, 2)
	require.Len(t, grouped[0], 2)
	require.Len(t, grouped[1], 2)

	assert.Equal(t, uint32(0), grouped[0][0].Binding)
	assert.Equal(t, uint32(1), grouped[0][1].Binding)
	assert.Equal(t, uint32(0), grouped[1][0].Binding)
	assert.Equal(t, uint32(1), grouped[1][1].Binding)
}

func TestGroupedBindingsSkipsEmptySlotsAndSamplers(t *testing.T) {
	info := NewProgramInfo(nil, nil, []TextureVar{{Name: "msaa"}})
	layout := &BindingLayout{
		Textures: []BindingSlot{{Group: 0, Binding: 0}},
		Samplers: []BindingSlot{{Group: 0, Binding: 1}},
	}

	storage := NewParamStorage(info)
	// Nothing filled yet: no entries at all.
	assert.Empty(t, GroupedBindings(storage, layout, nil))

	// A multisampled texture binds without a sampler; only the texture
	// entry is emitted.
	TextureParam{Texture: Texture{Label: "msaa"}}.Put(0, storage)
	grouped := GroupedBindings(storage, layout, nil)
	require.Len(t, grouped, 1)
	assert.Len(t, grouped[0], 1)
}

package shade

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// BindingSlot locates one declared variable in a pipeline's bind group
// layout.
type BindingSlot struct {
	Group   uint32
	Binding uint32
}

// BindingLayout maps declared variables, by ParameterId, to bind group
// slots. Each list is parallel to the corresponding ProgramInfo list.
// Samplers is parallel to Textures and is consulted only for texture
// params that carry a sampler.
type BindingLayout struct {
	Uniforms []BindingSlot
	Blocks   []BindingSlot
	Textures []BindingSlot
	Samplers []BindingSlot
}

// CreateUniformBuffers allocates one uniform buffer per declared uniform
// variable, sized to the variable's kind. The caller owns the buffers
// and releases them with the pipeline.
func CreateUniformBuffers(device *wgpu.Device, info *ProgramInfo) ([]*wgpu.Buffer, error) {
	buffers := make([]*wgpu.Buffer, len(info.Uniforms))
	for i, v := range info.Uniforms {
		buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: v.Name,
			Size:  uint64(v.Kind.ByteSize()),
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create uniform buffer for %q: %w", v.Name, err)
		}
		buffers[i] = buf
	}
	return buffers, nil
}

// WriteUniforms uploads every filled uniform slot of the storage into
// its per-variable buffer. Buffers must come from CreateUniformBuffers
// for the same program.
func WriteUniforms(queue *wgpu.Queue, storage *ParamStorage, buffers []*wgpu.Buffer) error {
	for i, u := range storage.Uniforms {
		if u == nil {
			continue
		}
		if err := queue.WriteBuffer(buffers[i], 0, u.Bytes()); err != nil {
			return fmt.Errorf("failed to write uniform buffer %d: %w", i, err)
		}
	}
	return nil
}

// GroupedBindings converts a filled storage into bind group entries
// keyed by group id, ready for CreateBindGroups. Empty slots are
// skipped. uniformBuffers is the per-uniform buffer list from
// CreateUniformBuffers; pass nil when the program declares no uniforms.
func GroupedBindings(storage *ParamStorage, layout *BindingLayout, uniformBuffers []*wgpu.Buffer) map[uint32][]wgpu.BindGroupEntry {
	grouped := map[uint32][]wgpu.BindGroupEntry{}
	for i, u := range storage.Uniforms {
		if u == nil {
			continue
		}
		slot := layout.Uniforms[i]
		grouped[slot.Group] = append(grouped[slot.Group], wgpu.BindGroupEntry{
			Binding: slot.Binding,
			Buffer:  uniformBuffers[i],
			Size:    wgpu.WholeSize,
		})
	}
	for i, b := range storage.Blocks {
		if b == nil {
			continue
		}
		slot := layout.Blocks[i]
		grouped[slot.Group] = append(grouped[slot.Group], wgpu.BindGroupEntry{
			Binding: slot.Binding,
			Buffer:  b.Buffer,
			Size:    wgpu.WholeSize,
		})
	}
	for i, t := range storage.Textures {
		if t == nil {
			continue
		}
		slot := layout.Textures[i]
		grouped[slot.Group] = append(grouped[slot.Group], wgpu.BindGroupEntry{
			Binding:     slot.Binding,
			TextureView: t.Texture.View,
			Size:        wgpu.WholeSize,
		})
		if t.Sampler != nil {
			samplerSlot := layout.Samplers[i]
			grouped[samplerSlot.Group] = append(grouped[samplerSlot.Group], wgpu.BindGroupEntry{
				Binding: samplerSlot.Binding,
				Sampler: t.Sampler.Sampler,
				Size:    wgpu.WholeSize,
			})
		}
	}
	return grouped
}

// CreateBindGroups builds one bind group per group id from the grouped
// entries, using the pipeline's own layouts.
func CreateBindGroups(grouped map[uint32][]wgpu.BindGroupEntry, pipeline *wgpu.RenderPipeline, device *wgpu.Device) (map[uint32]*wgpu.BindGroup, error) {
	bindGroups := map[uint32]*wgpu.BindGroup{}
	for groupId, entries := range grouped {
		bindGroupLayout := pipeline.GetBindGroupLayout(groupId)
		bindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Layout:  bindGroupLayout,
			Entries: entries,
		})
		bindGroupLayout.Release()
		if err != nil {
			return nil, fmt.Errorf("failed to create bind group %d: %w", groupId, err)
		}
		bindGroups[groupId] = bindGroup
	}
	return bindGroups, nil
}

package shade

import "testing"

func makeInfo3() *ProgramInfo {
	return NewProgramInfo(
		[]UniformVar{{Name: "a", Kind: KindFloat32}, {Name: "b", Kind: KindInt32}},
		[]BlockVar{{Name: "c"}},
		[]TextureVar{{Name: "d"}},
	)
}

func TestNewParamStorageSizes(t *testing.T) {
	storage := NewParamStorage(makeInfo3())
	if len(storage.Uniforms) != 2 || len(storage.Blocks) != 1 || len(storage.Textures) != 1 {
		t.Fatalf("storage sized %d/%d/%d, want 2/1/1",
			len(storage.Uniforms), len(storage.Blocks), len(storage.Textures))
	}
	for i, u := range storage.Uniforms {
		if u != nil {
			t.Errorf("uniform slot %d should start empty", i)
		}
	}
}

func TestParamStorageReset(t *testing.T) {
	storage := NewParamStorage(makeInfo3())
	UniformFloat32(1).Put(0, storage)
	Buffer{Label: "c"}.Put(0, storage)
	TextureParam{Texture: Texture{Label: "d"}}.Put(0, storage)

	storage.Reset()

	if storage.Uniforms[0] != nil || storage.Blocks[0] != nil || storage.Textures[0] != nil {
		t.Error("Reset should empty every slot")
	}
}

func TestPutWritesExactlyOneSlot(t *testing.T) {
	storage := NewParamStorage(makeInfo3())
	sentinel := UniformInt32(99)
	storage.Uniforms[0] = &sentinel

	UniformInt32(5).Put(1, storage)

	if storage.Uniforms[0] == nil || *storage.Uniforms[0] != sentinel {
		t.Error("Put touched a slot other than its own")
	}
	if storage.Uniforms[1] == nil || *storage.Uniforms[1] != UniformInt32(5) {
		t.Error("Put did not write its slot")
	}
	if storage.Blocks[0] != nil || storage.Textures[0] != nil {
		t.Error("Put leaked into another family")
	}
}

func TestPutCopiesTheValue(t *testing.T) {
	storage := NewParamStorage(makeInfo3())
	v := UniformFloat32(1)
	v.Put(0, storage)
	v.Put(1, storage) // same parameter, second slot; no state shared

	if storage.Uniforms[0] == storage.Uniforms[1] {
		t.Error("Put must store an independent copy per slot")
	}
	if *storage.Uniforms[0] != *storage.Uniforms[1] {
		t.Error("both slots should hold equal values")
	}
}

func TestParameterChecks(t *testing.T) {
	u := UniformFloat32(1)
	if !u.CheckUniform(UniformVar{Name: "x", Kind: KindFloat32}) {
		t.Error("Float32 value should match a Float32 declaration")
	}
	if u.CheckUniform(UniformVar{Name: "x", Kind: KindInt32}) {
		t.Error("no int/float promotion")
	}
	if u.CheckBlock(BlockVar{Name: "x"}) || u.CheckTexture(TextureVar{Name: "x"}) {
		t.Error("uniform values belong to the uniform family only")
	}

	b := Buffer{Label: "x"}
	if !b.CheckBlock(BlockVar{Name: "x"}) {
		t.Error("buffers bind to blocks")
	}
	if b.CheckUniform(UniformVar{Name: "x"}) || b.CheckTexture(TextureVar{Name: "x"}) {
		t.Error("buffers belong to the block family only")
	}

	tx := TextureParam{Texture: Texture{Label: "x"}}
	if !tx.CheckTexture(TextureVar{Name: "x"}) {
		t.Error("texture params bind to textures")
	}
	if tx.CheckUniform(UniformVar{Name: "x"}) || tx.CheckBlock(BlockVar{Name: "x"}) {
		t.Error("texture params belong to the texture family only")
	}
}

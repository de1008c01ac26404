package shade

import "github.com/google/uuid"

// ParameterId is the position of a declared variable within one of a
// program's three variable lists. Ids are assigned densely, in the order
// reflection lists the variables, and are only meaningful for the
// program that assigned them; two programs may reuse the same id for
// unrelated variables.
type ParameterId uint16

// UniformVar describes one uniform variable declared by a compiled
// program.
type UniformVar struct {
	Name string
	Kind UniformKind
}

// BlockVar describes one buffer-backed block declared by a compiled
// program.
type BlockVar struct {
	Name string
}

// TextureVar describes one texture binding declared by a compiled
// program.
type TextureVar struct {
	Name string
}

// ProgramInfo is the full declared variable interface of one compiled
// program, as produced by shader reflection. The order of each list
// defines ParameterId assignment for that program.
type ProgramInfo struct {
	id       uuid.UUID
	Uniforms []UniformVar
	Blocks   []BlockVar
	Textures []TextureVar
}

func NewProgramInfo(uniforms []UniformVar, blocks []BlockVar, textures []TextureVar) *ProgramInfo {
	return &ProgramInfo{
		id:       uuid.New(),
		Uniforms: uniforms,
		Blocks:   blocks,
		Textures: textures,
	}
}

// Id identifies this program instance. Links and storages record it, so
// that a link built against one program cannot be replayed against
// another that happens to declare the same variable counts.
func (info *ProgramInfo) Id() uuid.UUID { return info.id }

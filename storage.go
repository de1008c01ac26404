package shade

import "github.com/google/uuid"

// ParamStorage is the per-draw output buffer: three arrays of optional
// resolved values, indexed by ParameterId. A nil slot means the variable
// has not been filled. Command submission consumes a fully filled
// storage; see GroupedBindings.
type ParamStorage struct {
	program  uuid.UUID
	Uniforms []*UniformValue
	Blocks   []*Buffer
	Textures []*TextureParam
}

// NewParamStorage allocates a storage sized to the program's declared
// variable counts, all slots empty.
func NewParamStorage(info *ProgramInfo) *ParamStorage {
	return &ParamStorage{
		program:  info.Id(),
		Uniforms: make([]*UniformValue, len(info.Uniforms)),
		Blocks:   make([]*Buffer, len(info.Blocks)),
		Textures: make([]*TextureParam, len(info.Textures)),
	}
}

// Reset empties every slot, keeping the backing arrays.
func (s *ParamStorage) Reset() {
	for i := range s.Uniforms {
		s.Uniforms[i] = nil
	}
	for i := range s.Blocks {
		s.Blocks[i] = nil
	}
	for i := range s.Textures {
		s.Textures[i] = nil
	}
}

// Parameter is a value that can bind itself to one declared program
// variable: it reports which variable declarations it is compatible
// with, and writes itself into a single storage slot.
//
// Put mutates exactly the one slot at id in the family the parameter
// belongs to; it never reads or touches any other slot.
type Parameter interface {
	CheckUniform(v UniformVar) bool
	CheckBlock(v BlockVar) bool
	CheckTexture(v TextureVar) bool
	Put(id ParameterId, storage *ParamStorage)
}

// UniformValue binds to uniform variables of the same kind. No numeric
// width coercion, no int/float promotion.
func (u UniformValue) CheckUniform(v UniformVar) bool { return u.kind == v.Kind }
func (u UniformValue) CheckBlock(BlockVar) bool       { return false }
func (u UniformValue) CheckTexture(TextureVar) bool   { return false }

func (u UniformValue) Put(id ParameterId, storage *ParamStorage) {
	val := u
	storage.Uniforms[id] = &val
}

// Buffer binds to any block variable; reflection carries no block shape
// beyond the name, so there is nothing further to check.
func (b Buffer) CheckUniform(UniformVar) bool { return false }
func (b Buffer) CheckBlock(BlockVar) bool     { return true }
func (b Buffer) CheckTexture(TextureVar) bool { return false }

func (b Buffer) Put(id ParameterId, storage *ParamStorage) {
	val := b
	storage.Blocks[id] = &val
}

// TextureParam binds to any texture variable.
func (t TextureParam) CheckUniform(UniformVar) bool { return false }
func (t TextureParam) CheckBlock(BlockVar) bool     { return false }
func (t TextureParam) CheckTexture(TextureVar) bool { return true }

func (t TextureParam) Put(id ParameterId, storage *ParamStorage) {
	val := t
	storage.Textures[id] = &val
}

var (
	_ Parameter = UniformValue{}
	_ Parameter = Buffer{}
	_ Parameter = TextureParam{}
)

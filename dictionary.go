package shade

import "github.com/google/uuid"

// NamedUniform is one dictionary cell holding a uniform value.
type NamedUniform struct {
	Name  string
	Value UniformValue
}

// NamedBlock is one dictionary cell holding a block buffer.
type NamedBlock struct {
	Name  string
	Value Buffer
}

// NamedTexture is one dictionary cell holding a texture parameter.
type NamedTexture struct {
	Name  string
	Value TextureParam
}

// ParamDictionary is a runtime, name-indexed table of parameter value
// cells, meant to be shared between different programs. Each program is
// linked once by name resolution; per-draw fills then copy current cell
// values by index, without any name lookups.
//
// Names within one category should be unique; a duplicate resolves to
// the first match. Cells may be mutated between draws through the Set
// accessors. The dictionary must outlive every link built from it, and
// a dictionary instance is single-threaded: mutating a cell while a
// fill is in progress on another goroutine is not supported.
type ParamDictionary struct {
	uniforms []NamedUniform
	blocks   []NamedBlock
	textures []NamedTexture
}

func NewParamDictionary() *ParamDictionary {
	return &ParamDictionary{}
}

// AddUniform appends a uniform cell. Returns the dictionary for
// chaining.
func (d *ParamDictionary) AddUniform(name string, value UniformValue) *ParamDictionary {
	d.uniforms = append(d.uniforms, NamedUniform{Name: name, Value: value})
	return d
}

// AddBlock appends a block cell.
func (d *ParamDictionary) AddBlock(name string, value Buffer) *ParamDictionary {
	d.blocks = append(d.blocks, NamedBlock{Name: name, Value: value})
	return d
}

// AddTexture appends a texture cell.
func (d *ParamDictionary) AddTexture(name string, value TextureParam) *ParamDictionary {
	d.textures = append(d.textures, NamedTexture{Name: name, Value: value})
	return d
}

// SetUniform updates the first uniform cell with the given name.
// Reports whether such a cell exists. Changing a cell to a different
// kind than it had at link time bypasses link-time validation; keep the
// kind stable for the lifetime of any link.
func (d *ParamDictionary) SetUniform(name string, value UniformValue) bool {
	if i := uniformCellIndex(d.uniforms, name); i >= 0 {
		d.uniforms[i].Value = value
		return true
	}
	return false
}

// SetBlock updates the first block cell with the given name.
func (d *ParamDictionary) SetBlock(name string, value Buffer) bool {
	if i := blockCellIndex(d.blocks, name); i >= 0 {
		d.blocks[i].Value = value
		return true
	}
	return false
}

// SetTexture updates the first texture cell with the given name.
func (d *ParamDictionary) SetTexture(name string, value TextureParam) bool {
	if i := textureCellIndex(d.textures, name); i >= 0 {
		d.textures[i].Value = value
		return true
	}
	return false
}

// Uniform reads the current value of the first uniform cell with the
// given name.
func (d *ParamDictionary) Uniform(name string) (UniformValue, bool) {
	if i := uniformCellIndex(d.uniforms, name); i >= 0 {
		return d.uniforms[i].Value, true
	}
	return UniformValue{}, false
}

// Block reads the current value of the first block cell with the given
// name.
func (d *ParamDictionary) Block(name string) (Buffer, bool) {
	if i := blockCellIndex(d.blocks, name); i >= 0 {
		return d.blocks[i].Value, true
	}
	return Buffer{}, false
}

// Texture reads the current value of the first texture cell with the
// given name.
func (d *ParamDictionary) Texture(name string) (TextureParam, bool) {
	if i := textureCellIndex(d.textures, name); i >= 0 {
		return d.textures[i].Value, true
	}
	return TextureParam{}, false
}

// DictionaryLink redirects a program's declared variables to cells of
// the dictionary it was built from. It stores indices only, never
// values; it is meaningless against any other dictionary instance or
// program, and FillParams enforces that pairing.
type DictionaryLink struct {
	program  uuid.UUID
	dict     *ParamDictionary
	uniforms []int
	blocks   []int
	textures []int
}

// CreateLink resolves every declared variable of the program against the
// dictionary by exact name match, in declared order, first match wins.
// A declared name absent from the dictionary fails with the matching
// Missing error; a resolved uniform whose cell kind does not match the
// declaration fails with BadUniform. A nil dictionary fails with
// MissingSelf: name resolution needs a concrete instance.
func (d *ParamDictionary) CreateLink(info *ProgramInfo) (*DictionaryLink, error) {
	if d == nil {
		return nil, missingSelf()
	}
	link := &DictionaryLink{
		program:  info.Id(),
		dict:     d,
		uniforms: make([]int, 0, len(info.Uniforms)),
		blocks:   make([]int, 0, len(info.Blocks)),
		textures: make([]int, 0, len(info.Textures)),
	}
	for _, v := range info.Uniforms {
		i := uniformCellIndex(d.uniforms, v.Name)
		if i < 0 {
			return nil, missingUniform(v.Name)
		}
		if !d.uniforms[i].Value.CheckUniform(v) {
			return nil, badUniform(v.Name)
		}
		link.uniforms = append(link.uniforms, i)
	}
	for _, v := range info.Blocks {
		i := blockCellIndex(d.blocks, v.Name)
		if i < 0 || !d.blocks[i].Value.CheckBlock(v) {
			return nil, missingBlock(v.Name)
		}
		link.blocks = append(link.blocks, i)
	}
	for _, v := range info.Textures {
		i := textureCellIndex(d.textures, v.Name)
		if i < 0 || !d.textures[i].Value.CheckTexture(v) {
			return nil, missingTexture(v.Name)
		}
		link.textures = append(link.textures, i)
	}
	pkgLogger.Debugf("linked dictionary to program %s: %d uniforms, %d blocks, %d textures",
		info.Id(), len(link.uniforms), len(link.blocks), len(link.textures))
	return link, nil
}

// FillParams copies the current value of every linked cell into the
// storage slot of the corresponding declared variable: position i in a
// link sequence reads the dictionary cell at link index i and writes
// storage slot i. The dictionary is not mutated.
//
// Reusing a link against the wrong dictionary or storage is a programmer
// fault and panics rather than writing out of bounds or into the wrong
// slots.
func (d *ParamDictionary) FillParams(link *DictionaryLink, storage *ParamStorage) {
	if link.dict != d {
		panic("shade: dictionary link used with a different dictionary instance")
	}
	if storage.program != uuid.Nil && storage.program != link.program {
		panic("shade: dictionary link used with storage of a different program")
	}
	if len(storage.Uniforms) < len(link.uniforms) ||
		len(storage.Blocks) < len(link.blocks) ||
		len(storage.Textures) < len(link.textures) {
		panic("shade: dictionary link does not fit the given storage")
	}
	for i, cell := range link.uniforms {
		d.uniforms[cell].Value.Put(ParameterId(i), storage)
	}
	for i, cell := range link.blocks {
		d.blocks[cell].Value.Put(ParameterId(i), storage)
	}
	for i, cell := range link.textures {
		d.textures[cell].Value.Put(ParameterId(i), storage)
	}
}

func uniformCellIndex(cells []NamedUniform, name string) int {
	for i := range cells {
		if cells[i].Name == name {
			return i
		}
	}
	return -1
}

func blockCellIndex(cells []NamedBlock, name string) int {
	for i := range cells {
		if cells[i].Name == name {
			return i
		}
	}
	return -1
}

func textureCellIndex(cells []NamedTexture, name string) int {
	for i := range cells {
		if cells[i].Name == name {
			return i
		}
	}
	return -1
}

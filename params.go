package shade

// ShaderParam binds a parameter source to compiled programs in two
// phases. CreateLink runs once per (source, program) pair and is the
// expensive step: it resolves the program's declared variables against
// the source and validates them, producing a link of index mappings.
// FillParams runs once per draw and is the cheap step: it walks the link
// and copies current values into the storage, in time proportional to
// the number of declared variables.
//
// A link is only valid paired with the exact source and program it was
// built from. FillParams must not mutate the source.
type ShaderParam[L any] interface {
	CreateLink(info *ProgramInfo) (L, error)
	FillParams(link L, storage *ParamStorage)
}

// EmptyParams is the parameter source for programs that declare no
// variables at all.
type EmptyParams struct{}

// EmptyLink carries no data.
type EmptyLink struct{}

// CreateLink succeeds only if the program declares zero uniforms, zero
// blocks and zero textures; otherwise it reports the first declared
// variable, checking uniforms, then blocks, then textures.
func (EmptyParams) CreateLink(info *ProgramInfo) (EmptyLink, error) {
	if len(info.Uniforms) > 0 {
		return EmptyLink{}, missingUniform(info.Uniforms[0].Name)
	}
	if len(info.Blocks) > 0 {
		return EmptyLink{}, missingBlock(info.Blocks[0].Name)
	}
	if len(info.Textures) > 0 {
		return EmptyLink{}, missingTexture(info.Textures[0].Name)
	}
	return EmptyLink{}, nil
}

// FillParams writes nothing: there are no variables to fill.
func (EmptyParams) FillParams(EmptyLink, *ParamStorage) {}

var (
	_ ShaderParam[EmptyLink]       = EmptyParams{}
	_ ShaderParam[*DictionaryLink] = (*ParamDictionary)(nil)
)

package shade

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyParamsLinksTrivialProgram(t *testing.T) {
	info := NewProgramInfo(nil, nil, nil)

	link, err := EmptyParams{}.CreateLink(info)
	require.NoError(t, err)

	storage := NewParamStorage(info)
	EmptyParams{}.FillParams(link, storage)
	assert.Empty(t, storage.Uniforms)
	assert.Empty(t, storage.Blocks)
	assert.Empty(t, storage.Textures)
}

func TestEmptyParamsReportsFirstDeclaredVariable(t *testing.T) {
	cases := []struct {
		name string
		info *ProgramInfo
		code ParameterErrorCode
		want string
	}{
		{
			name: "uniforms checked first",
			info: NewProgramInfo(
				[]UniformVar{{Name: "mvp", Kind: KindFloatMat4}, {Name: "tint", Kind: KindFloatVec4}},
				[]BlockVar{{Name: "lights"}},
				[]TextureVar{{Name: "albedo"}},
			),
			code: ErrMissingUniform,
			want: "mvp",
		},
		{
			name: "then blocks",
			info: NewProgramInfo(nil, []BlockVar{{Name: "lights"}}, []TextureVar{{Name: "albedo"}}),
			code: ErrMissingBlock,
			want: "lights",
		},
		{
			name: "then textures",
			info: NewProgramInfo(nil, nil, []TextureVar{{Name: "albedo"}}),
			code: ErrMissingTexture,
			want: "albedo",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := EmptyParams{}.CreateLink(c.info)
			var perr *ParameterError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, c.code, perr.Code)
			assert.Equal(t, c.want, perr.Name)
		})
	}
}

func TestNilDictionaryFailsWithMissingSelf(t *testing.T) {
	info := NewProgramInfo([]UniformVar{{Name: "color", Kind: KindFloatVec4}}, nil, nil)

	var dict *ParamDictionary
	_, err := dict.CreateLink(info)

	var perr *ParameterError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ErrMissingSelf, perr.Code)
}

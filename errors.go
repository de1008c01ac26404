package shade

import "fmt"

// ParameterErrorCode classifies why linking failed.
type ParameterErrorCode uint8

const (
	// ErrMissingSelf: linking needed a concrete parameter source
	// instance to resolve against, but none was available.
	ErrMissingSelf ParameterErrorCode = iota
	// ErrMissingUniform: the program declares a uniform the source
	// cannot supply.
	ErrMissingUniform
	// ErrMissingBlock: the program declares a block the source cannot
	// supply.
	ErrMissingBlock
	// ErrMissingTexture: the program declares a texture the source
	// cannot supply.
	ErrMissingTexture
	// ErrBadUniform: the source has a value for the uniform, but its
	// kind does not match the declaration.
	ErrBadUniform
	// ErrBadBlock: reserved for block shape validation.
	ErrBadBlock
	// ErrBadTexture: reserved for texture shape validation.
	ErrBadTexture
)

func (c ParameterErrorCode) String() string {
	switch c {
	case ErrMissingSelf:
		return "MissingSelf"
	case ErrMissingUniform:
		return "MissingUniform"
	case ErrMissingBlock:
		return "MissingBlock"
	case ErrMissingTexture:
		return "MissingTexture"
	case ErrBadUniform:
		return "BadUniform"
	case ErrBadBlock:
		return "BadBlock"
	case ErrBadTexture:
		return "BadTexture"
	}
	return fmt.Sprintf("ParameterErrorCode(%d)", uint8(c))
}

// ParameterError reports why linking a parameter source against a
// program failed. It is produced only at link time; a successfully
// created link never fails to fill.
type ParameterError struct {
	Code ParameterErrorCode
	// Name is the offending variable, empty for ErrMissingSelf.
	Name string
}

func (e *ParameterError) Error() string {
	switch e.Code {
	case ErrMissingSelf:
		return "shade: no parameter source instance available for linking"
	case ErrMissingUniform:
		return fmt.Sprintf("shade: missing uniform %q", e.Name)
	case ErrMissingBlock:
		return fmt.Sprintf("shade: missing block %q", e.Name)
	case ErrMissingTexture:
		return fmt.Sprintf("shade: missing texture %q", e.Name)
	case ErrBadUniform:
		return fmt.Sprintf("shade: mismatched uniform %q", e.Name)
	case ErrBadBlock:
		return fmt.Sprintf("shade: mismatched block %q", e.Name)
	case ErrBadTexture:
		return fmt.Sprintf("shade: mismatched texture %q", e.Name)
	}
	return fmt.Sprintf("shade: parameter error %d on %q", uint8(e.Code), e.Name)
}

func missingSelf() *ParameterError {
	return &ParameterError{Code: ErrMissingSelf}
}

func missingUniform(name string) *ParameterError {
	return &ParameterError{Code: ErrMissingUniform, Name: name}
}

func missingBlock(name string) *ParameterError {
	return &ParameterError{Code: ErrMissingBlock, Name: name}
}

func missingTexture(name string) *ParameterError {
	return &ParameterError{Code: ErrMissingTexture, Name: name}
}

func badUniform(name string) *ParameterError {
	return &ParameterError{Code: ErrBadUniform, Name: name}
}

package shade

import (
	"errors"
	"fmt"
	"testing"
)

func TestParameterErrorMessages(t *testing.T) {
	cases := []struct {
		err  *ParameterError
		want string
	}{
		{missingSelf(), "shade: no parameter source instance available for linking"},
		{missingUniform("color"), `shade: missing uniform "color"`},
		{missingBlock("lights"), `shade: missing block "lights"`},
		{missingTexture("albedo"), `shade: missing texture "albedo"`},
		{badUniform("color"), `shade: mismatched uniform "color"`},
	}
	for _, c := range cases {
		if c.err.Error() != c.want {
			t.Errorf("got %q, want %q", c.err.Error(), c.want)
		}
	}
}

func TestParameterErrorUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("linking pipeline: %w", missingUniform("mvp"))

	var perr *ParameterError
	if !errors.As(wrapped, &perr) {
		t.Fatal("errors.As should find the ParameterError")
	}
	if perr.Code != ErrMissingUniform || perr.Name != "mvp" {
		t.Errorf("unexpected error contents: %s %q", perr.Code, perr.Name)
	}
}

func TestParameterErrorCodeString(t *testing.T) {
	if ErrBadTexture.String() != "BadTexture" {
		t.Errorf("got %q", ErrBadTexture.String())
	}
	if ParameterErrorCode(42).String() != "ParameterErrorCode(42)" {
		t.Errorf("got %q", ParameterErrorCode(42).String())
	}
}

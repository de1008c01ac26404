package shade

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformKind identifies the shape of a uniform value. The set is closed:
// scalars, integer/float vectors of width 2-4, and square float matrices.
type UniformKind uint8

const (
	KindInt32 UniformKind = iota
	KindFloat32
	KindIntVec2
	KindIntVec3
	KindIntVec4
	KindFloatVec2
	KindFloatVec3
	KindFloatVec4
	KindFloatMat2
	KindFloatMat3
	KindFloatMat4
)

func (k UniformKind) String() string {
	switch k {
	case KindInt32:
		return "Int32"
	case KindFloat32:
		return "Float32"
	case KindIntVec2:
		return "IntVec2"
	case KindIntVec3:
		return "IntVec3"
	case KindIntVec4:
		return "IntVec4"
	case KindFloatVec2:
		return "FloatVec2"
	case KindFloatVec3:
		return "FloatVec3"
	case KindFloatVec4:
		return "FloatVec4"
	case KindFloatMat2:
		return "FloatMat2"
	case KindFloatMat3:
		return "FloatMat3"
	case KindFloatMat4:
		return "FloatMat4"
	}
	return fmt.Sprintf("UniformKind(%d)", uint8(k))
}

// componentCount is the number of scalar components a value of this kind
// carries. Matrices are column-major, matching WGSL.
func (k UniformKind) componentCount() int {
	switch k {
	case KindInt32, KindFloat32:
		return 1
	case KindIntVec2, KindFloatVec2:
		return 2
	case KindIntVec3, KindFloatVec3:
		return 3
	case KindIntVec4, KindFloatVec4:
		return 4
	case KindFloatMat2:
		return 4
	case KindFloatMat3:
		return 9
	case KindFloatMat4:
		return 16
	}
	panic(fmt.Sprintf("shade: unknown uniform kind %d", uint8(k)))
}

// ByteSize is the tightly packed payload size of this kind. All
// components are 4 bytes wide.
func (k UniformKind) ByteSize() int {
	return 4 * k.componentCount()
}

func (k UniformKind) isInteger() bool {
	switch k {
	case KindInt32, KindIntVec2, KindIntVec3, KindIntVec4:
		return true
	}
	return false
}

// UniformValue is a single shader uniform: a scalar, a vector or a
// matrix. Values are immutable and comparable; two values are equal when
// both kind and payload match. The zero value is an Int32 zero.
//
// There is no conversion between kinds: an Int32 supplied where a
// program declares a Float32 is a kind mismatch, reported as BadUniform
// at link time.
type UniformValue struct {
	kind   UniformKind
	ints   [4]int32
	floats [16]float32
}

func UniformInt32(v int32) UniformValue {
	return UniformValue{kind: KindInt32, ints: [4]int32{v}}
}

func UniformFloat32(v float32) UniformValue {
	return UniformValue{kind: KindFloat32, floats: [16]float32{v}}
}

func UniformIntVec2(v [2]int32) UniformValue {
	return UniformValue{kind: KindIntVec2, ints: [4]int32{v[0], v[1]}}
}

func UniformIntVec3(v [3]int32) UniformValue {
	return UniformValue{kind: KindIntVec3, ints: [4]int32{v[0], v[1], v[2]}}
}

func UniformIntVec4(v [4]int32) UniformValue {
	return UniformValue{kind: KindIntVec4, ints: v}
}

func UniformVec2(v mgl32.Vec2) UniformValue {
	return UniformValue{kind: KindFloatVec2, floats: [16]float32{v[0], v[1]}}
}

func UniformVec3(v mgl32.Vec3) UniformValue {
	return UniformValue{kind: KindFloatVec3, floats: [16]float32{v[0], v[1], v[2]}}
}

func UniformVec4(v mgl32.Vec4) UniformValue {
	return UniformValue{kind: KindFloatVec4, floats: [16]float32{v[0], v[1], v[2], v[3]}}
}

func UniformMat2(m mgl32.Mat2) UniformValue {
	u := UniformValue{kind: KindFloatMat2}
	copy(u.floats[:], m[:])
	return u
}

func UniformMat3(m mgl32.Mat3) UniformValue {
	u := UniformValue{kind: KindFloatMat3}
	copy(u.floats[:], m[:])
	return u
}

func UniformMat4(m mgl32.Mat4) UniformValue {
	return UniformValue{kind: KindFloatMat4, floats: [16]float32(m)}
}

// Kind reports the shape of the value.
func (u UniformValue) Kind() UniformKind { return u.kind }

// Bytes renders the payload as tightly packed little-endian scalars,
// ready for Queue.WriteBuffer into a uniform buffer. Matrices are
// written column-major.
func (u UniformValue) Bytes() []byte {
	n := u.kind.componentCount()
	out := make([]byte, 4*n)
	if u.kind.isInteger() {
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(out[4*i:], uint32(u.ints[i]))
		}
	} else {
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(u.floats[i]))
		}
	}
	return out
}

func (u UniformValue) String() string {
	if u.kind.isInteger() {
		return fmt.Sprintf("%s%v", u.kind, u.ints[:u.kind.componentCount()])
	}
	return fmt.Sprintf("%s%v", u.kind, u.floats[:u.kind.componentCount()])
}

// Vec4 returns the payload of a FloatVec4 value.
func (u UniformValue) Vec4() mgl32.Vec4 {
	if u.kind != KindFloatVec4 {
		panic(fmt.Sprintf("shade: Vec4 called on %s value", u.kind))
	}
	return mgl32.Vec4{u.floats[0], u.floats[1], u.floats[2], u.floats[3]}
}

// Mat4 returns the payload of a FloatMat4 value.
func (u UniformValue) Mat4() mgl32.Mat4 {
	if u.kind != KindFloatMat4 {
		panic(fmt.Sprintf("shade: Mat4 called on %s value", u.kind))
	}
	return mgl32.Mat4(u.floats)
}

package bitset

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type perm uint8

func (perm) BitsetEnum() {}

const (
	read perm = 1 << iota
	write
	exec
)

type wide int64

func (wide) BitsetEnum() {}

func TestOperators(t *testing.T) {
	tests := []struct {
		name string
		got  perm
		want perm
	}{
		{"or", Or(read, write), 0b011},
		{"and", And(read|write, write|exec), write},
		{"xor", Xor(read|write, write|exec), read | exec},
		{"not", Not(read), 0b1111_1110},
		{"union", Union(read, write, exec), 0b111},
		{"union empty", Union[perm](), 0},
		{"set", Set(read, exec), read | exec},
		{"clear", Clear(read|write|exec, write), read | exec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestIdentities(t *testing.T) {
	values := []perm{0, read, write, exec, read | exec, 0xff}
	for _, a := range values {
		assert.Equal(t, a, Not(Not(a)))
		assert.Equal(t, a, Or(a, a))
		assert.Equal(t, a, And(a, a))
		assert.Equal(t, perm(0), Xor(a, a))
		for _, b := range values {
			assert.Equal(t, Or(a, b), Or(b, a))
			assert.Equal(t, And(a, b), And(b, a))
			assert.Equal(t, Xor(a, b), Xor(b, a))
		}
	}

	var w wide = 5
	assert.Equal(t, w, Not(Not(w)))
}

func TestAssignReturnsTarget(t *testing.T) {
	v := read
	p := OrAssign(&v, write)
	require.Same(t, &v, p)
	assert.Equal(t, read|write, v)

	AndAssign(&v, write|exec)
	assert.Equal(t, write, v)

	XorAssign(OrAssign(&v, exec), write)
	assert.Equal(t, exec, v)
}

func TestHasAny(t *testing.T) {
	v := read | exec
	assert.True(t, Has(v, read))
	assert.True(t, Has(v, read|exec))
	assert.False(t, Has(v, read|write))
	assert.True(t, Any(v, read|write))
	assert.False(t, Any(v, write))
	assert.True(t, Has(v, 0))
}

func TestFormat(t *testing.T) {
	names := []Name[perm]{{read, "READ"}, {write, "WRITE"}, {exec, "EXEC"}}
	assert.Equal(t, "READ|EXEC", Format(read|exec, names, ""))
	assert.Equal(t, "NONE", Format(0, names, "NONE"))
	assert.Equal(t, "0", Format[perm](0, names, ""))
	assert.Equal(t, "WRITE|0x80", Format(write|0x80, names, ""))
}

// typeCheck compiles bitset.go together with src as one package.
func typeCheck(t *testing.T, src string) error {
	t.Helper()

	lib, err := os.ReadFile("bitset.go")
	require.NoError(t, err)

	fset := token.NewFileSet()
	libFile, err := parser.ParseFile(fset, "bitset.go", lib, 0)
	require.NoError(t, err)
	userFile, err := parser.ParseFile(fset, "user.go", "package bitset\n"+src, 0)
	require.NoError(t, err)

	conf := types.Config{Error: func(error) {}}
	_, err = conf.Check("bitset", fset, []*ast.File{libFile, userFile}, nil)
	return err
}

func TestUnregisteredTypeRejected(t *testing.T) {
	err := typeCheck(t, `
type plain uint8

var _ = Or(plain(1), plain(2))
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BitsetEnum")
}

func TestNonIntegerRejected(t *testing.T) {
	err := typeCheck(t, `
type name string

func (name) BitsetEnum() {}

var _ = Or(name("a"), name("b"))
`)
	require.Error(t, err)
}

func TestRegisteredTypeAccepted(t *testing.T) {
	err := typeCheck(t, `
type flags uint16

func (flags) BitsetEnum() {}

var _ = Not(Or(flags(1), flags(2)))
`)
	assert.NoError(t, err)
}

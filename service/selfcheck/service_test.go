package selfcheck

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBannerDefaultMatchesMessage(t *testing.T) {
	svc := NewService()

	banner := svc.Banner("")
	assert.Equal(t, Message, banner.Text)
	assert.Equal(t, banner.Text, svc.Banner(DefaultBinaryPath).Text)
}

func TestMessageLayout(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(Message, "\n"), "\n")
	if !assert.Len(t, lines, 5) {
		return
	}

	assert.Equal(t, "Hello from the hermetic clang toolchain!", lines[0])
	assert.Contains(t, lines[1], "does not rely on external system libraries")
	assert.Contains(t, lines[2], "inspect the compiler")
	assert.Equal(t, "\treadelf -p .comment bazel-bin/example/simple_test", lines[3])
	assert.Equal(t, "\tfile bazel-bin/example/simple_test", lines[4])
}

func TestBannerCustomBinaryPath(t *testing.T) {
	banner := NewService().Banner("  out/selfcheck  ")

	assert.Equal(t, []string{"readelf -p .comment out/selfcheck", "file out/selfcheck"}, banner.Commands)
	assert.Len(t, banner.Lines, 3)
	assert.True(t, strings.HasSuffix(banner.Text, "\tfile out/selfcheck\n"))
	assert.NotContains(t, banner.Text, DefaultBinaryPath)
}

func TestBannerDoesNotShareLines(t *testing.T) {
	svc := NewService()

	first := svc.Banner("")
	first.Lines[0] = "mutated"

	assert.Equal(t, Message, svc.Banner("").Text)
}

func TestCompileTimeAssertion(t *testing.T) {
	src, err := os.ReadFile("assert.go")
	if err != nil {
		t.Fatalf("read assert.go: %v", err)
	}

	const decl = "const CompileTimeValue = 42"
	if !strings.Contains(string(src), decl) {
		t.Fatalf("assert.go does not declare %q", decl)
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "expected value", value: "42", wantErr: false},
		{name: "below", value: "41", wantErr: true},
		{name: "above", value: "43", wantErr: true},
		{name: "zero", value: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patched := strings.Replace(string(src), decl, "const CompileTimeValue = "+tt.value, 1)

			fset := token.NewFileSet()
			err := typeCheck(fset, patched)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var typeErr types.Error
			if !assert.True(t, errors.As(err, &typeErr), "expected type error, got %v", err) {
				return
			}
			line := strings.Split(patched, "\n")[fset.Position(typeErr.Pos).Line-1]
			assert.Contains(t, line, "Compile-time assertion failed")
		})
	}
}

func typeCheck(fset *token.FileSet, src string) error {
	file, err := parser.ParseFile(fset, "assert.go", src, parser.ParseComments)
	if err != nil {
		return err
	}

	conf := types.Config{}
	_, err = conf.Check("selfcheck", fset, []*ast.File{file}, nil)
	return err
}

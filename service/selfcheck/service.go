// Package selfcheck holds the hermetic toolchain self-check: a compile-time
// assertion and the fixed banner describing how to inspect the binary.
package selfcheck

import (
	"strings"

	"github.com/thirukguru/hermetic-selfcheck/model"
)

// DefaultBinaryPath is the build output the inspection commands point at.
const DefaultBinaryPath = "bazel-bin/example/simple_test"

// Message is the banner printed by a default invocation.
const Message = "Hello from the hermetic clang toolchain!\n" +
	"This toolchain is self-contained and does not rely on external system libraries.\n" +
	"You can inspect the compiler used to build this binary by using:\n" +
	"\treadelf -p .comment " + DefaultBinaryPath + "\n" +
	"\tfile " + DefaultBinaryPath + "\n"

var bannerLines = []string{
	"Hello from the hermetic clang toolchain!",
	"This toolchain is self-contained and does not rely on external system libraries.",
	"You can inspect the compiler used to build this binary by using:",
}

// NewService creates a new self-check service.
func NewService() Service {
	return &service{}
}

// Banner returns the banner with the inspection commands pointing at
// binaryPath. An empty path falls back to DefaultBinaryPath.
func (s *service) Banner(binaryPath string) model.Banner {
	path := strings.TrimSpace(binaryPath)
	if path == "" {
		path = DefaultBinaryPath
	}

	commands := []string{
		"readelf -p .comment " + path,
		"file " + path,
	}

	var b strings.Builder
	for _, line := range bannerLines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, cmd := range commands {
		b.WriteByte('\t')
		b.WriteString(cmd)
		b.WriteByte('\n')
	}

	return model.Banner{
		Lines:    append([]string(nil), bannerLines...),
		Commands: commands,
		Text:     b.String(),
	}
}

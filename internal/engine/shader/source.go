package shader

import (
	"bytes"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// trimLog drops the NUL padding GL leaves in info logs.
func trimLog(info []byte) string {
	return strings.TrimSpace(string(bytes.TrimRight(info, "\x00")))
}

// Defines are injected into a shader source as #define lines.
type Defines map[string]string

// Preprocess inserts the defines right after the #version line, in sorted
// order so the output is stable. Sources without a #version line get the
// defines prepended.
func Preprocess(src string, defines Defines) string {
	if len(defines) == 0 {
		return src
	}

	names := make([]string, 0, len(defines))
	for name := range defines {
		names = append(names, name)
	}
	sort.Strings(names)

	var block strings.Builder
	for _, name := range names {
		if v := defines[name]; v != "" {
			fmt.Fprintf(&block, "#define %s %s\n", name, v)
		} else {
			fmt.Fprintf(&block, "#define %s\n", name)
		}
	}

	trimmed := strings.TrimLeft(src, " \t\r\n")
	if !strings.HasPrefix(trimmed, "#version") {
		return block.String() + src
	}
	end := strings.IndexByte(trimmed, '\n')
	if end < 0 {
		return trimmed + "\n" + block.String()
	}
	return trimmed[:end+1] + block.String() + trimmed[end+1:]
}

// Load reads a vertex/fragment pair named base+".vert" and base+".frag".
func Load(fsys fs.FS, base string) (vertex, fragment string, err error) {
	vs, err := fs.ReadFile(fsys, base+".vert")
	if err != nil {
		return "", "", fmt.Errorf("reading %s vertex shader: %w", base, err)
	}
	frag, err := fs.ReadFile(fsys, base+".frag")
	if err != nil {
		return "", "", fmt.Errorf("reading %s fragment shader: %w", base, err)
	}
	return string(vs), string(frag), nil
}

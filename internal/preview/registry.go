package preview

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Registry maps file extensions to encoders.
type Registry struct {
	byExt   map[string]Encoder
	formats []string
}

// NewRegistry creates a registry holding every built-in encoder.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Encoder)}

	all := []Encoder{
		&PNGEncoder{},
		&WebPEncoder{},
		&JPEGEncoder{},
		&BMPEncoder{},
		&TIFFEncoder{},
	}
	for _, enc := range all {
		r.formats = append(r.formats, enc.Format())
		for _, ext := range enc.Extensions() {
			r.byExt[ext] = enc
		}
	}
	return r
}

// Get returns the encoder for an extension (with or without the dot), or
// nil if there is none.
func (r *Registry) Get(ext string) Encoder {
	return r.byExt[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// ForPath picks the encoder from the extension of path.
func (r *Registry) ForPath(path string) (Encoder, error) {
	ext := filepath.Ext(path)
	if enc := r.Get(ext); enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("no encoder for %q (supported: %s)", ext, r)
}

// String returns the supported format names in priority order.
func (r *Registry) String() string {
	return strings.Join(r.formats, ", ")
}

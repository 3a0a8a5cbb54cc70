package page

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Export writes a self-contained copy of the page to dir: index.html,
// motion.css and the static scripts. It returns the paths written.
func (r *Renderer) Export(dir string, req Request) ([]string, error) {
	var html, css bytes.Buffer
	if err := r.Render(&html, req); err != nil {
		return nil, err
	}
	if err := r.Stylesheet(&css); err != nil {
		return nil, err
	}

	files := map[string][]byte{
		"index.html": html.Bytes(),
		"motion.css": css.Bytes(),
	}
	err := fs.WalkDir(StaticFS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(StaticFS(), path)
		if err != nil {
			return err
		}
		files[filepath.Join("static", path)] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading static assets: %w", err)
	}

	var written []string
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

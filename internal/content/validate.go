package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/go-playground/validator/v10"
	"github.com/yuin/goldmark"
)

// Validate checks field constraints on the content bundle.
func Validate(c Content) error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	return nil
}

// Markdown renders a short markdown block to HTML. Raw HTML in the source is
// dropped by goldmark's default renderer.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Package output renders command results as styled terminal text, plain
// text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/datapacks/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders one of the view types of this package
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format writing to w. FormatAuto
// inspects w when it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	logger := logging.GetLogger("output")
	logger.Debug().Stringer("format", format).Msg("Creating renderer")

	switch format {
	case FormatAuto:
		if file, ok := w.(*os.File); ok {
			return NewRenderer(DetectFormat(file), w)
		}
		return NewRenderer(FormatText, w)
	case FormatTerminal:
		lr := lipgloss.NewRenderer(w)
		if lr.ColorProfile() == termenv.Ascii {
			lr.SetColorProfile(termenv.ANSI256)
		}
		return &textRenderer{w: w, lr: lr, styled: true}, nil
	case FormatText:
		lr := lipgloss.NewRenderer(w)
		lr.SetColorProfile(termenv.Ascii)
		return &textRenderer{w: w, lr: lr}, nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return &encodingRenderer{encode: enc.Encode}, nil
	case FormatYAML:
		return &encodingRenderer{encode: func(v interface{}) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		}}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// encodingRenderer serialises results for machine consumption.
type encodingRenderer struct {
	encode func(v interface{}) error
}

func (r *encodingRenderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

func (r *encodingRenderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

func (r *encodingRenderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

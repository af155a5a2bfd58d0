package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/datapacks/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
)

// textRenderer writes human readable output. Styles are applied only when
// styled is set; the layout is identical either way.
type textRenderer struct {
	w      io.Writer
	lr     *lipgloss.Renderer
	styled bool
	buf    strings.Builder
}

func (r *textRenderer) paint(style, s string) string {
	if !r.styled {
		return s
	}
	return r.lr.NewStyle().Inherit(styles.GetStyle(style)).Render(s)
}

func (r *textRenderer) line(indent int, format string, args ...interface{}) {
	r.buf.WriteString(strings.Repeat("  ", indent))
	fmt.Fprintf(&r.buf, format, args...)
	r.buf.WriteByte('\n')
}

func (r *textRenderer) field(indent int, label, value string) {
	r.line(indent, "%s %s", r.paint("Label", fmt.Sprintf("%-8s", label+":")), value)
}

func (r *textRenderer) flush() error {
	_, err := io.WriteString(r.w, r.buf.String())
	r.buf.Reset()
	return err
}

func (r *textRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *PackageList:
		r.packageList(v)
	case *SearchPath:
		r.searchPath(v)
	case *Resolution:
		r.resolution(v)
	case *Savegame:
		r.savegame(v)
	default:
		r.line(0, "%+v", result)
	}
	return r.flush()
}

func (r *textRenderer) packageList(v *PackageList) {
	r.line(0, "%s", r.paint("Header", fmt.Sprintf("Packages (%d)", len(v.Packages))))
	if len(v.Packages) == 0 {
		r.line(1, "%s", r.paint("Muted", "no packages found"))
		return
	}

	for _, p := range v.Packages {
		name := r.paint("Package", p.Name)
		if p.Name == v.Active {
			name += " " + r.paint("Found", "(active)")
		}
		r.line(1, "%s", name)
		if p.Title != "" {
			r.field(2, "title", p.Title)
		}
		if len(p.Dependencies) > 0 {
			deps := make([]string, len(p.Dependencies))
			for i, d := range p.Dependencies {
				deps[i] = r.paint("Dependency", d)
			}
			r.field(2, "depends", strings.Join(deps, ", "))
		}
		r.field(2, "user", r.paint("Path", p.UserRoot))
		r.field(2, "shipped", r.paint("Path", p.ShippedRoot))
	}
}

func (r *textRenderer) searchPath(v *SearchPath) {
	title := "Search path"
	if v.Active != "" {
		title = fmt.Sprintf("Search path for %q", v.Active)
	}
	r.line(0, "%s", r.paint("Header", title))

	for i, e := range v.Entries {
		name := r.paint("Package", e.Package)
		if e.Package == "" {
			name = r.paint("Muted", "(global)")
		}
		r.line(1, "%d. %s", i+1, name)
		r.field(2, "user", r.paint("Path", e.User))
		r.field(2, "shipped", r.paint("Path", e.Shipped))
	}
}

func (r *textRenderer) resolution(v *Resolution) {
	if !v.Found {
		r.line(0, "%s", r.paint("Missing", fmt.Sprintf("%s %q not found", v.Category, v.Name)))
		return
	}
	r.line(0, "%s", r.paint("Path", v.Path))
}

func (r *textRenderer) savegame(v *Savegame) {
	r.line(0, "%s", r.paint("Header", fmt.Sprintf("Slot %d", v.Slot)))
	r.field(1, "path", r.paint("Path", v.Path))
	if v.Found != "" {
		r.field(1, "found", r.paint("Found", v.Found))
	} else {
		r.field(1, "found", r.paint("Missing", "free slot"))
	}
	for _, p := range v.Legacy {
		r.field(1, "legacy", r.paint("Muted", p))
	}
}

func (r *textRenderer) RenderError(err error) error {
	r.line(0, "%s %v", r.paint("Error", "Error:"), err)
	return r.flush()
}

func (r *textRenderer) RenderMessage(msg string) error {
	r.line(0, "%s", msg)
	return r.flush()
}

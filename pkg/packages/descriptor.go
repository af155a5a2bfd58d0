package packages

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/paths"
	"github.com/arthur-debert/datapacks/pkg/types"
	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
)

// Descriptor is the parsed content of a package descriptor file
type Descriptor struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Depends     []string `toml:"depends"`
}

// ParseTOMLDescriptor parses a package.toml descriptor:
//
//	title = "Night Castle"
//	depends = ["castle", "contrib/common"]
func ParseTOMLDescriptor(data []byte) (Descriptor, error) {
	var d Descriptor
	if err := toml.Unmarshal(data, &d); err != nil {
		return Descriptor{}, errors.Wrap(err, errors.ErrDescriptorParse, "failed to parse TOML descriptor")
	}
	d.Depends = cleanNames(d.Depends)
	return d, nil
}

// ParseXMLDescriptor parses a package.xml descriptor:
//
//	<package>
//	  <title>Night Castle</title>
//	  <dependencies>
//	    <package name="castle"/>
//	  </dependencies>
//	</package>
//
// <dependency name="..."/> is accepted in place of <package name="..."/>,
// both inside <dependencies> and directly under the root element.
func ParseXMLDescriptor(data []byte) (Descriptor, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return Descriptor{}, errors.Wrap(err, errors.ErrDescriptorParse, "failed to parse XML descriptor")
	}

	root := doc.SelectElement("package")
	if root == nil {
		return Descriptor{}, errors.New(errors.ErrDescriptorParse, "XML descriptor has no <package> root element")
	}

	var d Descriptor
	if el := root.SelectElement("title"); el != nil {
		d.Title = strings.TrimSpace(el.Text())
	}
	if el := root.SelectElement("description"); el != nil {
		d.Description = strings.TrimSpace(el.Text())
	}

	var deps []string
	for _, child := range root.ChildElements() {
		switch child.Tag {
		case "dependencies":
			for _, dep := range child.ChildElements() {
				if dep.Tag == "package" || dep.Tag == "dependency" {
					deps = append(deps, dependencyName(dep))
				}
			}
		case "dependency":
			deps = append(deps, dependencyName(child))
		}
	}
	d.Depends = cleanNames(deps)
	return d, nil
}

func dependencyName(el *etree.Element) string {
	if name := el.SelectAttrValue("name", ""); name != "" {
		return name
	}
	return el.Text()
}

func cleanNames(names []string) []string {
	var out []string
	for _, n := range names {
		n = strings.Trim(strings.TrimSpace(n), "/")
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// descriptorParsers are tried in order inside each package root
var descriptorParsers = []struct {
	file  string
	parse func([]byte) (Descriptor, error)
}{
	{paths.DescriptorTOML, ParseTOMLDescriptor},
	{paths.DescriptorXML, ParseXMLDescriptor},
}

// LoadDescriptor looks for a descriptor in the user root and then the
// shipped root of p. It returns the descriptor, the file it came from and
// whether one was found. A descriptor that exists but fails to parse is
// returned as an error.
func LoadDescriptor(fsys types.FS, p Package) (Descriptor, string, bool, error) {
	for _, root := range []string{p.UserRoot, p.ShippedRoot} {
		for _, dp := range descriptorParsers {
			file := filepath.Join(root, dp.file)
			data, err := fsys.ReadFile(file)
			if err != nil {
				if os.IsNotExist(err) || !types.IsDir(fsys, root) {
					continue
				}
				return Descriptor{}, file, false, errors.Wrap(err, errors.ErrFileAccess, "cannot read descriptor").
					WithDetail("path", file)
			}
			d, err := dp.parse(data)
			if err != nil {
				return Descriptor{}, file, false, err
			}
			return d, file, true, nil
		}
	}
	return Descriptor{}, "", false, nil
}

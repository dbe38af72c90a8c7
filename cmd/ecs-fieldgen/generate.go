package main

import (
	"bytes"
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
	"golang.org/x/tools/imports"
)

const marker = "//ecs:component"

type component struct {
	Name   string
	Fields []field
}

type field struct {
	Name  string
	Label string
}

// Labels returns the quoted field labels joined for a slice literal.
func (c component) Labels() string {
	quoted := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		quoted[i] = strconv.Quote(f.Label)
	}
	return strings.Join(quoted, ", ")
}

// collectComponents finds marked struct types in file order.
func collectComponents(files []*ast.File) ([]component, error) {
	var components []component
	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				if !hasMarker(ts.Doc) && !(len(gen.Specs) == 1 && hasMarker(gen.Doc)) {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					return nil, eris.Errorf("%s is marked as a component but is not a struct", ts.Name.Name)
				}
				if ts.TypeParams != nil {
					return nil, eris.Errorf("%s: generic components are not supported", ts.Name.Name)
				}

				c, err := structComponent(ts.Name.Name, st)
				if err != nil {
					return nil, err
				}
				components = append(components, c)
			}
		}
	}
	return components, nil
}

func hasMarker(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == marker {
			return true
		}
	}
	return false
}

func structComponent(name string, st *ast.StructType) (component, error) {
	c := component{Name: name}
	labels := make(map[string]string)

	for _, f := range st.Fields.List {
		tag := ""
		if f.Tag != nil {
			raw, err := strconv.Unquote(f.Tag.Value)
			if err != nil {
				return c, eris.Wrapf(err, "%s: bad struct tag", name)
			}
			tag = reflect.StructTag(raw).Get("ecs")
		}
		if tag == "-" {
			continue
		}
		if tag != "" && len(f.Names) > 1 {
			return c, eris.Errorf("%s: tag %q is shared by %d fields", name, tag, len(f.Names))
		}

		for _, ident := range f.Names {
			if !ident.IsExported() {
				continue
			}
			label := tag
			if label == "" {
				label = ident.Name
			}
			if prev, dup := labels[label]; dup {
				return c, eris.Errorf("%s: fields %s and %s both use the name %q", name, prev, ident.Name, label)
			}
			labels[label] = ident.Name
			c.Fields = append(c.Fields, field{Name: ident.Name, Label: label})
		}
	}
	return c, nil
}

var fieldsTemplate = template.Must(template.New("fields").Parse(`// Code generated by ecs-fieldgen. DO NOT EDIT.

package {{.Package}}
{{range .Components}}
func (c *{{.Name}}) Field(name string) (any, bool) {
	switch name {
{{- range .Fields}}
	case {{printf "%q" .Label}}:
		return c.{{.Name}}, true
{{- end}}
	}
	return nil, false
}

func (c *{{.Name}}) FieldNames() []string {
	return []string{ {{- .Labels -}} }
}
{{end}}`))

// render produces the formatted source for filename.
func render(filename, pkg string, components []component) ([]byte, error) {
	var buf bytes.Buffer
	err := fieldsTemplate.Execute(&buf, struct {
		Package    string
		Components []component
	}{pkg, components})
	if err != nil {
		return nil, eris.Wrap(err, "executing template")
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "formatting generated source")
	}
	return src, nil
}

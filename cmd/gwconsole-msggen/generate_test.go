package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestGenerateCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(validCatalog))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	code, err := GenerateCatalog(c)
	if err != nil {
		t.Fatalf("GenerateCatalog() error = %v", err)
	}

	wants := []string{
		"// Code generated by gwconsole-msggen. DO NOT EDIT.",
		"package messages",
		`GatewayFormDelayWarning = Descriptor{ID: "console.components.gateway-data-form.delayWarning", Default: "Delay too short ({minimumValue}ms)."}`,
		`SharedGatewayID = Descriptor{ID: "lib.shared-messages.gatewayID", Default: "Gateway ID"}`,
		"var all = []Descriptor{",
	}
	for _, want := range wants {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q\n%s", want, code)
		}
	}

	if _, err := parser.ParseFile(token.NewFileSet(), "catalog_gen.go", code, 0); err != nil {
		t.Errorf("generated code does not parse: %v", err)
	}
}

func TestRunWritesFormattedFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "messages.yaml")
	output := filepath.Join(dir, "catalog_gen.go")
	if err := os.WriteFile(input, []byte(validCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(input, output); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	descriptors := parseDescriptors(t, output)
	if len(descriptors) != 3 {
		t.Errorf("got %d descriptors, want 3", len(descriptors))
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := run(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "out.go"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

// The checked-in catalog must match its YAML definition.
func TestCheckedInCatalogUpToDate(t *testing.T) {
	c, err := LoadCatalog(filepath.Join("..", "..", "pkg", "messages", "messages.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	got := parseDescriptors(t, filepath.Join("..", "..", "pkg", "messages", "catalog_gen.go"))

	want := make(map[string][2]string)
	for _, g := range c.Groups {
		for _, m := range g.Messages {
			want[goName(g.Name, m.Key)] = [2]string{messageID(g.Prefix, m.Key), m.Default}
		}
	}

	if len(got) != len(want) {
		t.Errorf("catalog_gen.go has %d descriptors, messages.yaml defines %d (run go generate ./pkg/messages)", len(got), len(want))
	}
	for name, w := range want {
		if got[name] != w {
			t.Errorf("%s = %v, want %v (run go generate ./pkg/messages)", name, got[name], w)
		}
	}
}

// parseDescriptors extracts name -> (ID, Default) from a generated file.
func parseDescriptors(t *testing.T, path string) map[string][2]string {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), path, nil, 0)
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}

	result := make(map[string][2]string)
	ast.Inspect(f, func(n ast.Node) bool {
		spec, ok := n.(*ast.ValueSpec)
		if !ok || len(spec.Names) != 1 || len(spec.Values) != 1 {
			return true
		}
		lit, ok := spec.Values[0].(*ast.CompositeLit)
		if !ok {
			return true
		}
		if ident, ok := lit.Type.(*ast.Ident); !ok || ident.Name != "Descriptor" {
			return true
		}

		var fields [2]string
		for _, elt := range lit.Elts {
			kv := elt.(*ast.KeyValueExpr)
			value, err := strconv.Unquote(kv.Value.(*ast.BasicLit).Value)
			if err != nil {
				t.Fatalf("unquoting %s: %v", spec.Names[0].Name, err)
			}
			switch kv.Key.(*ast.Ident).Name {
			case "ID":
				fields[0] = value
			case "Default":
				fields[1] = value
			}
		}
		result[spec.Names[0].Name] = fields
		return true
	})
	return result
}

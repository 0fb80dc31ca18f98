// Command gwconsole-msggen generates the Go message catalog from its YAML
// definition.
//
// Usage:
//
//	gwconsole-msggen -input messages.yaml -output catalog_gen.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	input := flag.String("input", "", "Path to the catalog YAML")
	output := flag.String("output", "", "Output path for the generated Go file")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: gwconsole-msggen -input <catalog.yaml> -output <file.go>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*input, *output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output string) error {
	catalog, err := LoadCatalog(input)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	code, err := GenerateCatalog(catalog)
	if err != nil {
		return err
	}

	if err := writeFormatted(output, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(output), err)
	}
	fmt.Printf("  generated %s\n", output)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}

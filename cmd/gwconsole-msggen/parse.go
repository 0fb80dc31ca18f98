package main

import (
	"fmt"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"
)

// RawCatalog represents a message catalog loaded from YAML.
type RawCatalog struct {
	Package string     `yaml:"package"`
	Groups  []RawGroup `yaml:"groups"`
}

// RawGroup is a set of messages sharing an ID prefix.
type RawGroup struct {
	Name     string       `yaml:"name"`   // Go identifier prefix, e.g. "GatewayForm"
	Prefix   string       `yaml:"prefix"` // message ID prefix, e.g. "console.components.gateway-data-form"
	Messages []RawMessage `yaml:"messages"`
}

// RawMessage is a single message definition.
type RawMessage struct {
	Key     string `yaml:"key"`
	Default string `yaml:"default"`
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*RawCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses and validates catalog YAML.
func ParseCatalog(data []byte) (*RawCatalog, error) {
	var c RawCatalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *RawCatalog) validate() error {
	if c.Package == "" {
		return fmt.Errorf("catalog: package is required")
	}
	if len(c.Groups) == 0 {
		return fmt.Errorf("catalog: at least one group is required")
	}

	seenNames := make(map[string]bool)
	seenIDs := make(map[string]bool)
	for _, g := range c.Groups {
		if !isExportedIdent(g.Name) {
			return fmt.Errorf("group %q: name must be an exported Go identifier", g.Name)
		}
		if g.Prefix == "" {
			return fmt.Errorf("group %s: prefix is required", g.Name)
		}
		for _, m := range g.Messages {
			if m.Key == "" {
				return fmt.Errorf("group %s: message key is required", g.Name)
			}
			if m.Default == "" {
				return fmt.Errorf("message %s.%s: default is required", g.Prefix, m.Key)
			}
			name := goName(g.Name, m.Key)
			if !isExportedIdent(name) {
				return fmt.Errorf("message %s.%s: %q is not a valid Go identifier", g.Prefix, m.Key, name)
			}
			if seenNames[name] {
				return fmt.Errorf("duplicate Go name %s", name)
			}
			seenNames[name] = true

			id := messageID(g.Prefix, m.Key)
			if seenIDs[id] {
				return fmt.Errorf("duplicate message ID %s", id)
			}
			seenIDs[id] = true
		}
	}
	return nil
}

// goName builds the descriptor variable name: "GatewayForm" + "delayWarning"
// gives "GatewayFormDelayWarning".
func goName(group, key string) string {
	r := []rune(key)
	r[0] = unicode.ToUpper(r[0])
	return group + string(r)
}

// messageID builds the message ID: prefix + "." + key.
func messageID(prefix, key string) string {
	return prefix + "." + key
}

func isExportedIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsUpper(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

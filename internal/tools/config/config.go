// Package config reads the optional oas2ts configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/krateoplatformops/oas2ts/internal/tools/oas2ts"
	"sigs.k8s.io/yaml"
)

// Config is the file form of the CLI options. Flags given on the command
// line take precedence over it.
type Config struct {
	Output         string         `json:"output,omitempty"`
	PrettierConfig string         `json:"prettierConfig,omitempty"`
	Validate       bool           `json:"validate,omitempty"`
	PropertyMapper PropertyMapper `json:"propertyMapper,omitempty"`
}

// PropertyMapper is a declarative property mapper: the first rule that
// matches a property decides its rewrite.
type PropertyMapper struct {
	Rules []Rule `json:"rules,omitempty"`
}

// Rule rewrites the properties it matches. Empty match fields match
// anything.
type Rule struct {
	Match Match   `json:"match"`
	Set   Rewrite `json:"set"`
}

type Match struct {
	Type     string `json:"type,omitempty"`
	Format   string `json:"format,omitempty"`
	Optional *bool  `json:"optional,omitempty"`
}

type Rewrite struct {
	InterfaceType string `json:"interfaceType,omitempty"`
	Optional      *bool  `json:"optional,omitempty"`
}

// Load reads a YAML or JSON config file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(b, cfg); err != nil {
		return nil, fmt.Errorf("decoding config %q: %w", path, err)
	}
	return cfg, nil
}

func (m Match) matches(node *oas2ts.Schema, prop oas2ts.Property) bool {
	if m.Type != "" && m.Type != prop.InterfaceType {
		return false
	}
	if m.Format != "" && m.Format != node.Format {
		return false
	}
	if m.Optional != nil && *m.Optional != prop.Optional {
		return false
	}
	return true
}

// Mapper turns the rules into an oas2ts.PropertyMapper. It returns nil when
// there are no rules.
func (pm PropertyMapper) Mapper() oas2ts.PropertyMapper {
	if len(pm.Rules) == 0 {
		return nil
	}
	rules := append([]Rule{}, pm.Rules...)
	return func(node *oas2ts.Schema, prop oas2ts.Property) oas2ts.Property {
		for _, r := range rules {
			if !r.Match.matches(node, prop) {
				continue
			}
			if r.Set.InterfaceType != "" {
				prop.InterfaceType = r.Set.InterfaceType
			}
			if r.Set.Optional != nil {
				prop.Optional = *r.Set.Optional
			}
			break
		}
		return prop
	}
}

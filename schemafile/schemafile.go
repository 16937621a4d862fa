// Package schemafile loads declarative schema documents and compiles them
// into executable schemas.
//
// A document names its columns with a type tag and optional constraints:
//
//	strict: false
//	columns:
//	  - name: id
//	    type: int
//	    rule: positive
//	  - name: score
//	    type: float
//	    min: 0
//	    max: 1
//	  - name: label
//	    type: string
//	    required: true
//	    enum: [low, mid, high]
//	    pattern: "^[a-z]+$"
//
// Named rules resolve through the rules registry; inline constraints
// compile to rule predicates and combine with rules.And.
package schemafile

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	skooma "github.com/davidjamesknight/Skooma"
	"github.com/davidjamesknight/Skooma/rules"
)

// Document is the root of a schema file.
type Document struct {
	// Strict selects coverage checking; absent means strict.
	Strict *bool `yaml:"strict"`

	// Columns declares the schema columns in order.
	Columns []Column `yaml:"columns"`
}

// Column declares one schema column.
type Column struct {
	Name string `yaml:"name"`

	// Type is one of int, float, bool, string, datetime.
	Type string `yaml:"type"`

	// Rule names a predicate registered in the rules registry.
	Rule string `yaml:"rule,omitempty"`

	// Required rejects null cells.
	Required bool `yaml:"required,omitempty"`

	// Min and Max bound numeric cells inclusively.
	Min any `yaml:"min,omitempty"`
	Max any `yaml:"max,omitempty"`

	// Enum lists the allowed cell values.
	Enum []any `yaml:"enum,omitempty"`

	// Pattern is a regular expression string cells must match.
	Pattern string `yaml:"pattern,omitempty"`
}

// Load reads and compiles a schema file.
func Load(path string) (*skooma.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse compiles a YAML schema document.
func Parse(data []byte) (*skooma.Schema, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemafile: parse: %w", err)
	}
	return Compile(doc)
}

// Compile turns a decoded document into a schema. Construction issues from
// the builder (duplicate or missing columns) surface as the returned error.
func Compile(doc Document) (*skooma.Schema, error) {
	b := skooma.New()
	if doc.Strict != nil && !*doc.Strict {
		b = b.Permissive()
	}
	for _, c := range doc.Columns {
		t, ok := skooma.ParseType(strings.ToLower(strings.TrimSpace(c.Type)))
		if !ok {
			return nil, fmt.Errorf("schemafile: column %q: unknown type %q", c.Name, c.Type)
		}
		pred, err := c.predicate()
		if err != nil {
			return nil, err
		}
		b = b.Col(c.Name, t).Check(pred)
	}
	s, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return s, nil
}

// predicate compiles the column's constraints into a single predicate, or
// nil when the column declares none.
func (c Column) predicate() (skooma.Predicate, error) {
	var ps []skooma.Predicate
	if c.Required {
		ps = append(ps, rules.NotNull())
	}
	if c.Min != nil {
		ps = append(ps, rules.Ge(c.Min))
	}
	if c.Max != nil {
		ps = append(ps, rules.Le(c.Max))
	}
	if len(c.Enum) > 0 {
		ps = append(ps, rules.In(c.Enum...))
	}
	if c.Pattern != "" {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("schemafile: column %q: bad pattern: %w", c.Name, err)
		}
		ps = append(ps, rules.MatchRegexp(re))
	}
	if c.Rule != "" {
		p, ok := rules.Lookup(c.Rule)
		if !ok {
			return nil, fmt.Errorf("schemafile: column %q: unknown rule %q", c.Name, c.Rule)
		}
		ps = append(ps, p)
	}
	switch len(ps) {
	case 0:
		return nil, nil
	case 1:
		return ps[0], nil
	}
	return rules.And(ps...), nil
}

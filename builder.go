package skooma

import (
	"io"
	"os"

	"github.com/davidjamesknight/Skooma/i18n"
)

// Builder assembles a Schema column by column. The zero strictness is
// strict; reports go to os.Stdout unless Output is set.
type Builder struct {
	cols   []columnSpec
	strict bool
	quiet  bool
	out    io.Writer
}

// ColStep continues the builder after Col, letting a predicate attach to the
// column just declared.
type ColStep struct {
	b   *Builder
	idx int
}

// New creates a schema builder with strict coverage and stdout reporting.
func New() *Builder {
	return &Builder{strict: true, out: os.Stdout}
}

// Col declares a column with its expected type.
func (b *Builder) Col(name string, t Type) *ColStep {
	b.cols = append(b.cols, columnSpec{name: name, typ: t})
	return &ColStep{b: b, idx: len(b.cols) - 1}
}

// Permissive relaxes coverage to "declared columns must exist"; dataset
// columns outside the schema are ignored.
func (b *Builder) Permissive() *Builder {
	b.strict = false
	return b
}

// Strict restores exact column-set matching (the default).
func (b *Builder) Strict() *Builder {
	b.strict = true
	return b
}

// Output redirects diagnostic lines emitted by Validate.
func (b *Builder) Output(w io.Writer) *Builder {
	if w != nil {
		b.out = w
	}
	return b
}

// QuietCoverage suppresses coverage diagnostic lines. The verdict is
// unaffected; only the emission is silenced.
func (b *Builder) QuietCoverage() *Builder {
	b.quiet = true
	return b
}

// Check attaches a predicate to the column just declared and returns the
// builder.
func (c *ColStep) Check(p Predicate) *Builder {
	c.b.cols[c.idx].check = p
	return c.b
}

func (c *ColStep) Col(name string, t Type) *ColStep { return c.b.Col(name, t) }
func (c *ColStep) Permissive() *Builder             { return c.b.Permissive() }
func (c *ColStep) Strict() *Builder                 { return c.b.Strict() }
func (c *ColStep) Output(w io.Writer) *Builder      { return c.b.Output(w) }
func (c *ColStep) QuietCoverage() *Builder          { return c.b.QuietCoverage() }
func (c *ColStep) Build() (*Schema, error)          { return c.b.Build() }
func (c *ColStep) MustBuild() *Schema               { return c.b.MustBuild() }

// Build validates the declarations and returns an immutable Schema. A
// duplicate column name, an unrecognized type tag, or an empty declaration
// list aborts construction with Issues.
func (b *Builder) Build() (*Schema, error) {
	var iss Issues
	if len(b.cols) == 0 {
		iss = AppendIssues(iss, Issue{Code: CodeNoColumns, Message: i18n.T(CodeNoColumns, nil)})
	}
	index := make(map[string]int, len(b.cols))
	for i, c := range b.cols {
		if _, dup := index[c.name]; dup {
			iss = AppendIssues(iss, Issue{Column: c.name, Code: CodeDuplicateColumn, Message: i18n.T(CodeDuplicateColumn, nil)})
			continue
		}
		index[c.name] = i
		if !c.typ.valid() {
			iss = AppendIssues(iss, Issue{Column: c.name, Code: CodeUnknownType, Message: i18n.T(CodeUnknownType, nil)})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	cols := append([]columnSpec(nil), b.cols...)
	return &Schema{cols: cols, index: index, strict: b.strict, quiet: b.quiet, out: b.out}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

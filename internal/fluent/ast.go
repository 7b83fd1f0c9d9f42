// Package fluent parses Fluent (.ftl) localization resources into a syntax tree.
//
// Only the parts of the Fluent syntax that matter for structural checks are
// modelled precisely: entries, patterns, placeables and the expressions they
// hold. Text is kept as written, minus the indentation of continuation lines.
package fluent

// Resource is the result of parsing one FTL file.
type Resource struct {
	Body []Entry
}

// Junk returns the entries that could not be parsed.
func (r *Resource) Junk() []*Junk {
	var junk []*Junk
	for _, entry := range r.Body {
		if j, ok := entry.(*Junk); ok {
			junk = append(junk, j)
		}
	}
	return junk
}

// Messages returns the message entries in source order.
func (r *Resource) Messages() []*Message {
	var messages []*Message
	for _, entry := range r.Body {
		if m, ok := entry.(*Message); ok {
			messages = append(messages, m)
		}
	}
	return messages
}

// Entry is a top level item of a resource.
type Entry interface {
	entry()
}

// Message is `id = pattern` with optional attributes.
// Value is nil when the message only has attributes.
type Message struct {
	ID         Identifier
	Value      *Pattern
	Attributes []*Attribute
	Span       Span
}

// Term is `-id = pattern`. Terms always have a value.
type Term struct {
	ID         Identifier
	Value      *Pattern
	Attributes []*Attribute
	Span       Span
}

type CommentLevel int

const (
	CommentLevelEntry CommentLevel = iota + 1
	CommentLevelGroup
	CommentLevelResource
)

type Comment struct {
	Level   CommentLevel
	Content string
	Span    Span
}

// Junk holds the raw text of an entry the parser gave up on.
type Junk struct {
	Content     string
	Annotations []*ParseError
	Span        Span
}

func (*Message) entry() {}
func (*Term) entry()    {}
func (*Comment) entry() {}
func (*Junk) entry()    {}

type Identifier struct {
	Name string
}

type Attribute struct {
	ID    Identifier
	Value *Pattern
}

// Pattern is a sequence of text and placeables.
type Pattern struct {
	Elements []PatternElement
}

// Placeables returns the top level placeables of the pattern.
func (p *Pattern) Placeables() []*Placeable {
	var placeables []*Placeable
	for _, element := range p.Elements {
		if placeable, ok := element.(*Placeable); ok {
			placeables = append(placeables, placeable)
		}
	}
	return placeables
}

type PatternElement interface {
	patternElement()
}

type TextElement struct {
	Value string
}

// Placeable is `{ expression }`. It is both a pattern element and,
// when nested, an expression.
type Placeable struct {
	Expression Expression
}

func (*TextElement) patternElement() {}
func (*Placeable) patternElement()   {}

// Expression is anything that can appear inside braces.
type Expression interface {
	expression()
}

type StringLiteral struct {
	Value string
}

type NumberLiteral struct {
	Value string
}

type VariableReference struct {
	ID Identifier
}

type MessageReference struct {
	ID        Identifier
	Attribute *Identifier
}

type TermReference struct {
	ID        Identifier
	Attribute *Identifier
	Arguments *CallArguments
}

type FunctionReference struct {
	ID        Identifier
	Arguments *CallArguments
}

type CallArguments struct {
	Positional []Expression
	Named      []*NamedArgument
}

type NamedArgument struct {
	Name  Identifier
	Value Expression
}

// SelectExpression is `{ selector -> variants }`.
type SelectExpression struct {
	Selector Expression
	Variants []*Variant
}

type Variant struct {
	// Key is either an Identifier or a NumberLiteral.
	Key     any
	Value   *Pattern
	Default bool
}

func (*StringLiteral) expression()     {}
func (*NumberLiteral) expression()     {}
func (*VariableReference) expression() {}
func (*MessageReference) expression()  {}
func (*TermReference) expression()     {}
func (*FunctionReference) expression() {}
func (*SelectExpression) expression()  {}
func (*Placeable) expression()         {}

// Span is a byte range of the source.
type Span struct {
	Start int
	End   int
}

package fluent

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes why an entry was turned into Junk.
type ParseError struct {
	Message string
	Offset  int
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Parse parses an FTL source. It never fails as a whole: entries that cannot
// be parsed are kept as Junk and parsing resumes at the next line that can
// start an entry.
func Parse(source string) *Resource {
	p := &parser{
		source: strings.ReplaceAll(source, "\r\n", "\n"),
	}

	resource := &Resource{}
	for {
		p.skipBlankLines()
		if p.eof() {
			break
		}

		start := p.pos
		entry, err := p.parseEntry()
		if err == nil {
			resource.Body = append(resource.Body, entry)
			continue
		}

		p.pos = start
		p.skipToNextEntryStart()
		resource.Body = append(resource.Body, &Junk{
			Content:     p.source[start:p.pos],
			Annotations: []*ParseError{err},
			Span:        Span{Start: start, End: p.pos},
		})
	}
	return resource
}

type parser struct {
	source string
	pos    int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.source)
}

func (p *parser) peek() byte {
	return p.peekAt(0)
}

func (p *parser) peekAt(offset int) byte {
	if p.pos+offset >= len(p.source) {
		return 0
	}
	return p.source[p.pos+offset]
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	before := p.source[:min(p.pos, len(p.source))]
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Offset:  p.pos,
		Line:    1 + strings.Count(before, "\n"),
		Column:  len(before) - strings.LastIndexByte(before, '\n'),
	}
}

func (p *parser) expect(c byte) *ParseError {
	if p.peek() != c || p.eof() {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *parser) expectLineEnd() *ParseError {
	if p.eof() {
		return nil
	}
	if p.peek() != '\n' {
		return p.errorf("unexpected character %q", p.peek())
	}
	p.pos++
	return nil
}

func (p *parser) skipBlankInline() {
	for p.peek() == ' ' {
		p.pos++
	}
}

func (p *parser) skipBlank() {
	for c := p.peek(); c == ' ' || c == '\n'; c = p.peek() {
		p.pos++
	}
}

// skipBlankLines consumes whole lines made of spaces only.
func (p *parser) skipBlankLines() {
	for !p.eof() {
		i := p.pos
		for i < len(p.source) && p.source[i] == ' ' {
			i++
		}
		if i >= len(p.source) {
			p.pos = i
			return
		}
		if p.source[i] != '\n' {
			return
		}
		p.pos = i + 1
	}
}

func (p *parser) skipToNextEntryStart() {
	for !p.eof() {
		newline := strings.IndexByte(p.source[p.pos:], '\n')
		if newline < 0 {
			p.pos = len(p.source)
			return
		}
		p.pos += newline + 1
		if c := p.peek(); c == '#' || c == '-' || isIdentifierStart(c) {
			return
		}
	}
}

// lineAhead looks past the newline at the current position and any blank
// lines, and returns the indentation and first character of the next line.
func (p *parser) lineAhead() (indent int, first byte, ok bool) {
	i := p.pos
	for i < len(p.source) && p.source[i] == '\n' {
		i++
		indent = 0
		for i < len(p.source) && p.source[i] == ' ' {
			i++
			indent++
		}
		if i >= len(p.source) {
			return 0, 0, false
		}
		if p.source[i] != '\n' {
			return indent, p.source[i], true
		}
	}
	return 0, 0, false
}

func (p *parser) continuationAhead() bool {
	indent, first, ok := p.lineAhead()
	if !ok || indent == 0 {
		return false
	}
	switch first {
	case '[', '*', '.', '}':
		return false
	}
	return true
}

func (p *parser) attributeAhead() bool {
	_, first, ok := p.lineAhead()
	return ok && first == '.'
}

func (p *parser) parseEntry() (Entry, *ParseError) {
	switch c := p.peek(); {
	case c == '#':
		return p.parseComment()
	case c == '-':
		return p.parseTerm()
	case isIdentifierStart(c):
		return p.parseMessage()
	}
	return nil, p.errorf("expected an entry start")
}

func (p *parser) parseComment() (*Comment, *ParseError) {
	start := p.pos
	level := 0
	var lines []string
	for p.peek() == '#' {
		sigils := 0
		for p.peekAt(sigils) == '#' {
			sigils++
		}
		if level == 0 {
			if sigils > int(CommentLevelResource) {
				return nil, p.errorf("comments can use at most %d sigils", CommentLevelResource)
			}
			level = sigils
		}
		if sigils != level {
			break
		}
		if next := p.peekAt(sigils); next != ' ' && next != '\n' && next != 0 {
			if len(lines) == 0 {
				p.pos += sigils
				return nil, p.errorf("expected a space after the comment sigil")
			}
			break
		}

		p.pos += sigils
		if p.peek() == ' ' {
			p.pos++
		}
		lines = append(lines, p.readLine())
	}

	return &Comment{
		Level:   CommentLevel(level),
		Content: strings.Join(lines, "\n"),
		Span:    Span{Start: start, End: p.pos},
	}, nil
}

func (p *parser) readLine() string {
	end := strings.IndexByte(p.source[p.pos:], '\n')
	if end < 0 {
		line := p.source[p.pos:]
		p.pos = len(p.source)
		return line
	}
	line := p.source[p.pos : p.pos+end]
	p.pos += end + 1
	return line
}

func (p *parser) parseMessage() (*Message, *ParseError) {
	start := p.pos
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.skipBlankInline()
	if err := p.expect('='); err != nil {
		return nil, err
	}

	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}
	attributes, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if value == nil && len(attributes) == 0 {
		return nil, p.errorf("expected message %q to have a value or attributes", id.Name)
	}
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}

	return &Message{
		ID:         id,
		Value:      value,
		Attributes: attributes,
		Span:       Span{Start: start, End: p.pos},
	}, nil
}

func (p *parser) parseTerm() (*Term, *ParseError) {
	start := p.pos
	p.pos++
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.skipBlankInline()
	if err := p.expect('='); err != nil {
		return nil, err
	}

	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, p.errorf("expected term %q to have a value", "-"+id.Name)
	}
	attributes, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}

	return &Term{
		ID:         id,
		Value:      value,
		Attributes: attributes,
		Span:       Span{Start: start, End: p.pos},
	}, nil
}

func (p *parser) parseAttributes() ([]*Attribute, *ParseError) {
	var attributes []*Attribute
	for p.attributeAhead() {
		p.skipBlank()
		p.pos++ // .
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		p.skipBlankInline()
		if err := p.expect('='); err != nil {
			return nil, err
		}
		value, err := p.parseOptionalPattern()
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, p.errorf("expected attribute %q to have a value", id.Name)
		}
		attributes = append(attributes, &Attribute{ID: id, Value: value})
	}
	return attributes, nil
}

// parseOptionalPattern parses the pattern following `=` or a variant key.
// The pattern may start on the same line or on an indented line below.
func (p *parser) parseOptionalPattern() (*Pattern, *ParseError) {
	p.skipBlankInline()
	if p.eof() {
		return nil, nil
	}
	if p.peek() == '\n' && !p.continuationAhead() {
		return nil, nil
	}
	return p.parsePattern()
}

func (p *parser) parsePattern() (*Pattern, *ParseError) {
	var elements []PatternElement
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			elements = append(elements, &TextElement{Value: text.String()})
			text.Reset()
		}
	}

loop:
	for !p.eof() {
		switch c := p.peek(); c {
		case '{':
			flush()
			placeable, err := p.parsePlaceable()
			if err != nil {
				return nil, err
			}
			elements = append(elements, placeable)
		case '}':
			break loop
		case '\n':
			if !p.continuationAhead() {
				break loop
			}
			started := len(elements) > 0 || text.Len() > 0
			for p.peek() == '\n' {
				p.pos++
				p.skipBlankInline()
				if started {
					text.WriteByte('\n')
				}
			}
		default:
			text.WriteByte(c)
			p.pos++
		}
	}
	flush()

	if last := len(elements) - 1; last >= 0 {
		if t, ok := elements[last].(*TextElement); ok {
			t.Value = strings.TrimRight(t.Value, " \n")
			if t.Value == "" {
				elements = elements[:last]
			}
		}
	}
	if len(elements) == 0 {
		return nil, nil
	}
	return &Pattern{Elements: elements}, nil
}

func (p *parser) parsePlaceable() (*Placeable, *ParseError) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	p.skipBlank()
	expression, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipBlank()
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return &Placeable{Expression: expression}, nil
}

func (p *parser) parseExpression() (Expression, *ParseError) {
	selector, err := p.parseInlineExpression()
	if err != nil {
		return nil, err
	}
	p.skipBlank()
	if p.peek() != '-' || p.peekAt(1) != '>' {
		return selector, nil
	}

	switch s := selector.(type) {
	case *Placeable:
		return nil, p.errorf("placeables cannot be used as selectors")
	case *MessageReference:
		if s.Attribute == nil {
			return nil, p.errorf("message references cannot be used as selectors")
		}
		return nil, p.errorf("message attributes cannot be used as selectors")
	case *TermReference:
		if s.Attribute == nil {
			return nil, p.errorf("terms cannot be used as selectors")
		}
	}

	p.pos += 2
	p.skipBlankInline()
	if !p.eof() && p.peek() != '\n' {
		return nil, p.errorf("expected a new line after ->")
	}
	variants, err := p.parseVariants()
	if err != nil {
		return nil, err
	}
	return &SelectExpression{Selector: selector, Variants: variants}, nil
}

func (p *parser) parseVariants() ([]*Variant, *ParseError) {
	var variants []*Variant
	hasDefault := false
	for {
		p.skipBlank()
		isDefault := p.peek() == '*'
		if isDefault {
			p.pos++
		}
		if p.peek() != '[' {
			if isDefault {
				return nil, p.errorf("expected '[' after '*'")
			}
			break
		}
		if isDefault && hasDefault {
			return nil, p.errorf("a select expression can have only one default variant")
		}
		hasDefault = hasDefault || isDefault

		p.pos++
		p.skipBlank()
		var key any
		if c := p.peek(); isDigit(c) || c == '-' {
			number, err := p.parseNumberLiteral()
			if err != nil {
				return nil, err
			}
			key = number
		} else {
			id, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			key = id
		}
		p.skipBlank()
		if err := p.expect(']'); err != nil {
			return nil, err
		}

		value, err := p.parseOptionalPattern()
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, p.errorf("expected the variant to have a value")
		}
		variants = append(variants, &Variant{Key: key, Value: value, Default: isDefault})
	}

	if len(variants) == 0 {
		return nil, p.errorf("expected at least one variant")
	}
	if !hasDefault {
		return nil, p.errorf("expected a default variant")
	}
	return variants, nil
}

func (p *parser) parseInlineExpression() (Expression, *ParseError) {
	switch c := p.peek(); {
	case c == '{':
		return p.parsePlaceable()
	case c == '"':
		return p.parseStringLiteral()
	case isDigit(c) || (c == '-' && isDigit(p.peekAt(1))):
		return p.parseNumberLiteral()
	case c == '$':
		p.pos++
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return &VariableReference{ID: id}, nil
	case c == '-':
		p.pos++
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		ref := &TermReference{ID: id}
		if ref.Attribute, err = p.parseAttributeAccessor(); err != nil {
			return nil, err
		}
		if p.peek() == '(' {
			if ref.Arguments, err = p.parseCallArguments(); err != nil {
				return nil, err
			}
		}
		return ref, nil
	case isIdentifierStart(c):
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if p.peek() == '(' {
			if !isCallee(id.Name) {
				return nil, p.errorf("function names must be uppercase, got %q", id.Name)
			}
			args, err := p.parseCallArguments()
			if err != nil {
				return nil, err
			}
			return &FunctionReference{ID: id, Arguments: args}, nil
		}
		attribute, err := p.parseAttributeAccessor()
		if err != nil {
			return nil, err
		}
		return &MessageReference{ID: id, Attribute: attribute}, nil
	}
	return nil, p.errorf("expected an inline expression")
}

func (p *parser) parseAttributeAccessor() (*Identifier, *ParseError) {
	if p.peek() != '.' {
		return nil, nil
	}
	p.pos++
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (p *parser) parseCallArguments() (*CallArguments, *ParseError) {
	if err := p.expect('('); err != nil {
		return nil, err
	}

	args := &CallArguments{}
	names := map[string]bool{}
	for {
		p.skipBlank()
		if p.peek() == ')' {
			p.pos++
			return args, nil
		}
		if p.eof() {
			return nil, p.errorf("unterminated call arguments")
		}

		expression, err := p.parseInlineExpression()
		if err != nil {
			return nil, err
		}
		p.skipBlank()
		if ref, ok := expression.(*MessageReference); ok && ref.Attribute == nil && p.peek() == ':' {
			p.pos++
			p.skipBlank()
			var value Expression
			switch c := p.peek(); {
			case c == '"':
				value, err = p.parseStringLiteral()
			case isDigit(c) || c == '-':
				value, err = p.parseNumberLiteral()
			default:
				err = p.errorf("named argument %q must have a literal value", ref.ID.Name)
			}
			if err != nil {
				return nil, err
			}
			if names[ref.ID.Name] {
				return nil, p.errorf("duplicated named argument %q", ref.ID.Name)
			}
			names[ref.ID.Name] = true
			args.Named = append(args.Named, &NamedArgument{Name: ref.ID, Value: value})
		} else {
			if len(args.Named) > 0 {
				return nil, p.errorf("positional arguments must not follow named arguments")
			}
			args.Positional = append(args.Positional, expression)
		}

		p.skipBlank()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return args, nil
		default:
			return nil, p.errorf("expected ',' or ')' in call arguments")
		}
	}
}

func (p *parser) parseStringLiteral() (*StringLiteral, *ParseError) {
	if err := p.expect('"'); err != nil {
		return nil, err
	}
	var value strings.Builder
	for {
		c := p.peek()
		switch {
		case p.eof() || c == '\n':
			return nil, p.errorf("unterminated string literal")
		case c == '"':
			p.pos++
			return &StringLiteral{Value: value.String()}, nil
		case c == '\\':
			r, err := p.parseEscapeSequence()
			if err != nil {
				return nil, err
			}
			value.WriteRune(r)
		default:
			value.WriteByte(c)
			p.pos++
		}
	}
}

func (p *parser) parseEscapeSequence() (rune, *ParseError) {
	p.pos++ // backslash
	switch c := p.peek(); c {
	case '\\', '"':
		p.pos++
		return rune(c), nil
	case 'u', 'U':
		digits := 4
		if c == 'U' {
			digits = 6
		}
		p.pos++
		if p.pos+digits > len(p.source) {
			return 0, p.errorf("truncated unicode escape sequence")
		}
		code, err := strconv.ParseUint(p.source[p.pos:p.pos+digits], 16, 32)
		if err != nil {
			return 0, p.errorf("invalid unicode escape sequence %q", p.source[p.pos:p.pos+digits])
		}
		p.pos += digits
		return rune(code), nil
	}
	return 0, p.errorf("unknown escape sequence \\%c", p.peek())
}

func (p *parser) parseNumberLiteral() (*NumberLiteral, *ParseError) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	if !p.skipDigits() {
		return nil, p.errorf("expected a digit")
	}
	if p.peek() == '.' {
		p.pos++
		if !p.skipDigits() {
			return nil, p.errorf("expected a digit after the decimal point")
		}
	}
	return &NumberLiteral{Value: p.source[start:p.pos]}, nil
}

func (p *parser) skipDigits() bool {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	return p.pos > start
}

func (p *parser) parseIdentifier() (Identifier, *ParseError) {
	if !isIdentifierStart(p.peek()) {
		return Identifier{}, p.errorf("expected an identifier")
	}
	start := p.pos
	for c := p.peek(); isIdentifierStart(c) || isDigit(c) || c == '_' || c == '-'; c = p.peek() {
		p.pos++
	}
	return Identifier{Name: p.source[start:p.pos]}, nil
}

func isIdentifierStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isCallee(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if ('A' <= c && c <= 'Z') || c == '_' || c == '-' || (i > 0 && isDigit(c)) {
			continue
		}
		return false
	}
	return true
}

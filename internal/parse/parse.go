package parse

import (
	"fmt"
	"io"
	"slices"

	"github.com/gleamtools/gleamsyntax/internal/syntax"
	"github.com/gleamtools/gleamsyntax/internal/utils"
)

const (
	MAX_MODULE_BYTE_LEN = 1 << 24
)

// A ParsedModule contains the syntax tree of a module and the source it was
// parsed from. The tree is always present, even for erroneous code; syntax
// errors are listed in Errors in source order.
type ParsedModule struct {
	Source ModuleSource
	Tree   *syntax.Tree
	Errors []*ParsingError
}

// ParseModule parses the code of a module source. result is always non-nil
// unless the code exceeds MAX_MODULE_BYTE_LEN; resultErr is either nil or an
// aggregation of the syntax errors (*ParsingErrorAggregation). result and
// resultErr can be both non-nil at the same time.
func ParseModule(source ModuleSource) (result *ParsedModule, resultErr error) {
	code := source.Code()

	if len(code) > MAX_MODULE_BYTE_LEN {
		return nil, &ParsingError{
			Kind:    UnspecifiedParsingError,
			Message: fmt.Sprintf("module's code is too long (%d bytes)", len(code)),
		}
	}

	p := newParser(code)
	tree := p.parseSourceFile()

	slices.SortStableFunc(p.errors, func(a, b *ParsingError) int {
		return int(a.Span.Start - b.Span.Start)
	})

	result = &ParsedModule{
		Source: source,
		Tree:   tree,
		Errors: p.errors,
	}

	if len(p.errors) != 0 {
		resultErr = result.errorAggregation()
	}
	return result, resultErr
}

// ParseModuleSource parses in-memory code; name is used in error locations.
func ParseModuleSource(code string, name string) (*ParsedModule, error) {
	return ParseModule(InMemorySource{NameString: name, CodeString: code})
}

// MustParseModule is a helper for code known to be syntactically valid, it
// panics if there is any syntax error.
func MustParseModule(code string) *ParsedModule {
	return utils.Must(ParseModuleSource(code, "<in-memory>"))
}

// Root returns the SOURCE_FILE node; its text is exactly the parsed code.
func (m *ParsedModule) Root() syntax.Node {
	return m.Tree.Root()
}

func (m *ParsedModule) errorAggregation() *ParsingErrorAggregation {
	aggregation := &ParsingErrorAggregation{
		Errors: m.Errors,
		ErrorPositions: utils.MapSlice(m.Errors, func(err *ParsingError) SourcePositionRange {
			return m.GetSourcePosition(err.Span)
		}),
	}

	for i, err := range m.Errors {
		pos := aggregation.ErrorPositions[i]
		aggregation.Message = fmt.Sprintf("%s\n%s %s", aggregation.Message, pos.String(), err.Message)
	}
	return aggregation
}

type SourcePositionRange struct {
	SourceName  string          `json:"sourceName"`
	StartLine   int32           `json:"line"`   //1-indexed
	StartColumn int32           `json:"column"` //1-indexed
	Span        syntax.NodeSpan `json:"span"`
}

func (pos SourcePositionRange) String() string {
	return fmt.Sprintf("%s:%d:%d:", pos.SourceName, pos.StartLine, pos.StartColumn)
}

// GetSpanLineColumn returns the 1-indexed line and rune column of the span's
// start. Span offsets are byte offsets into the code.
func (m *ParsedModule) GetSpanLineColumn(span syntax.NodeSpan) (int32, int32) {
	line := int32(1)
	col := int32(1)

	for i, r := range m.Source.Code() {
		if int32(i) >= span.Start {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return line, col
}

func (m *ParsedModule) GetSourcePosition(span syntax.NodeSpan) SourcePositionRange {
	line, col := m.GetSpanLineColumn(span)

	return SourcePositionRange{
		SourceName:  m.Source.Name(),
		StartLine:   line,
		StartColumn: col,
		Span:        span,
	}
}

func (m *ParsedModule) FormatNodeSpanLocation(w io.Writer, nodeSpan syntax.NodeSpan) (int, error) {
	line, col := m.GetSpanLineColumn(nodeSpan)
	return fmt.Fprintf(w, "%s:%d:%d:", m.Source.UserFriendlyName(), line, col)
}

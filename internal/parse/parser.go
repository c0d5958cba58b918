package parse

import (
	"github.com/gleamtools/gleamsyntax/internal/syntax"
)

// A parser builds a syntax tree from the token sequence of a single module.
// It recovers from errors: whatever the input, it produces a SOURCE_FILE
// root covering the whole code; errors are recorded on the side and the
// affected pieces of the tree are simply absent or wrapped in ERROR nodes.
type parser struct {
	tokens []token
	i      int
	b      *syntax.Builder
	errors []*ParsingError

	eofSpan syntax.NodeSpan
}

func newParser(code string) *parser {
	tokens, errors := tokenize(code)
	return &parser{
		tokens:  tokens,
		b:       syntax.NewBuilder(code),
		errors:  errors,
		eofSpan: syntax.NodeSpan{Start: int32(len(code)), End: int32(len(code))},
	}
}

func (p *parser) parseSourceFile() *syntax.Tree {
	p.b.StartNode(syntax.SOURCE_FILE)

	for p.peek() != 0 {
		p.parseTargetGroup()
	}

	p.eatTrivia()
	p.b.FinishNode()
	return p.b.Finish()
}

// ---- low level ----

// peek returns the kind of the next non-trivia token, or 0 at end of input.
func (p *parser) peek() syntax.Kind {
	return p.peekNth(0)
}

func (p *parser) peekNth(nth int) syntax.Kind {
	for i := p.i; i < len(p.tokens); i++ {
		if p.tokens[i].kind.IsTrivia() {
			continue
		}
		if nth == 0 {
			return p.tokens[i].kind
		}
		nth--
	}
	return 0
}

func (p *parser) at(kind syntax.Kind) bool {
	return p.peek() == kind
}

// eatTrivia moves pending whitespace and comments into the innermost open
// node.
func (p *parser) eatTrivia() {
	for p.i < len(p.tokens) && p.tokens[p.i].kind.IsTrivia() {
		p.b.Token(p.tokens[p.i].kind, p.tokens[p.i].span)
		p.i++
	}
}

// bump emits the next non-trivia token, preceded by its leading trivia, into
// the innermost open node.
func (p *parser) bump() {
	p.eatTrivia()
	if p.i < len(p.tokens) {
		p.b.Token(p.tokens[p.i].kind, p.tokens[p.i].span)
		p.i++
	}
}

// startNode first attaches pending trivia to the enclosing node so that the
// new node's text starts at its first significant token.
func (p *parser) startNode(kind syntax.Kind) {
	p.eatTrivia()
	p.b.StartNode(kind)
}

func (p *parser) finishNode() {
	p.b.FinishNode()
}

// currentSpan returns the span of the next non-trivia token, or an empty
// span at end of input.
func (p *parser) currentSpan() syntax.NodeSpan {
	for i := p.i; i < len(p.tokens); i++ {
		if !p.tokens[i].kind.IsTrivia() {
			return p.tokens[i].span
		}
	}
	return p.eofSpan
}

func (p *parser) addError(kind ParsingErrorKind, msg string) {
	p.errors = append(p.errors, &ParsingError{
		Kind:    kind,
		Message: msg,
		Span:    p.currentSpan(),
	})
}

// expect bumps a token of the given kind or records an error and bumps
// nothing.
func (p *parser) expect(kind syntax.Kind, errKind ParsingErrorKind, msg string) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	p.addError(errKind, msg)
	return false
}

// bumpUnexpected wraps the next token in an ERROR node and records an error,
// guaranteeing progress at recovery points.
func (p *parser) bumpUnexpected() {
	p.addError(UnexpectedTokenError, fmtUnexpectedToken(p.peek()))
	p.startNode(syntax.ERROR)
	p.bump()
	p.finishNode()
}

func fmtUnexpectedToken(kind syntax.Kind) string {
	return "unexpected token '" + kind.String() + "'"
}

// ---- grammar ----

func isStatementStart(kind syntax.Kind) bool {
	switch kind {
	case syntax.PUB_KEYWORD, syntax.CONST_KEYWORD, syntax.IMPORT_KEYWORD:
		return true
	}
	return false
}

func isConstantValueStart(kind syntax.Kind) bool {
	switch kind {
	case syntax.INTEGER, syntax.FLOAT, syntax.STRING, syntax.HASH, syntax.OPENING_BRACKET:
		return true
	}
	return false
}

func isTypeAnnotationStart(kind syntax.Kind) bool {
	switch kind {
	case syntax.FN_KEYWORD, syntax.HASH, syntax.IDENT, syntax.UPNAME:
		return true
	}
	return false
}

// parseTargetGroup parses either an `if <target> { <statements> }` group or
// a single bare statement, which forms a group of its own with no target.
func (p *parser) parseTargetGroup() {
	switch {
	case p.at(syntax.IF_KEYWORD):
		p.startNode(syntax.TARGET_GROUP)
		p.bump()

		if p.at(syntax.IDENT) {
			p.startNode(syntax.TARGET)
			p.parseName()
			p.finishNode()
		} else {
			p.addError(MissingTargetName, A_TARGET_NAME_WAS_EXPECTED)
		}

		if p.at(syntax.OPENING_CURLY_BRACKET) {
			p.bump()
			for {
				kind := p.peek()
				if kind == syntax.CLOSING_CURLY_BRACKET {
					p.bump()
					break
				}
				if kind == 0 {
					p.addError(UnterminatedTargetGroup, UNTERMINATED_TARGET_GROUP_MISSING_BRACE)
					break
				}
				if isStatementStart(kind) {
					p.parseStatement()
				} else {
					p.bumpUnexpected()
				}
			}
		} else {
			p.addError(UnterminatedTargetGroup, UNTERMINATED_TARGET_GROUP_MISSING_BRACE)
		}

		p.finishNode()
	case isStatementStart(p.peek()):
		p.startNode(syntax.TARGET_GROUP)
		p.parseStatement()
		p.finishNode()
	default:
		p.bumpUnexpected()
	}
}

func (p *parser) parseStatement() {
	switch p.peek() {
	case syntax.PUB_KEYWORD, syntax.CONST_KEYWORD:
		p.parseModuleConstant()
	case syntax.IMPORT_KEYWORD:
		p.parseImport()
	}
}

// parseModuleConstant parses `[pub] const <name> [: <annotation>] [= <value>]`.
// The annotation and the value are independently optional so that partially
// typed declarations still produce a node.
func (p *parser) parseModuleConstant() {
	p.startNode(syntax.MODULE_CONSTANT)

	if p.at(syntax.PUB_KEYWORD) {
		p.bump()
	}
	p.expect(syntax.CONST_KEYWORD, MissingConstKeyword, CONST_KEYWORD_WAS_EXPECTED)

	if p.at(syntax.IDENT) {
		p.parseName()
	} else {
		p.addError(MissingConstantName, A_CONSTANT_NAME_WAS_EXPECTED)
	}

	if p.at(syntax.COLON) {
		p.bump()
		p.parseTypeAnnotation()
	}

	if p.at(syntax.EQUAL) {
		p.bump()
		if isConstantValueStart(p.peek()) {
			p.parseConstantValue()
		} else {
			p.addError(MissingConstantValue, A_CONSTANT_VALUE_WAS_EXPECTED)
		}
	}

	p.finishNode()
}

func (p *parser) parseName() {
	p.startNode(syntax.NAME)
	p.bump()
	p.finishNode()
}

// parseImport parses `import <path>/<path>... [.{ <unqualified>, ... }] [as <name>]`.
func (p *parser) parseImport() {
	p.startNode(syntax.IMPORT)
	p.bump() //'import'

	p.startNode(syntax.IMPORT_MODULE)

	if p.at(syntax.IDENT) {
		p.parsePathSegment()
		for p.at(syntax.SLASH) {
			p.bump()
			if p.at(syntax.IDENT) {
				p.parsePathSegment()
			} else {
				p.addError(MissingModulePath, A_MODULE_PATH_WAS_EXPECTED)
				break
			}
		}
	} else {
		p.addError(MissingModulePath, A_MODULE_PATH_WAS_EXPECTED)
	}

	if p.at(syntax.DOT) {
		p.bump()
		p.parseUnqualifiedImportList()
	}

	if p.at(syntax.AS_KEYWORD) {
		p.bump()
		if p.at(syntax.IDENT) || p.at(syntax.UPNAME) {
			p.parseName()
		} else {
			p.addError(MissingImportedName, AN_IMPORTED_NAME_WAS_EXPECTED)
		}
	}

	p.finishNode() //IMPORT_MODULE
	p.finishNode() //IMPORT
}

func (p *parser) parsePathSegment() {
	p.startNode(syntax.PATH)
	p.bump()
	p.finishNode()
}

func (p *parser) parseUnqualifiedImportList() {
	if !p.expect(syntax.OPENING_CURLY_BRACKET, UnterminatedImportList, UNTERMINATED_IMPORT_LIST_MISSING_BRACE) {
		return
	}

	for {
		kind := p.peek()
		if kind == syntax.CLOSING_CURLY_BRACKET {
			p.bump()
			return
		}
		if kind == 0 {
			p.addError(UnterminatedImportList, UNTERMINATED_IMPORT_LIST_MISSING_BRACE)
			return
		}
		if kind == syntax.IDENT || kind == syntax.UPNAME {
			p.parseUnqualifiedImport()
		} else if kind == syntax.COMMA {
			p.bump()
		} else {
			p.bumpUnexpected()
		}
	}
}

// parseUnqualifiedImport parses `<name> [as <name>]`. Extra `as` clauses are
// reported but kept inside the entry so that the rename accessor still sees
// the second name.
func (p *parser) parseUnqualifiedImport() {
	p.startNode(syntax.UNQUALIFIED_IMPORT)
	p.parseName()

	renames := 0
	for p.at(syntax.AS_KEYWORD) {
		p.bump()
		renames++
		if renames > 1 {
			p.addError(UnexpectedTokenError, fmtUnexpectedToken(syntax.AS_KEYWORD))
		}
		if p.at(syntax.IDENT) || p.at(syntax.UPNAME) {
			p.parseName()
		} else {
			p.addError(MissingImportedName, AN_IMPORTED_NAME_WAS_EXPECTED)
			break
		}
	}

	p.finishNode()
}

func (p *parser) parseConstantValue() {
	switch p.peek() {
	case syntax.INTEGER, syntax.FLOAT, syntax.STRING:
		p.startNode(syntax.LITERAL)
		p.bump()
		p.finishNode()
	case syntax.HASH:
		p.startNode(syntax.TUPLE)
		p.bump()
		p.expect(syntax.OPENING_PARENTHESIS, UnterminatedTuple, "an opening parenthesis was expected after '#'")
		p.parseConstantValueList(syntax.CLOSING_PARENTHESIS, UnterminatedTuple, "unterminated tuple: missing closing parenthesis")
		p.finishNode()
	case syntax.OPENING_BRACKET:
		p.startNode(syntax.LIST)
		p.bump()
		p.parseConstantValueList(syntax.CLOSING_BRACKET, UnterminatedList, "unterminated list: missing closing bracket")
		p.finishNode()
	}
}

func (p *parser) parseConstantValueList(closing syntax.Kind, errKind ParsingErrorKind, unterminatedMsg string) {
	for {
		kind := p.peek()
		if kind == closing {
			p.bump()
			return
		}
		if kind == 0 {
			p.addError(errKind, unterminatedMsg)
			return
		}
		if isConstantValueStart(kind) {
			p.parseConstantValue()
		} else if kind == syntax.COMMA {
			p.bump()
		} else {
			p.bumpUnexpected()
		}
	}
}

func (p *parser) parseTypeAnnotation() {
	switch p.peek() {
	case syntax.FN_KEYWORD:
		p.parseFnType()
	case syntax.HASH:
		p.startNode(syntax.TUPLE_TYPE)
		p.bump()
		p.expect(syntax.OPENING_PARENTHESIS, UnterminatedTuple, "an opening parenthesis was expected after '#'")
		p.parseTypeAnnotationList(syntax.CLOSING_PARENTHESIS, UnterminatedTuple, "unterminated tuple type: missing closing parenthesis")
		p.finishNode()
	case syntax.IDENT:
		if p.peekNth(1) == syntax.DOT && p.peekNth(2) == syntax.UPNAME {
			p.startNode(syntax.CONSTRUCTOR_TYPE)
			p.startNode(syntax.MODULE_NAME)
			p.bump() //module name
			p.finishNode()
			p.bump() //'.'
			p.parseName()
			p.finishNode()
		} else {
			p.startNode(syntax.VAR_TYPE)
			p.parseName()
			p.finishNode()
		}
	case syntax.UPNAME:
		p.startNode(syntax.CONSTRUCTOR_TYPE)
		p.parseName()
		p.finishNode()
	default:
		p.addError(MissingTypeAnnotation, A_TYPE_ANNOTATION_WAS_EXPECTED)
	}
}

func (p *parser) parseTypeAnnotationList(closing syntax.Kind, errKind ParsingErrorKind, unterminatedMsg string) {
	for {
		kind := p.peek()
		if kind == closing {
			p.bump()
			return
		}
		if kind == 0 {
			p.addError(errKind, unterminatedMsg)
			return
		}
		if isTypeAnnotationStart(kind) {
			p.parseTypeAnnotation()
		} else if kind == syntax.COMMA {
			p.bump()
		} else {
			p.bumpUnexpected()
		}
	}
}

func (p *parser) parseFnType() {
	p.startNode(syntax.FN_TYPE)
	p.bump() //'fn'

	p.startNode(syntax.PARAM_LIST)
	if p.expect(syntax.OPENING_PARENTHESIS, UnterminatedParamList, "an opening parenthesis was expected after 'fn'") {
		for {
			kind := p.peek()
			if kind == syntax.CLOSING_PARENTHESIS {
				p.bump()
				break
			}
			if kind == 0 {
				p.addError(UnterminatedParamList, "unterminated parameter list: missing closing parenthesis")
				break
			}
			if isTypeAnnotationStart(kind) {
				p.startNode(syntax.PARAM)
				p.parseTypeAnnotation()
				p.finishNode()
			} else if kind == syntax.COMMA {
				p.bump()
			} else {
				p.bumpUnexpected()
			}
		}
	}
	p.finishNode() //PARAM_LIST

	if p.expect(syntax.ARROW, MissingFnReturnType, A_RETURN_TYPE_WAS_EXPECTED) {
		if isTypeAnnotationStart(p.peek()) {
			p.parseTypeAnnotation()
		} else {
			p.addError(MissingFnReturnType, A_RETURN_TYPE_WAS_EXPECTED)
		}
	}

	p.finishNode() //FN_TYPE
}

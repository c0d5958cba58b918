package parse

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/gleamtools/gleamsyntax/internal/syntax"
)

var keywords = map[string]syntax.Kind{
	"pub":    syntax.PUB_KEYWORD,
	"const":  syntax.CONST_KEYWORD,
	"import": syntax.IMPORT_KEYWORD,
	"as":     syntax.AS_KEYWORD,
	"if":     syntax.IF_KEYWORD,
	"fn":     syntax.FN_KEYWORD,
}

type token struct {
	kind syntax.Kind
	span syntax.NodeSpan
}

// A lexer scans a module's code into a flat token sequence, trivia included.
// It never fails: characters it does not recognize become UNEXPECTED_CHAR
// tokens and a ParsingError is recorded.
type lexer struct {
	s      string
	i      int32 //byte index
	len    int32
	tokens []token
	errors []*ParsingError
}

func tokenize(code string) ([]token, []*ParsingError) {
	l := &lexer{
		s:      code,
		len:    int32(len(code)),
		tokens: make([]token, 0, len(code)/4),
	}
	l.run()
	return l.tokens, l.errors
}

func (l *lexer) run() {
	for l.i < l.len {
		start := l.i
		r, size := l.peekRune()

		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			for l.i < l.len {
				c := l.s[l.i]
				if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
					break
				}
				l.i++
			}
			l.emit(syntax.WHITESPACE, start)
		case r == '/' && l.i+1 < l.len && l.s[l.i+1] == '/':
			for l.i < l.len && l.s[l.i] != '\n' {
				l.i++
			}
			l.emit(syntax.COMMENT, start)
		case r == '"':
			l.lexString(start)
		case isDigit(r):
			l.lexNumber(start)
		case isNameStart(r):
			l.lexName(start)
		case unicode.IsUpper(r):
			l.i += size
			for l.i < l.len {
				c, n := l.peekRune()
				if !isNameContinuation(c) {
					break
				}
				l.i += n
			}
			l.emit(syntax.UPNAME, start)
		case r == '-':
			l.i++
			if l.i < l.len && l.s[l.i] == '>' {
				l.i++
				l.emit(syntax.ARROW, start)
			} else if l.i < l.len && isDigit(rune(l.s[l.i])) {
				l.lexNumber(start)
			} else {
				l.emit(syntax.UNEXPECTED_CHAR, start)
				l.addError(UnexpectedCharError, fmtUnexpectedChar('-'), start)
			}
		default:
			if kind, ok := singleCharTokens[r]; ok {
				l.i++
				l.emit(kind, start)
				break
			}
			//size, not the rune's encoded length: the two differ for
			//invalid UTF-8 bytes
			l.i += size
			l.emit(syntax.UNEXPECTED_CHAR, start)
			l.addError(UnexpectedCharError, fmtUnexpectedChar(r), start)
		}
	}
}

var singleCharTokens = map[rune]syntax.Kind{
	'=': syntax.EQUAL,
	':': syntax.COLON,
	',': syntax.COMMA,
	'.': syntax.DOT,
	'/': syntax.SLASH,
	'#': syntax.HASH,
	'(': syntax.OPENING_PARENTHESIS,
	')': syntax.CLOSING_PARENTHESIS,
	'[': syntax.OPENING_BRACKET,
	']': syntax.CLOSING_BRACKET,
	'{': syntax.OPENING_CURLY_BRACKET,
	'}': syntax.CLOSING_CURLY_BRACKET,
}

// lexString scans a double-quoted string literal, the opening quote being at
// l.i. An unterminated literal extends to the end of the code and is
// reported, not thrown.
func (l *lexer) lexString(start int32) {
	l.i++ //opening quote

	for l.i < l.len {
		switch l.s[l.i] {
		case '\\':
			l.i++
			if l.i < l.len {
				_, n := l.peekRune()
				l.i += n
			}
		case '"':
			l.i++
			l.emit(syntax.STRING, start)
			return
		default:
			_, n := l.peekRune()
			l.i += n
		}
	}

	l.emit(syntax.STRING, start)
	l.addError(UnterminatedStringLiteral, UNTERMINATED_STRING_LIT, start)
}

func (l *lexer) lexNumber(start int32) {
	kind := syntax.INTEGER
	for l.i < l.len && (isDigit(rune(l.s[l.i])) || l.s[l.i] == '_') {
		l.i++
	}
	if l.i+1 < l.len && l.s[l.i] == '.' && isDigit(rune(l.s[l.i+1])) {
		kind = syntax.FLOAT
		l.i++
		for l.i < l.len && (isDigit(rune(l.s[l.i])) || l.s[l.i] == '_') {
			l.i++
		}
	}
	l.emit(kind, start)
}

func (l *lexer) lexName(start int32) {
	for l.i < l.len {
		c, n := l.peekRune()
		if !isNameContinuation(c) {
			break
		}
		l.i += n
	}

	if kind, ok := keywords[l.s[start:l.i]]; ok {
		l.emit(kind, start)
		return
	}
	l.emit(syntax.IDENT, start)
}

// peekRune decodes the rune at l.i and returns it with its byte size. For an
// invalid UTF-8 sequence the size is 1, never the encoded length of the
// replacement rune.
func (l *lexer) peekRune() (rune, int32) {
	r, size := utf8.DecodeRuneInString(l.s[l.i:])
	return r, int32(size)
}

func (l *lexer) emit(kind syntax.Kind, start int32) {
	l.tokens = append(l.tokens, token{
		kind: kind,
		span: syntax.NodeSpan{Start: start, End: l.i},
	})
}

func (l *lexer) addError(kind ParsingErrorKind, msg string, start int32) {
	l.errors = append(l.errors, &ParsingError{
		Kind:    kind,
		Message: msg,
		Span:    syntax.NodeSpan{Start: start, End: l.i},
	})
}

func fmtUnexpectedChar(r rune) string {
	return fmt.Sprintf("unexpected char '%c'", r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLower(r)
}

func isNameContinuation(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || isDigit(r)
}

package syntax

import "fmt"

// A Kind identifies the syntactic category of a tree element: a token class
// for leaves, a grammar production for nodes. Kind values are shared by value
// between the parser and the typed AST layer.
type Kind uint16

const (
	//tokens
	UNEXPECTED_CHAR Kind = iota + 1
	WHITESPACE
	COMMENT
	IDENT
	UPNAME
	INTEGER
	FLOAT
	STRING
	PUB_KEYWORD
	CONST_KEYWORD
	IMPORT_KEYWORD
	AS_KEYWORD
	IF_KEYWORD
	FN_KEYWORD
	EQUAL
	COLON
	COMMA
	DOT
	SLASH
	HASH
	ARROW
	OPENING_PARENTHESIS
	CLOSING_PARENTHESIS
	OPENING_BRACKET
	CLOSING_BRACKET
	OPENING_CURLY_BRACKET
	CLOSING_CURLY_BRACKET

	//nodes
	SOURCE_FILE
	TARGET_GROUP
	TARGET
	MODULE_CONSTANT
	IMPORT
	IMPORT_MODULE
	UNQUALIFIED_IMPORT
	MODULE_NAME
	NAME
	PATH
	LITERAL
	TUPLE
	LIST
	PARAM
	PARAM_LIST
	FN_TYPE
	VAR_TYPE
	TUPLE_TYPE
	CONSTRUCTOR_TYPE
	ERROR

	LAST_TOKEN_KIND        = CLOSING_CURLY_BRACKET
	FIRST_KEYWORD          = PUB_KEYWORD
	LAST_KEYWORD           = FN_KEYWORD
	KIND_COUNT      uint16 = uint16(ERROR)
)

var kindNames = [...]string{
	UNEXPECTED_CHAR:       "unexpected-char",
	WHITESPACE:            "whitespace",
	COMMENT:               "comment",
	IDENT:                 "ident",
	UPNAME:                "upname",
	INTEGER:               "integer",
	FLOAT:                 "float",
	STRING:                "string",
	PUB_KEYWORD:           "pub",
	CONST_KEYWORD:         "const",
	IMPORT_KEYWORD:        "import",
	AS_KEYWORD:            "as",
	IF_KEYWORD:            "if",
	FN_KEYWORD:            "fn",
	EQUAL:                 "=",
	COLON:                 ":",
	COMMA:                 ",",
	DOT:                   ".",
	SLASH:                 "/",
	HASH:                  "#",
	ARROW:                 "->",
	OPENING_PARENTHESIS:   "(",
	CLOSING_PARENTHESIS:   ")",
	OPENING_BRACKET:       "[",
	CLOSING_BRACKET:       "]",
	OPENING_CURLY_BRACKET: "{",
	CLOSING_CURLY_BRACKET: "}",
	SOURCE_FILE:           "source-file",
	TARGET_GROUP:          "target-group",
	TARGET:                "target",
	MODULE_CONSTANT:       "module-constant",
	IMPORT:                "import-statement",
	IMPORT_MODULE:         "import-module",
	UNQUALIFIED_IMPORT:    "unqualified-import",
	MODULE_NAME:           "module-name",
	NAME:                  "name",
	PATH:                  "path",
	LITERAL:               "literal",
	TUPLE:                 "tuple",
	LIST:                  "list",
	PARAM:                 "param",
	PARAM_LIST:            "param-list",
	FN_TYPE:               "fn-type",
	VAR_TYPE:              "var-type",
	TUPLE_TYPE:            "tuple-type",
	CONSTRUCTOR_TYPE:      "constructor-type",
	ERROR:                 "error",
}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", uint16(k))
	}
	return kindNames[k]
}

// IsToken returns true for token (leaf) kinds.
func (k Kind) IsToken() bool {
	return k >= UNEXPECTED_CHAR && k <= LAST_TOKEN_KIND
}

// IsTrivia returns true for kinds the parser passes through without
// interpreting: whitespace and comments.
func (k Kind) IsTrivia() bool {
	return k == WHITESPACE || k == COMMENT
}

func (k Kind) IsKeyword() bool {
	return k >= FIRST_KEYWORD && k <= LAST_KEYWORD
}

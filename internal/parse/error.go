package parse

import (
	"github.com/gleamtools/gleamsyntax/internal/syntax"
)

type ParsingErrorKind string

const (
	UnspecifiedParsingError   ParsingErrorKind = "unspecified-parsing-error"
	UnexpectedCharError       ParsingErrorKind = "unexpected-char"
	UnexpectedTokenError      ParsingErrorKind = "unexpected-token"
	UnterminatedStringLiteral ParsingErrorKind = "unterminated-string-literal"
	UnterminatedTargetGroup   ParsingErrorKind = "unterminated-target-group"
	UnterminatedImportList    ParsingErrorKind = "unterminated-import-list"
	UnterminatedTuple         ParsingErrorKind = "unterminated-tuple"
	UnterminatedList          ParsingErrorKind = "unterminated-list"
	UnterminatedParamList     ParsingErrorKind = "unterminated-param-list"
	MissingConstantName       ParsingErrorKind = "missing-constant-name"
	MissingModulePath         ParsingErrorKind = "missing-module-path"
	MissingImportedName       ParsingErrorKind = "missing-imported-name"
	MissingTargetName         ParsingErrorKind = "missing-target-name"
	MissingConstantValue      ParsingErrorKind = "missing-constant-value"
	MissingTypeAnnotation     ParsingErrorKind = "missing-type-annotation"
	MissingFnReturnType       ParsingErrorKind = "missing-fn-return-type"
	MissingConstKeyword       ParsingErrorKind = "missing-const-keyword"
)

const (
	UNTERMINATED_TARGET_GROUP_MISSING_BRACE = "unterminated target group: missing closing brace '}'"
	UNTERMINATED_IMPORT_LIST_MISSING_BRACE  = "unterminated unqualified import list: missing closing brace '}'"
	UNTERMINATED_STRING_LIT                 = "unterminated string literal"
	A_CONSTANT_NAME_WAS_EXPECTED            = "a constant name was expected"
	A_MODULE_PATH_WAS_EXPECTED              = "a module path was expected"
	AN_IMPORTED_NAME_WAS_EXPECTED           = "an imported name was expected after 'as'"
	A_TARGET_NAME_WAS_EXPECTED              = "a target name was expected after 'if'"
	A_CONSTANT_VALUE_WAS_EXPECTED           = "a constant value was expected after '='"
	A_TYPE_ANNOTATION_WAS_EXPECTED          = "a type annotation was expected"
	A_RETURN_TYPE_WAS_EXPECTED              = "a return type was expected after '->'"
	CONST_KEYWORD_WAS_EXPECTED              = "the 'const' keyword was expected after 'pub'"
)

type ParsingError struct {
	Kind    ParsingErrorKind `json:"kind"`
	Message string           `json:"message"`
	Span    syntax.NodeSpan  `json:"span"`
}

func (err ParsingError) Error() string {
	return err.Message
}

type ParsingErrorAggregation struct {
	Message        string                `json:"completeMessage"`
	Errors         []*ParsingError       `json:"errors"`
	ErrorPositions []SourcePositionRange `json:"errorPositions"`
}

func (err ParsingErrorAggregation) Error() string {
	return err.Message
}

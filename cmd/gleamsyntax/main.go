package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gleamtools/gleamsyntax/internal/parse"
	"github.com/gleamtools/gleamsyntax/internal/syntax"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	json "github.com/goccy/go-json"
)

const (
	PARSE_SUBCMD = "parse"
	CHECK_SUBCMD = "check"
	HELP_SUBCMD  = "help"

	SOURCE_LOG_FIELD_NAME = "src"
)

var SUBCOMMAND_DESCRIPTIONS = [][2]string{
	{PARSE_SUBCMD, "parse a module and print its syntax tree"},
	{CHECK_SUBCMD, "parse a module and report syntax errors"},
	{HELP_SUBCMD, "show this help"},
}

func main() {
	os.Exit(_main(os.Args, os.Stdout, os.Stderr))
}

func _main(args []string, outW, errW io.Writer) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: errW}).
		With().Str(SOURCE_LOG_FIELD_NAME, "cli").Logger()

	if len(args) < 2 {
		printHelp(errW)
		return 2
	}

	mainSubCommand := args[1]
	mainSubCommandArgs := args[2:]

	switch mainSubCommand {
	case HELP_SUBCMD, "--help", "-help", "-h":
		printHelp(outW)
		return 0
	case PARSE_SUBCMD:
		flags := flag.NewFlagSet(PARSE_SUBCMD, flag.ExitOnError)
		var asJSON bool
		flags.BoolVar(&asJSON, "json", false, "print the tree as JSON")

		fpath, ok := parseFileArg(flags, mainSubCommandArgs, logger)
		if !ok {
			return 2
		}

		mod, err := parseFile(fpath, logger)
		if mod == nil {
			return 1
		}
		if err != nil {
			logger.Warn().Msgf("%d syntax error(s)", len(mod.Errors))
		}

		if asJSON {
			return printTreeJSON(mod, outW, logger)
		}
		printTreeColored(mod.Root(), outW)
		return 0
	case CHECK_SUBCMD:
		flags := flag.NewFlagSet(CHECK_SUBCMD, flag.ExitOnError)

		fpath, ok := parseFileArg(flags, mainSubCommandArgs, logger)
		if !ok {
			return 2
		}

		mod, _ := parseFile(fpath, logger)
		if mod == nil {
			return 1
		}

		for _, err := range mod.Errors {
			mod.FormatNodeSpanLocation(errW, err.Span) //ignore failure
			fmt.Fprintf(errW, " %s\n", err.Message)
		}

		if len(mod.Errors) != 0 {
			return 1
		}
		fmt.Fprintln(outW, "no syntax errors")
		return 0
	default:
		fmt.Fprintf(errW, "unknown command '%s'\n", mainSubCommand)
		printHelp(errW)
		return 2
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "commands:")
	for _, cmd := range SUBCOMMAND_DESCRIPTIONS {
		fmt.Fprintf(w, "  %-8s %s\n", cmd[0], cmd[1])
	}
}

func parseFileArg(flags *flag.FlagSet, args []string, logger zerolog.Logger) (string, bool) {
	flags.Parse(args) //the error is handled by ExitOnError

	if flags.NArg() != 1 {
		logger.Error().Msg("a single file argument is expected")
		return "", false
	}
	return flags.Arg(0), true
}

func parseFile(fpath string, logger zerolog.Logger) (*parse.ParsedModule, error) {
	content, err := os.ReadFile(fpath)
	if err != nil {
		logger.Error().Err(err).Msgf("failed to read %s", fpath)
		return nil, err
	}

	return parse.ParseModule(parse.SourceFile{
		NameString: fpath,
		CodeString: string(content),
	})
}

// jsonElement mirrors the tree shape for the -json output.
type jsonElement struct {
	Kind     string          `json:"kind"`
	Span     syntax.NodeSpan `json:"span"`
	Text     string          `json:"text,omitempty"` //tokens only
	Children []jsonElement   `json:"children,omitempty"`
}

func printTreeJSON(mod *parse.ParsedModule, w io.Writer, logger zerolog.Logger) int {
	root := toJSONElement(mod.Root())

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(root); err != nil {
		logger.Error().Err(err).Msg("failed to encode the tree")
		return 1
	}
	return 0
}

func toJSONElement(node syntax.Node) jsonElement {
	elem := jsonElement{
		Kind: node.Kind().String(),
		Span: node.Span(),
	}

	for it := node.Children(); ; {
		child, ok := it.Next()
		if !ok {
			break
		}
		if sub, ok := child.AsNode(); ok {
			elem.Children = append(elem.Children, toJSONElement(sub))
			continue
		}
		tok, _ := child.AsToken()
		elem.Children = append(elem.Children, jsonElement{
			Kind: tok.Kind().String(),
			Span: tok.Span(),
			Text: tok.Text(),
		})
	}
	return elem
}

func printTreeColored(root syntax.Node, w io.Writer) {
	output := termenv.NewOutput(w)
	nodeStyle := output.String().Foreground(output.Color("6"))
	tokenStyle := output.String().Foreground(output.Color("3"))
	triviaStyle := output.String().Faint()

	fmt.Fprintf(w, "%s\n", nodeStyle.Styled(root.String()))

	syntax.Walk(root, func(child syntax.Child, parent syntax.Node, depth int, after bool) (syntax.TraversalAction, error) {
		indent := ""
		for i := 0; i <= depth; i++ {
			indent += "  "
		}

		if sub, ok := child.AsNode(); ok {
			fmt.Fprintf(w, "%s%s\n", indent, nodeStyle.Styled(sub.String()))
			return syntax.ContinueTraversal, nil
		}

		tok, _ := child.AsToken()
		style := tokenStyle
		if tok.Kind().IsTrivia() {
			style = triviaStyle
		}
		fmt.Fprintf(w, "%s%s\n", indent, style.Styled(tok.String()))
		return syntax.ContinueTraversal, nil
	}, nil)
}

package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/SpazzPy/AnalizadorSemantico/lexer"
	"github.com/SpazzPy/AnalizadorSemantico/parser"
	"github.com/SpazzPy/AnalizadorSemantico/semantics"
)

const PROMPT = `>>>`

func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}
		line := scanner.Text()
		l := lexer.NewLexer("", line)
		p := parser.NewParser(l, "")
		program := p.Parse()
		if program == nil {
			for _, err := range p.Errors {
				fmt.Fprintln(out, err)
			}
			continue
		}
		if err := semantics.Analyze(program); err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		io.WriteString(out, "ok\n")
	}
}

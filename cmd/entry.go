package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SpazzPy/AnalizadorSemantico/lexer"
	"github.com/SpazzPy/AnalizadorSemantico/parser"
	"github.com/SpazzPy/AnalizadorSemantico/repl"
	"github.com/SpazzPy/AnalizadorSemantico/semantics"
)

type (
	CommandFunc func(args []string)

	FlagInfo struct {
		Name        string
		Description string
	}

	CommandInfo struct {
		Description string
		Function    CommandFunc
		Flags       []FlagInfo
	}
)

var commands map[string]CommandInfo

func init() {
	commands = map[string]CommandInfo{
		"check": {
			Description: "Takes the filepath of a program, and runs the semantic analysis over it",
			Function:    Check,
			Flags: []FlagInfo{
				{
					Name:        "-f",
					Description: "program file path",
				},
			},
		},
		"repl": {
			Description: "Starts an interactive session, analyzing one line at a time",
			Function:    Repl,
			Flags:       []FlagInfo{},
		},
		"help": {
			Description: "Prints the usage of all commands",
			Function:    Help,
			Flags:       []FlagInfo{},
		},
	}
}

func Help(args []string) {
	printResult := "\n\033[1;35mSupported Commands:\033[0m\n\n"

	for name, cmd := range commands {
		printResult += fmt.Sprintf("  \033[1;36m%v\033[0m\n", name)
		printResult += fmt.Sprintf("    \033[1;37mDescription:\033[0m \033[0;37m%v\033[0m\n", cmd.Description)

		if len(cmd.Flags) > 0 {
			printResult += "    \033[1;37mFlags:\033[0m\n"
			for _, flag := range cmd.Flags {
				printResult += fmt.Sprintf("      \033[1;33m%v\033[0m - \033[0;37m%v\033[0m\n", flag.Name, flag.Description)
			}
		}
		printResult += "\n"
	}

	fmt.Println(printResult)
}

func Check(args []string) {
	if len(args) < 2 || args[0] != "-f" {
		fmt.Println("ERROR: provide the filepath flag -f to assign the path to it")
		return
	}

	fileTarget := args[1]
	if len(fileTarget) <= 0 {
		fmt.Println("ERROR: provide a valid filepath")
		return
	}

	osPath, _ := os.Getwd()
	targetFile := filepath.Join(osPath, fileTarget)

	byteContent, err := os.ReadFile(targetFile)
	if err != nil {
		fmt.Println(err)
		return
	}

	lex := lexer.NewLexer(targetFile, string(byteContent))
	p := parser.NewParser(lex, fileTarget)

	program := p.Parse()
	if program == nil {
		for _, err := range p.Errors {
			fmt.Println(err)
		}
		return
	}

	if err := semantics.Analyze(program); err != nil {
		fmt.Printf("\033[1;31msemantic analysis failed:\033[0m %v\n", err)
		return
	}

	fmt.Println("\033[1;32msemantic analysis passed\033[0m")
}

func Repl(args []string) {
	repl.Start(os.Stdin, os.Stdout)
}

func Execute() {
	if len(os.Args) < 2 {
		fmt.Println("ERROR: at least provide command name to kick off the cli")
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	if _, ok := commands[name]; !ok {
		fmt.Printf("ERROR: unknown command %v, check help for manual.\n", name)
		return
	}

	commands[name].Function(args)
}

package main

import "github.com/SpazzPy/AnalizadorSemantico/cmd"

func main() {
	cmd.Execute()
}

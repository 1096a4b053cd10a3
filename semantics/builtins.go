package semantics

// names callable without a prior declaration in the source, they live in the
// module scope next to user declarations so both resolve the same way
var builtInFunctions = []string{
	"print",
	"len",
	"input",
}

// Package linker holds the phases that consume decoded object files.
//
// Only the symbol phase boundary exists so far. GenerateSymbols always
// succeeds and returns an empty table; relocation, layout and executable
// writing are not implemented.
//
//	rep, _ := object.Decode("main.o")
//	syms := linker.GenerateSymbols(rep)
//	// len(syms) == 0
package linker

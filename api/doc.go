// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package api defines the request and response documents of the
// interpreter service, and the decoding of program input.
//
// Input may be given as a string, whose characters become their code
// points, as an array of integers, or (from the command line) as a
// Starlark expression evaluating to an integer or a list of integers.
package api

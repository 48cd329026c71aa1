// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package engine implements the execution engine of the tape language.
//
// A program is a string in which eight characters are operators and every
// other character is a comment. The engine walks the text with a Cursor,
// dispatches each operator against a memory.Tape, consumes integers from
// an input queue and appends integers to an output sequence.
//
// Execution is driven by Run, which steps until the program completes,
// needs more input (STATUS_WAITING), or stops on a fatal condition
// (STATUS_STOPPED). A waiting engine resumes at the same input operator
// once Feed supplies more values and Run is called again.
package engine

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the bounded data tape of the interpreter.
//
// The tape is unbounded in both directions. Each cell holds an integer
// bounded by the configured bit width and signedness, and every mutation
// wraps back into that range.
package memory

import (
	"maps"
	"slices"
)

const (
	MIN_BITS = 1  // Narrowest supported cell.
	MAX_BITS = 32 // Widest supported cell.
)

// Cell is a snapshot of a single written tape cell.
type Cell struct {
	Position int
	Value    int64
}

// Tape is a pointer-addressed, sparse integer memory.
type Tape struct {
	bits   int
	signed bool
	min    int64
	max    int64

	position int
	cells    map[int]int64
}

// NewTape creates a tape whose cells are bits wide.
func NewTape(bits int, signed bool) (tape *Tape, err error) {
	if bits < MIN_BITS || bits > MAX_BITS {
		err = ErrBits(bits)
		return
	}

	tape = &Tape{
		bits:   bits,
		signed: signed,
		cells:  map[int]int64{},
	}

	if signed {
		tape.min = -(int64(1) << (bits - 1))
		tape.max = (int64(1) << (bits - 1)) - 1
	} else {
		tape.min = 0
		tape.max = (int64(1) << bits) - 1
	}

	return
}

// Bits returns the cell width.
func (tape *Tape) Bits() int {
	return tape.bits
}

// Signed returns true if cells hold two's complement style values.
func (tape *Tape) Signed() bool {
	return tape.signed
}

// Min returns the smallest storable value.
func (tape *Tape) Min() int64 {
	return tape.min
}

// Max returns the largest storable value.
func (tape *Tape) Max() int64 {
	return tape.max
}

// Position returns the current pointer position.
func (tape *Tape) Position() int {
	return tape.position
}

// Move the pointer by delta cells.
func (tape *Tape) Move(delta int) {
	tape.position += delta
}

// Forward moves the pointer one cell right.
func (tape *Tape) Forward() {
	tape.Move(1)
}

// Backward moves the pointer one cell left.
func (tape *Tape) Backward() {
	tape.Move(-1)
}

// Read returns the current cell, zero if it was never written.
func (tape *Tape) Read() int64 {
	return tape.cells[tape.position]
}

// Increment the current cell, wrapping max to min.
func (tape *Tape) Increment() {
	value := tape.Read()
	if value == tape.max {
		value = tape.min
	} else {
		value++
	}
	tape.store(value)
}

// Decrement the current cell, wrapping min to max.
func (tape *Tape) Decrement() {
	value := tape.Read()
	if value == tape.min {
		value = tape.max
	} else {
		value--
	}
	tape.store(value)
}

// Write sets the current cell to x reduced into [min, max].
//
// The result is identical to clearing the cell and then applying |x|
// increments (or decrements for negative x), computed without the loop.
func (tape *Tape) Write(x int64) {
	tape.store(tape.Reduce(x))
}

// Reduce maps x into [min, max] with the wraparound rule of the tape.
func (tape *Tape) Reduce(x int64) int64 {
	size := tape.max - tape.min + 1

	rem := (x%size - tape.min%size) % size
	if rem < 0 {
		rem += size
	}

	return tape.min + rem
}

// Reset clears every cell and rewinds the pointer to zero.
func (tape *Tape) Reset() {
	clear(tape.cells)
	tape.position = 0
}

// Cells returns the non-zero cells ordered by position.
func (tape *Tape) Cells() (cells []Cell) {
	for _, pos := range slices.Sorted(maps.Keys(tape.cells)) {
		cells = append(cells, Cell{Position: pos, Value: tape.cells[pos]})
	}

	return
}

func (tape *Tape) store(value int64) {
	if value == 0 {
		delete(tape.cells, tape.position)
		return
	}
	tape.cells[tape.position] = value
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/ezrec/bfi/memory"
)

// Signal is the outcome of dispatching a single operator.
type Signal int

const (
	SIGNAL_NONE  = Signal(0)  // Continue with the next operator.
	SIGNAL_INPUT = Signal(2)  // Input queue empty, wait for more.
	SIGNAL_FATAL = Signal(-1) // Stop.
)

// State is a snapshot of an engine's externally visible result.
type State struct {
	Config string  // Cell configuration, ie "U8" or "16".
	Status Status  // Execution status.
	Output []int64 // Output produced so far.
}

// Engine executes one program against its own tape, input and output.
type Engine struct {
	Verbose bool // If set, traces each dispatched operator.

	config string
	tape   *memory.Tape
	cursor *Cursor

	input  []int64
	output []int64

	status  Status
	err     error // Reason for STATUS_STOPPED.
	invalid error // Bracket validation result.
	steps   int
}

// New creates an engine for code, with cells bits wide.
// The input values are copied; the caller's slice is never modified.
func New(code string, input []int64, bits int, signed bool) (eng *Engine, err error) {
	tape, err := memory.NewTape(bits, signed)
	if err != nil {
		return
	}

	prefix := "U"
	if signed {
		prefix = ""
	}

	eng = &Engine{
		config:  fmt.Sprintf("%s%d", prefix, bits),
		tape:    tape,
		cursor:  NewCursor(code),
		input:   slices.Clone(input),
		status:  STATUS_INITIALIZED,
		invalid: Validate(code),
	}

	return
}

// Config returns the cell configuration string.
func (eng *Engine) Config() string {
	return eng.config
}

// Status returns the execution status.
func (eng *Engine) Status() Status {
	return eng.status
}

// Err returns the reason the engine stopped, or nil.
func (eng *Engine) Err() error {
	return eng.err
}

// Output returns a copy of the output sequence.
func (eng *Engine) Output() []int64 {
	return slices.Clone(eng.output)
}

// Pending returns the number of unconsumed input values.
func (eng *Engine) Pending() int {
	return len(eng.input)
}

// Steps returns the number of operators dispatched since the last reset.
func (eng *Engine) Steps() int {
	return eng.steps
}

// Position returns the offset of the cursor in the program text.
func (eng *Engine) Position() int {
	return eng.cursor.Position()
}

// Next advances the cursor past comments and returns the operator that
// the following Step will dispatch, or OP_EOF if none remain.
func (eng *Engine) Next() Opcode {
	return Opcode(eng.cursor.FindNextOperator())
}

// Tape returns the engine's memory.
func (eng *Engine) Tape() *memory.Tape {
	return eng.tape
}

// State returns a snapshot of config, status and output.
func (eng *Engine) State() State {
	return State{
		Config: eng.config,
		Status: eng.status,
		Output: eng.Output(),
	}
}

// Feed appends values to the input queue.
func (eng *Engine) Feed(values ...int64) {
	eng.input = append(eng.input, values...)
}

// Halt stops the engine. A nil reason is recorded as ErrHalted.
func (eng *Engine) Halt(reason error) {
	if reason == nil {
		reason = ErrHalted
	}

	eng.status = STATUS_STOPPED
	eng.err = reason

	if eng.Verbose {
		log.Debug().Int("ip", eng.cursor.Position()).Err(reason).Msg("halt")
	}
}

// Reset returns the engine to STATUS_INITIALIZED with a clean tape,
// cursor and output. The input queue is kept.
func (eng *Engine) Reset() {
	eng.tape.Reset()
	eng.cursor.Reset()
	eng.output = nil
	eng.steps = 0
	eng.err = nil
	eng.status = STATUS_INITIALIZED
}

// Begin prepares the engine for stepping, returning false if it cannot run.
//
//   - A stopped engine stays stopped.
//   - A program with unpaired brackets stops here, before any operator runs.
//   - An engine whose cursor is at the end of the program restarts from a
//     full Reset.
//   - Otherwise, execution continues from the cursor.
func (eng *Engine) Begin() bool {
	if eng.status == STATUS_STOPPED {
		return false
	}

	if eng.invalid != nil {
		eng.Halt(eng.invalid)
		return false
	}

	if eng.cursor.AtEnd() {
		eng.Reset()
	}

	eng.status = STATUS_RUNNING

	return true
}

// Run steps the engine until it completes, waits for input, or stops.
// The returned error is the stop reason, if any.
func (eng *Engine) Run() (err error) {
	if !eng.Begin() {
		return eng.err
	}

	for done := false; !done; {
		done, err = eng.Step()
	}

	return
}

// Step executes the next operator.
// done is set once the engine leaves STATUS_RUNNING.
func (eng *Engine) Step() (done bool, err error) {
	if eng.status != STATUS_RUNNING {
		done = true
		err = eng.err
		return
	}

	op := Opcode(eng.cursor.FindNextOperator())
	if op == OP_EOF {
		eng.status = STATUS_COMPLETE
		done = true
		return
	}

	if eng.Verbose {
		log.Debug().
			Int("ip", eng.cursor.Position()).
			Stringer("op", op).
			Int("ptr", eng.tape.Position()).
			Int64("cell", eng.tape.Read()).
			Msg("step")
	}

	sig, err := eng.dispatch(op)
	switch sig {
	case SIGNAL_INPUT:
		eng.status = STATUS_WAITING
		done = true
		return
	case SIGNAL_FATAL:
		eng.Halt(err)
		done = true
		return
	}

	eng.steps++
	eng.cursor.Skip(1)

	if eng.cursor.AtEnd() {
		eng.status = STATUS_COMPLETE
		done = true
	}

	return
}

func (eng *Engine) dispatch(op Opcode) (sig Signal, err error) {
	tape := eng.tape

	switch op {
	case OP_FORWARD:
		tape.Forward()
	case OP_BACKWARD:
		tape.Backward()
	case OP_INCREMENT:
		tape.Increment()
	case OP_DECREMENT:
		tape.Decrement()
	case OP_OUTPUT:
		eng.output = append(eng.output, tape.Read())
	case OP_INPUT:
		if len(eng.input) == 0 {
			sig = SIGNAL_INPUT
			return
		}
		tape.Write(eng.input[0])
		eng.input = eng.input[1:]
	case OP_LOOP_BEGIN:
		if tape.Read() == 0 {
			err = eng.jumpForward()
		}
	case OP_LOOP_END:
		if tape.Read() != 0 {
			err = eng.jumpBackward()
		}
	}

	if err != nil {
		sig = SIGNAL_FATAL
	}

	return
}

// jumpForward leaves the cursor on the ']' matching the '[' under it.
func (eng *Engine) jumpForward() (err error) {
	cur := eng.cursor
	start := cur.Position()

	depth := 0
	for cur.Skip(1) == 1 {
		switch Opcode(cur.Current()) {
		case OP_LOOP_BEGIN:
			depth++
		case OP_LOOP_END:
			if depth == 0 {
				return
			}
			depth--
		}
	}

	err = &ErrBracket{Offset: start, Err: ErrBracketUnclosed}
	return
}

// jumpBackward leaves the cursor on the '[' matching the ']' under it.
func (eng *Engine) jumpBackward() (err error) {
	cur := eng.cursor
	start := cur.Position()

	depth := 0
	for cur.Rewind(1) == 1 {
		switch Opcode(cur.Current()) {
		case OP_LOOP_END:
			depth++
		case OP_LOOP_BEGIN:
			if depth == 0 {
				return
			}
			depth--
		}
	}

	err = &ErrBracket{Offset: start, Err: ErrBracketUnopened}
	return
}

package engine

// Opcode is one of the operator characters of the language.
type Opcode byte

const (
	OP_EOF        = Opcode(0)   // End of program text.
	OP_FORWARD    = Opcode('>') // Move the tape pointer right.
	OP_BACKWARD   = Opcode('<') // Move the tape pointer left.
	OP_INCREMENT  = Opcode('+') // Increment the current cell.
	OP_DECREMENT  = Opcode('-') // Decrement the current cell.
	OP_OUTPUT     = Opcode('.') // Append the current cell to the output.
	OP_INPUT      = Opcode(',') // Replace the current cell with the next input.
	OP_LOOP_BEGIN = Opcode('[') // Skip past the matching ']' if the cell is zero.
	OP_LOOP_END   = Opcode(']') // Return after the matching '[' if the cell is non-zero.
)

// IsOperator returns true if c is one of the eight operators.
func IsOperator(c byte) bool {
	switch Opcode(c) {
	case OP_FORWARD, OP_BACKWARD,
		OP_INCREMENT, OP_DECREMENT,
		OP_OUTPUT, OP_INPUT,
		OP_LOOP_BEGIN, OP_LOOP_END:
		return true
	}
	return false
}

func (op Opcode) String() string {
	if op == OP_EOF {
		return "EOF"
	}
	if !IsOperator(byte(op)) {
		return f("0x%02x", byte(op))
	}
	return string(rune(op))
}

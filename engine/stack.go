package engine

// Stack of text offsets, used to pair loop brackets.
type Stack struct {
	Data []int
}

func (s *Stack) Push(offset int) {
	s.Data = append(s.Data, offset)
}

func (s *Stack) Pop() (offset int, ok bool) {
	offset, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Peek() (offset int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}

// Validate checks that every loop bracket in text has a partner.
// The first offending offset is reported in an *ErrBracket.
func Validate(text string) (err error) {
	var stack Stack

	for n := range len(text) {
		switch Opcode(text[n]) {
		case OP_LOOP_BEGIN:
			stack.Push(n)
		case OP_LOOP_END:
			if _, ok := stack.Pop(); !ok {
				err = &ErrBracket{Offset: n, Err: ErrBracketUnopened}
				return
			}
		}
	}

	if offset, ok := stack.Peek(); ok {
		// Report the innermost unclosed loop.
		err = &ErrBracket{Offset: offset, Err: ErrBracketUnclosed}
	}

	return
}

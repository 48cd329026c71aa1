package engine

// Cursor is a read position over immutable program text.
// The position is always within [0, Len()].
type Cursor struct {
	text     string
	position int
}

// NewCursor creates a cursor at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: text}
}

// Len returns the length of the text in bytes.
func (cur *Cursor) Len() int {
	return len(cur.text)
}

// Position returns the current offset.
func (cur *Cursor) Position() int {
	return cur.position
}

// AtEnd returns true once the whole text has been consumed.
func (cur *Cursor) AtEnd() bool {
	return cur.position >= len(cur.text)
}

// Current returns the character at the cursor, or OP_EOF at the end.
func (cur *Cursor) Current() byte {
	if cur.AtEnd() {
		return byte(OP_EOF)
	}
	return cur.text[cur.position]
}

// Skip moves forward up to n characters, returning the distance moved.
func (cur *Cursor) Skip(n int) int {
	p := cur.position
	cur.position = min(p+n, len(cur.text))
	return cur.position - p
}

// Rewind moves backward up to n characters, returning the distance moved.
func (cur *Cursor) Rewind(n int) int {
	p := cur.position
	cur.position = max(p-n, 0)
	return p - cur.position
}

// Reset moves the cursor back to the start of the text.
func (cur *Cursor) Reset() {
	cur.position = 0
}

// FindNextOperator advances past comment characters and returns the
// operator under the cursor, or OP_EOF if the text ran out.
func (cur *Cursor) FindNextOperator() byte {
	for !cur.AtEnd() && !IsOperator(cur.Current()) {
		cur.position++
	}
	return cur.Current()
}

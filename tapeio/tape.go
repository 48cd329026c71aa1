// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package tapeio moves engine input and output values through byte streams.
package tapeio

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"unicode/utf8"
)

// Format selects how output values are written to a stream.
type Format int

const (
	FORMAT_BYTES   = Format(iota) // Low 8 bits of each value as a raw byte.
	FORMAT_RUNES                  // Each value as a UTF-8 encoded code point.
	FORMAT_NUMBERS                // Each value as a decimal number, space separated.
)

var _format_names = map[string]Format{
	"bytes":   FORMAT_BYTES,
	"runes":   FORMAT_RUNES,
	"numbers": FORMAT_NUMBERS,
}

// ParseFormat returns the Format named by text.
func ParseFormat(text string) (format Format, err error) {
	format, ok := _format_names[text]
	if !ok {
		err = ErrFormat(text)
	}
	return
}

// Tape reads input values from Input, and writes output values to Output.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Format Format

	reader  *bufio.Reader
	written int  // Output values already sent.
	started bool // Anything has been written to Output.
}

// Rewind forgets how much output has been sent.
func (tc *Tape) Rewind() {
	tc.written = 0
}

// Receive returns an iterator that yields the code point of each
// character of the input stream, up to and including the next newline.
// The iteration ends early at the end of the stream.
func (tc *Tape) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.reader == nil {
			tc.reader = bufio.NewReader(tc.Input)
		}
		for {
			r, _, err := tc.reader.ReadRune()
			if err != nil {
				return
			}
			if !yield(int64(r)) {
				return
			}
			if r == '\n' {
				return
			}
		}
	}
}

// ReceiveLine collects the next line of input values.
// io.EOF is returned once the stream has no more values.
func (tc *Tape) ReceiveLine() (values []int64, err error) {
	for value := range tc.Receive() {
		values = append(values, value)
	}

	if len(values) == 0 {
		err = io.EOF
	}

	return
}

// Send writes output values in the configured format.
func (tc *Tape) Send(values ...int64) (err error) {
	var buf []byte

	for _, value := range values {
		switch tc.Format {
		case FORMAT_BYTES:
			buf = append(buf, byte(value))
		case FORMAT_RUNES:
			r := rune(value)
			if int64(r) != value || !utf8.ValidRune(r) {
				r = utf8.RuneError
			}
			buf = utf8.AppendRune(buf, r)
		case FORMAT_NUMBERS:
			if tc.started {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, value, 10)
		}
		tc.written++
		tc.started = true
	}

	if len(buf) > 0 {
		_, err = tc.Output.Write(buf)
	}

	return
}

// Sync sends the part of output that has not been sent yet.
// A shorter output than already sent means the program restarted, so
// it is sent again from the start.
func (tc *Tape) Sync(output []int64) (err error) {
	if len(output) < tc.written {
		tc.Rewind()
	}

	return tc.Send(output[tc.written:]...)
}

// Finish terminates numeric output with a newline.
func (tc *Tape) Finish() (err error) {
	if tc.Format == FORMAT_NUMBERS && tc.started {
		_, err = tc.Output.Write([]byte{'\n'})
	}
	return
}

package api

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var _expr_predeclared = starlark.StringDict{
	"NL":    starlark.MakeInt(10),
	"codes": starlark.NewBuiltin("codes", builtinCodes),
}

// builtinCodes implements codes(text), the list of code points of text.
func builtinCodes(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &text); err != nil {
		return nil, err
	}

	var elems []starlark.Value
	for _, value := range Codes(text) {
		elems = append(elems, starlark.MakeInt64(value))
	}

	return starlark.NewList(elems), nil
}

// EvalInput evaluates a Starlark expression into input values.
// The expression must yield an int, or a list or tuple of ints.
//
//	EvalInput("[1, 2] + codes('hi') + [NL]") // [1 2 104 105 10]
func EvalInput(expr string) (values []int64, err error) {
	thread := starlark.Thread{Name: "input"}
	opts := syntax.FileOptions{}

	prog := "rc = " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "input", prog, _expr_predeclared)
	if err != nil {
		err = errors.Join(ErrInputInvalid, err)
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrExpressionResult
		return
	}

	switch rc := rc.(type) {
	case starlark.Int:
		var value int64
		value, err = toInt64(rc)
		if err != nil {
			return
		}
		values = []int64{value}
	case starlark.String:
		values = Codes(string(rc))
	case starlark.Indexable:
		values = make([]int64, 0, rc.Len())
		for n := range rc.Len() {
			item, ok := rc.Index(n).(starlark.Int)
			if !ok {
				err = &ErrInputValue{Index: n, Value: rc.Index(n).String(), Err: ErrInputNotInteger}
				return
			}
			var value int64
			value, err = toInt64(item)
			if err != nil {
				err = &ErrInputValue{Index: n, Value: item.String(), Err: err}
				return
			}
			values = append(values, value)
		}
	default:
		err = ErrExpressionResult
	}

	return
}

func toInt64(value starlark.Int) (result int64, err error) {
	result, ok := value.Int64()
	if !ok {
		err = ErrInputNotInteger
	}
	return
}

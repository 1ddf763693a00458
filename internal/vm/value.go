package vm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/slatelang/slate/internal/bytecode"
)

// ValueType identifies the type of value stored in the Value struct
type ValueType uint8

const (
	ValNil ValueType = iota
	ValInt
	ValFloat
	ValBool
	ValObj // Heap object (Str, List, Function)
)

// Value is a stack-allocated tagged union. Small primitives (Int, Float,
// Bool, Nil) live entirely in Data; Obj holds heap values.
type Value struct {
	Type ValueType
	Data uint64 // int64 bits, float64 bits, or bool (0/1)
	Obj  Object
}

// Object is a heap-allocated runtime value.
type Object interface {
	Kind() string
	Inspect() string
}

// StringObject holds an immutable string value.
type StringObject struct {
	Value string
}

func (s *StringObject) Kind() string    { return "Str" }
func (s *StringObject) Inspect() string { return "'" + s.Value + "'" }

// ListObject holds an ordered, mutable sequence of values.
type ListObject struct {
	Items []Value
}

func (l *ListObject) Kind() string { return "List" }
func (l *ListObject) Inspect() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FunctionObject wraps a compiled function body as a first-class value.
type FunctionObject struct {
	Fn *bytecode.Function
}

func (f *FunctionObject) Kind() string    { return "Function" }
func (f *FunctionObject) Inspect() string { return fmt.Sprintf("<function %s>", f.Fn.Name) }

// Constructors

func NilVal() Value {
	return Value{Type: ValNil}
}

func IntVal(v int64) Value {
	return Value{Type: ValInt, Data: uint64(v)}
}

func FloatVal(v float64) Value {
	return Value{Type: ValFloat, Data: math.Float64bits(v)}
}

func BoolVal(v bool) Value {
	var data uint64
	if v {
		data = 1
	}
	return Value{Type: ValBool, Data: data}
}

func StrVal(s string) Value {
	return Value{Type: ValObj, Obj: &StringObject{Value: s}}
}

func ListVal(items []Value) Value {
	return Value{Type: ValObj, Obj: &ListObject{Items: items}}
}

func FuncVal(fn *bytecode.Function) Value {
	return Value{Type: ValObj, Obj: &FunctionObject{Fn: fn}}
}

// Accessors

func (v Value) AsInt() int64 {
	return int64(v.Data)
}

func (v Value) AsFloat() float64 {
	return math.Float64frombits(v.Data)
}

func (v Value) AsBool() bool {
	return v.Data == 1
}

func (v Value) AsString() (*StringObject, bool) {
	s, ok := v.Obj.(*StringObject)
	return s, ok
}

func (v Value) AsList() (*ListObject, bool) {
	l, ok := v.Obj.(*ListObject)
	return l, ok
}

func (v Value) AsFunction() (*FunctionObject, bool) {
	f, ok := v.Obj.(*FunctionObject)
	return f, ok
}

// Type checking helpers

func (v Value) IsInt() bool   { return v.Type == ValInt }
func (v Value) IsFloat() bool { return v.Type == ValFloat }
func (v Value) IsBool() bool  { return v.Type == ValBool }
func (v Value) IsNil() bool   { return v.Type == ValNil }
func (v Value) IsStr() bool   { _, ok := v.AsString(); return ok }
func (v Value) IsList() bool  { _, ok := v.AsList(); return ok }

// TypeName returns the user-facing type name for error messages.
func (v Value) TypeName() string {
	switch v.Type {
	case ValNil:
		return "None"
	case ValInt:
		return "Int"
	case ValFloat:
		return "Float"
	case ValBool:
		return "Bool"
	case ValObj:
		return v.Obj.Kind()
	default:
		return "Unknown"
	}
}

// Truthy reports the boolean interpretation of a value: zero numbers,
// empty strings, empty lists, None and False are falsy; everything else
// is truthy.
func (v Value) Truthy() bool {
	switch v.Type {
	case ValNil:
		return false
	case ValInt:
		return v.AsInt() != 0
	case ValFloat:
		return v.AsFloat() != 0
	case ValBool:
		return v.AsBool()
	case ValObj:
		switch o := v.Obj.(type) {
		case *StringObject:
			return len(o.Value) > 0
		case *ListObject:
			return len(o.Items) > 0
		default:
			return true
		}
	default:
		return false
	}
}

// Equals compares two values. Ints and Floats compare numerically across
// type; everything else requires matching types.
func (v Value) Equals(other Value) bool {
	if v.Type != other.Type {
		if v.Type == ValInt && other.Type == ValFloat {
			return float64(v.AsInt()) == other.AsFloat()
		}
		if v.Type == ValFloat && other.Type == ValInt {
			return v.AsFloat() == float64(other.AsInt())
		}
		return false
	}

	switch v.Type {
	case ValNil:
		return true
	case ValInt, ValFloat, ValBool:
		return v.Data == other.Data
	case ValObj:
		switch a := v.Obj.(type) {
		case *StringObject:
			b, ok := other.AsString()
			return ok && a.Value == b.Value
		case *ListObject:
			b, ok := other.AsList()
			if !ok || len(a.Items) != len(b.Items) {
				return false
			}
			for i := range a.Items {
				if !a.Items[i].Equals(b.Items[i]) {
					return false
				}
			}
			return true
		default:
			return v.Obj == other.Obj
		}
	default:
		return false
	}
}

// Inspect renders a value the way it appears inside a list: strings keep
// their quotes.
func (v Value) Inspect() string {
	switch v.Type {
	case ValNil:
		return "None"
	case ValInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case ValFloat:
		return strconv.FormatFloat(v.AsFloat(), 'g', -1, 64)
	case ValBool:
		if v.AsBool() {
			return "True"
		}
		return "False"
	case ValObj:
		return v.Obj.Inspect()
	default:
		return "Unknown"
	}
}

// Display renders a value for print output: like Inspect, except a
// top-level string prints its raw characters without quotes.
func (v Value) Display() string {
	if s, ok := v.AsString(); ok {
		return s.Value
	}
	return v.Inspect()
}

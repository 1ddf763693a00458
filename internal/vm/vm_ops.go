package vm

import (
	"math"

	"github.com/slatelang/slate/internal/bytecode"
)

// binaryOp performs binary arithmetic.
func (vm *VM) binaryOp(op bytecode.Opcode) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}

	// Fast path for integers. Division truncates toward zero.
	if a.IsInt() && b.IsInt() {
		aVal := a.AsInt()
		bVal := b.AsInt()
		var result int64

		switch op {
		case bytecode.OP_ADD:
			result = aVal + bVal
		case bytecode.OP_SUB:
			result = aVal - bVal
		case bytecode.OP_MUL:
			result = aVal * bVal
		case bytecode.OP_DIV:
			if bVal == 0 {
				return vm.runtimeError("division by zero")
			}
			result = aVal / bVal
		case bytecode.OP_MOD:
			if bVal == 0 {
				return vm.runtimeError("modulo by zero")
			}
			result = aVal % bVal
		}
		return vm.push(IntVal(result))
	}

	// Mixed numeric operands promote to float.
	if aVal, bVal, ok := numericPair(a, b); ok {
		var result float64

		switch op {
		case bytecode.OP_ADD:
			result = aVal + bVal
		case bytecode.OP_SUB:
			result = aVal - bVal
		case bytecode.OP_MUL:
			result = aVal * bVal
		case bytecode.OP_DIV:
			if bVal == 0 {
				return vm.runtimeError("division by zero")
			}
			result = aVal / bVal
		case bytecode.OP_MOD:
			if bVal == 0 {
				return vm.runtimeError("modulo by zero")
			}
			result = math.Mod(aVal, bVal)
		}
		return vm.push(FloatVal(result))
	}

	// Strings concatenate with +.
	if op == bytecode.OP_ADD {
		if aStr, ok := a.AsString(); ok {
			if bStr, ok := b.AsString(); ok {
				return vm.push(StrVal(aStr.Value + bStr.Value))
			}
		}
	}

	return vm.runtimeError("incompatible operand types: %s %s %s", a.TypeName(), opSymbol(op), b.TypeName())
}

func (vm *VM) unaryOp(op bytecode.Opcode) error {
	v, err := vm.pop()
	if err != nil {
		return err
	}

	switch op {
	case bytecode.OP_NOT:
		return vm.push(BoolVal(!v.Truthy()))
	case bytecode.OP_NEGATE:
		if v.IsInt() {
			return vm.push(IntVal(-v.AsInt()))
		}
		if v.IsFloat() {
			return vm.push(FloatVal(-v.AsFloat()))
		}
		return vm.runtimeError("incompatible operand type for unary -: %s", v.TypeName())
	case bytecode.OP_POS:
		if v.IsInt() || v.IsFloat() {
			return vm.push(v)
		}
		return vm.runtimeError("incompatible operand type for unary +: %s", v.TypeName())
	}
	return nil
}

// comparisonOp performs equality and ordering comparisons; the result
// is always a Bool.
func (vm *VM) comparisonOp(op bytecode.Opcode) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}

	switch op {
	case bytecode.OP_EQ:
		return vm.push(BoolVal(a.Equals(b)))
	case bytecode.OP_NEQ:
		return vm.push(BoolVal(!a.Equals(b)))
	}

	// Ordering: numbers compare numerically, strings lexicographically.
	if aVal, bVal, ok := numericPair(a, b); ok {
		var result bool
		switch op {
		case bytecode.OP_LT:
			result = aVal < bVal
		case bytecode.OP_GT:
			result = aVal > bVal
		case bytecode.OP_LE:
			result = aVal <= bVal
		case bytecode.OP_GE:
			result = aVal >= bVal
		}
		return vm.push(BoolVal(result))
	}

	if aStr, ok := a.AsString(); ok {
		if bStr, ok := b.AsString(); ok {
			var result bool
			switch op {
			case bytecode.OP_LT:
				result = aStr.Value < bStr.Value
			case bytecode.OP_GT:
				result = aStr.Value > bStr.Value
			case bytecode.OP_LE:
				result = aStr.Value <= bStr.Value
			case bytecode.OP_GE:
				result = aStr.Value >= bStr.Value
			}
			return vm.push(BoolVal(result))
		}
	}

	return vm.runtimeError("incompatible operand types: %s %s %s", a.TypeName(), opSymbol(op), b.TypeName())
}

// logicalOp implements operand-valued and/or: the result is one of the
// two operands, picked by the truthiness of the left one.
func (vm *VM) logicalOp(op bytecode.Opcode) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}

	if op == bytecode.OP_AND {
		if !a.Truthy() {
			return vm.push(a)
		}
		return vm.push(b)
	}
	if a.Truthy() {
		return vm.push(a)
	}
	return vm.push(b)
}

func (vm *VM) buildList(count int) error {
	items := make([]Value, count)
	for i := count - 1; i >= 0; i-- {
		v, err := vm.pop()
		if err != nil {
			return err
		}
		items[i] = v
	}
	return vm.push(ListVal(items))
}

// lengthOp replaces the top of the stack with its element count.
func (vm *VM) lengthOp() error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	if l, ok := v.AsList(); ok {
		return vm.push(IntVal(int64(len(l.Items))))
	}
	if s, ok := v.AsString(); ok {
		return vm.push(IntVal(int64(len([]rune(s.Value)))))
	}
	return vm.runtimeError("object of type %s has no length", v.TypeName())
}

// indexOp pops an index and a container and pushes the element. String
// indexing yields a one-character string.
func (vm *VM) indexOp() error {
	index, err := vm.pop()
	if err != nil {
		return err
	}
	container, err := vm.pop()
	if err != nil {
		return err
	}

	if !index.IsInt() {
		return vm.runtimeError("index must be Int, got %s", index.TypeName())
	}
	i := index.AsInt()

	if l, ok := container.AsList(); ok {
		if i < 0 || i >= int64(len(l.Items)) {
			return vm.runtimeError("list index out of range")
		}
		return vm.push(l.Items[i])
	}
	if s, ok := container.AsString(); ok {
		runes := []rune(s.Value)
		if i < 0 || i >= int64(len(runes)) {
			return vm.runtimeError("string index out of range")
		}
		return vm.push(StrVal(string(runes[i])))
	}

	return vm.runtimeError("type %s is not indexable", container.TypeName())
}

// numericPair widens two numeric values to float64, reporting whether
// both were numeric.
func numericPair(a, b Value) (float64, float64, bool) {
	var aVal, bVal float64
	switch {
	case a.IsInt():
		aVal = float64(a.AsInt())
	case a.IsFloat():
		aVal = a.AsFloat()
	default:
		return 0, 0, false
	}
	switch {
	case b.IsInt():
		bVal = float64(b.AsInt())
	case b.IsFloat():
		bVal = b.AsFloat()
	default:
		return 0, 0, false
	}
	return aVal, bVal, true
}

func opSymbol(op bytecode.Opcode) string {
	switch op {
	case bytecode.OP_ADD:
		return "+"
	case bytecode.OP_SUB:
		return "-"
	case bytecode.OP_MUL:
		return "*"
	case bytecode.OP_DIV:
		return "/"
	case bytecode.OP_MOD:
		return "%"
	case bytecode.OP_LT:
		return "<"
	case bytecode.OP_GT:
		return ">"
	case bytecode.OP_LE:
		return "<="
	case bytecode.OP_GE:
		return ">="
	default:
		return op.String()
	}
}

package symbols

import "testing"

func TestDefineAndResolve(t *testing.T) {
	global := NewScope()
	global.Define("x", KindGlobal)

	sym, ok := global.Resolve("x")
	if !ok {
		t.Fatal("x not resolved in global scope")
	}
	if sym.Kind != KindGlobal {
		t.Errorf("wrong kind: %v", sym.Kind)
	}
	if _, ok := global.Resolve("y"); ok {
		t.Error("y should not resolve")
	}
}

func TestChildScopeChain(t *testing.T) {
	global := NewScope()
	global.Define("g", KindGlobal)

	fn := NewChildScope(global)
	fn.Define("p", KindParam)

	if _, ok := fn.Resolve("p"); !ok {
		t.Error("param not resolved in function scope")
	}
	if _, ok := fn.Resolve("g"); !ok {
		t.Error("global not resolved through parent chain")
	}
	if _, ok := global.Resolve("p"); ok {
		t.Error("param leaked into global scope")
	}
}

func TestShadowing(t *testing.T) {
	global := NewScope()
	global.Define("x", KindGlobal)

	fn := NewChildScope(global)
	fn.Define("x", KindLocal)

	sym, _ := fn.Resolve("x")
	if sym.Kind != KindLocal {
		t.Errorf("inner x should shadow global, got kind %v", sym.Kind)
	}
	if _, ok := fn.ResolveLocal("x"); !ok {
		t.Error("ResolveLocal should find the shadow")
	}

	outer, _ := global.Resolve("x")
	if outer.Kind != KindGlobal {
		t.Error("global binding mutated by shadow")
	}
}

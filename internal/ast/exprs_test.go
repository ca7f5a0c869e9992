package ast

import (
	"testing"

	"rig/internal/source"
)

func TestExprsAccessorsCheckKind(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	sp := source.LineSpan(0, 1, 0, 1)
	name := b.Strings.Intern("a")

	v := b.Exprs.NewVariable(sp, name)
	n := b.Exprs.NewInteger(sp, 3)

	if d, ok := b.Exprs.Variable(v); !ok || b.Name(d.Name) != "a" {
		t.Fatalf("Variable(%d) = %+v, %v", v, d, ok)
	}
	if _, ok := b.Exprs.Integer(v); ok {
		t.Fatal("Integer accessor accepted a variable")
	}
	if d, ok := b.Exprs.Integer(n); !ok || d.Value != 3 {
		t.Fatalf("Integer(%d) = %+v, %v", n, d, ok)
	}
	if b.Exprs.Get(NoExprID) != nil {
		t.Fatal("NoExprID must resolve to nil")
	}
	if b.Exprs.Get(ExprID(99)) != nil {
		t.Fatal("out of range id must resolve to nil")
	}
}

func TestExprsChildrenAndWalk(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	sp := source.LineSpan(0, 1, 0, 1)
	a := b.Exprs.NewVariable(sp, b.Strings.Intern("a"))
	get := b.Exprs.NewGet(sp, a, b.Strings.Intern("f"))
	one := b.Exprs.NewInteger(sp, 1)
	str := b.Exprs.NewString(sp, b.Strings.Intern("x"))
	call := b.Exprs.NewCall(sp, get, []ExprID{one, str})
	neg := b.Exprs.NewUnary(sp, UnaryNeg, call)

	if got := b.Exprs.Children(call); len(got) != 3 || got[0] != get || got[1] != one || got[2] != str {
		t.Fatalf("Children(call) = %v", got)
	}

	var order []ExprKind
	b.Exprs.Walk(neg, func(_ ExprID, e *Expr) bool {
		order = append(order, e.Kind)
		return true
	})
	want := []ExprKind{ExprUnary, ExprCall, ExprGet, ExprVariable, ExprInteger, ExprString}
	if len(order) != len(want) {
		t.Fatalf("walk order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("walk order = %v, want %v", order, want)
		}
	}

	skipped := 0
	b.Exprs.Walk(neg, func(_ ExprID, e *Expr) bool {
		skipped++
		return e.Kind != ExprCall
	})
	if skipped != 2 {
		t.Fatalf("walk with pruning visited %d nodes, want 2", skipped)
	}
}

func TestNewCallCopiesArgs(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	sp := source.LineSpan(0, 1, 0, 1)
	callee := b.Exprs.NewVariable(sp, b.Strings.Intern("f"))
	args := []ExprID{b.Exprs.NewNull(sp)}
	call := b.Exprs.NewCall(sp, callee, args)
	args[0] = NoExprID
	if d, _ := b.Exprs.Call(call); d.Args[0] == NoExprID {
		t.Fatal("call payload aliases the caller's slice")
	}
}

func TestOperatorStrings(t *testing.T) {
	if BinaryShl.String() != "<<" || BinaryMod.String() != "%" {
		t.Error("binary operator text")
	}
	if LogicalGreaterEq.String() != ">=" || !LogicalNotEq.IsComparison() || LogicalAnd.IsComparison() {
		t.Error("logical operator table")
	}
	if UnaryNot.String() != "!" {
		t.Error("unary operator text")
	}
	if ExprPath.String() != "Path" || ExprKind(200).String() != "Unknown" {
		t.Error("kind names")
	}
}

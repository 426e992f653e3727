package engine

import "testing"

func TestBinaryString(t *testing.T) {
	cases := map[Binary]string{
		Add: "add", Sub: "sub", Mul: "mul", Div: "div", Mod: "mod", Pow: "pow", Min: "min", Max: "max",
		And: "and", Or: "or", Xor: "xor",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Binary(%d).String() = %q, want %q", op, got, want)
		}
	}
	if got := Binary(999).String(); got != "binary(unknown)" {
		t.Errorf("unknown Binary.String() = %q", got)
	}
}

func TestUnaryString(t *testing.T) {
	cases := map[Unary]string{
		Neg: "neg", Abs: "abs", Floor: "floor", Round: "round", Ceil: "ceil",
		Cos: "cos", Cosh: "cosh", Sin: "sin", Sinh: "sinh", Tan: "tan", Tanh: "tanh",
		Exp: "exp", Log: "log", Log10: "log10", Not: "not",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Unary(%d).String() = %q, want %q", op, got, want)
		}
	}
	if got := Unary(999).String(); got != "unary(unknown)" {
		t.Errorf("unknown Unary.String() = %q", got)
	}
}

func TestComparisonString(t *testing.T) {
	if got := Ge.String(); got != "ge" {
		t.Errorf("Ge.String() = %q", got)
	}
}

func TestAssociativeSkipsMissing(t *testing.T) {
	if !Nansum.skipsMissing() {
		t.Error("Nansum should skip missing values")
	}
	if !Nanmean.skipsMissing() {
		t.Error("Nanmean should skip missing values")
	}
	if Sum.skipsMissing() {
		t.Error("Sum should not skip missing values")
	}
}

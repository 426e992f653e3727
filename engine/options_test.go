package engine

import "testing"

func TestNilOptionsAreSafe(t *testing.T) {
	var o *Options
	if o.dest() != nil {
		t.Error("nil Options.dest() should be nil")
	}
	if o.mask() != nil {
		t.Error("nil Options.mask() should be nil")
	}
	if o.deterministic() {
		t.Error("nil Options.deterministic() should be false")
	}
}

func TestOptionsAccessorsReadFields(t *testing.T) {
	o := &Options{Deterministic: true}
	if !o.deterministic() {
		t.Error("Options.deterministic() should reflect the field")
	}
}

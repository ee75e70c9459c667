package consensus

import (
	"testing"
)

func TestWorkForDecreasesAsTargetGrows(t *testing.T) {
	hard := WorkFor(0x03000001)  // mantissa 1, exponent 3: tiny target
	easy := WorkFor(0x04000001)  // mantissa 1, exponent 4: 256x larger target

	if hard.Cmp(easy) <= 0 {
		t.Fatalf("a smaller target should yield more work: hard=%s easy=%s", hard, easy)
	}
}

func TestWorkForIsPositive(t *testing.T) {
	w := WorkFor(0x1e0fffff)
	if w.Sign() <= 0 {
		t.Fatalf("expected positive work for genesis bits, got %s", w)
	}
}

package crypto

import (
	"crypto/sha256"
	"testing"
)

func digest(s string) []byte {
	first := sha256.Sum256([]byte(s))
	second := sha256.Sum256(first[:])
	return second[:]
}

func TestSignVerifyRoundTrip(t *testing.T) {
	priv, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	pub := CompressPubkey(&priv.PublicKey)
	d := digest("mint pixel at (3,4)")

	sig, err := Sign(priv, d)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != SignatureSize {
		t.Fatalf("expected %d-byte signature, got %d", SignatureSize, len(sig))
	}
	if !Verify(pub, d, sig) {
		t.Fatalf("Verify rejected a valid signature")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	priv, _ := GenerateKey()
	other, _ := GenerateKey()
	pub := CompressPubkey(&other.PublicKey)
	d := digest("mint pixel at (3,4)")

	sig, err := Sign(priv, d)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if Verify(pub, d, sig) {
		t.Fatalf("Verify accepted a signature from the wrong key")
	}
}

func TestVerifyRejectsTamperedDigest(t *testing.T) {
	priv, _ := GenerateKey()
	pub := CompressPubkey(&priv.PublicKey)
	d := digest("mint pixel at (3,4)")
	tampered := digest("mint pixel at (3,5)")

	sig, err := Sign(priv, d)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if Verify(pub, tampered, sig) {
		t.Fatalf("Verify accepted a signature over a different digest")
	}
}

func TestVerifyRejectsMalformedSignature(t *testing.T) {
	priv, _ := GenerateKey()
	pub := CompressPubkey(&priv.PublicKey)
	d := digest("mint pixel at (3,4)")

	if Verify(pub, d, []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("Verify accepted a short signature")
	}
	if Verify(nil, d, make([]byte, SignatureSize)) {
		t.Fatalf("Verify accepted an empty public key")
	}
}

package core

import "testing"

func TestEscapeRegistryAllowsRecordedTriple(t *testing.T) {
	reg := NewEscapeRegistry([]EscapeEntry{
		{Hash: "deadbeef", Kind: KindContentPost, Error: string(ErrContentLimit)},
	})
	if !reg.Allow("deadbeef", KindContentPost, ErrContentLimit) {
		t.Fatal("expected the recorded triple to be allowed")
	}
}

func TestEscapeRegistryRejectsUnrecordedVariants(t *testing.T) {
	reg := NewEscapeRegistry([]EscapeEntry{
		{Hash: "deadbeef", Kind: KindContentPost, Error: string(ErrContentLimit)},
	})
	if reg.Allow("deadbeef", KindContentPost, ErrPostEditLimit) {
		t.Fatal("a different error kind on the same hash must not be escaped")
	}
	if reg.Allow("cafef00d", KindContentPost, ErrContentLimit) {
		t.Fatal("a different hash must not be escaped")
	}
	if reg.Allow("deadbeef", KindContentComment, ErrContentLimit) {
		t.Fatal("a different kind must not be escaped")
	}
}

func TestEscapeRegistryNilAndNilErrorSafe(t *testing.T) {
	var reg *EscapeRegistry
	if reg.Allow("deadbeef", KindContentPost, ErrContentLimit) {
		t.Fatal("a nil registry must never allow")
	}
	full := NewEscapeRegistry([]EscapeEntry{{Hash: "deadbeef", Kind: KindContentPost, Error: string(ErrContentLimit)}})
	if full.Allow("deadbeef", KindContentPost, nil) {
		t.Fatal("a nil error is already Success and must not be reported as escaped")
	}
}

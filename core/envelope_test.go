package core

import "testing"

func TestParseContentPostDefaultsRootToOwnHash(t *testing.T) {
	env := &Envelope{
		Hash: "abc123", Kind: KindContentPost, Time: 10,
		Fields: map[string]string{"address": "Paddr", "caption": "hi"},
	}
	tx, err := Parse(env)
	if err != nil {
		t.Fatal(err)
	}
	if tx.S2 != "abc123" {
		t.Fatalf("want root_tx_hash defaulted to own hash, got %q", tx.S2)
	}
	if tx.Payload == nil || tx.Payload.S2 != "hi" {
		t.Fatalf("caption not decoded: %+v", tx.Payload)
	}
}

func TestParseContentPostEditKeepsExplicitRoot(t *testing.T) {
	env := &Envelope{
		Hash: "editHash", Kind: KindContentPost, Time: 20,
		Fields: map[string]string{"address": "Paddr", "root_tx_hash": "rootHash"},
	}
	tx, err := Parse(env)
	if err != nil {
		t.Fatal(err)
	}
	if tx.S2 != "rootHash" {
		t.Fatalf("want rootHash, got %q", tx.S2)
	}
}

func TestParseScoreContentRejectsMalformedValue(t *testing.T) {
	env := &Envelope{
		Hash: "h1", Kind: KindActionScoreContent, Time: 10,
		Fields: map[string]string{"address": "Paddr", "target_hash": "t1", "value": "not-a-number"},
	}
	if _, err := Parse(env); err == nil {
		t.Fatal("expected a malformed-value error")
	}
}

func TestParseModerationDecodesAllThreeSlots(t *testing.T) {
	env := &Envelope{
		Hash: "h1", Kind: KindModerationFlag, Time: 10,
		Fields: map[string]string{"address": "Paddr", "target_hash": "t1", "flag_hash": "f1", "request_id": "r1"},
	}
	tx, err := Parse(env)
	if err != nil {
		t.Fatal(err)
	}
	if tx.S2 != "t1" || tx.S3 != "f1" || tx.S4 != "r1" {
		t.Fatalf("moderation slots not decoded correctly: %+v", tx)
	}
}

func TestParseUnsupportedKind(t *testing.T) {
	env := &Envelope{Hash: "h1", Kind: Kind(424242), Time: 10, Fields: map[string]string{}}
	if _, err := Parse(env); err == nil {
		t.Fatal("expected an unsupported-kind error")
	}
}

func TestParseNilEnvelope(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatal("expected a malformed error for a nil envelope")
	}
}

package memrepo

import (
	"crypto/sha256"
	"fmt"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"

	"socialconsensus/core"
)

// NewFixtureAddress returns a realistic base58check-shaped address, in
// the style of the Bitcoin-family encoding this chain forked from. It is
// not a valid signature-bearing address, only a shape fixture tests can
// key state off of.
func NewFixtureAddress(seed string) string {
	sum := sha256.Sum256([]byte("fixture-address:" + seed))
	return "P" + base58.Encode(sum[:20])
}

// NewFixtureRequestID returns a synthetic request id for
// MODERATOR_REGISTER / MODERATOR_REQUEST fixtures.
func NewFixtureRequestID() string {
	return uuid.NewString()
}

// NewFixtureTransaction builds a Transaction for kind carrying only the
// address, time and height given, and computes its canonical hash. It
// sets no slot field and no payload: callers set those on the returned
// record and call FillHash to recompute the hash in place.
func NewFixtureTransaction(kind core.Kind, address string, at int64, height core.Height) *core.Transaction {
	tx := &core.Transaction{
		Kind:    kind,
		Address: address,
		Time:    at,
		Height:  height,
	}
	FillHash(tx)
	return tx
}

// FillHash (re)computes tx.Hash from its current fields, panicking on an
// unsupported kind since fixture construction is a programmer error path,
// never a runtime one. A first version (S2 equal to the old hash) stays a
// first version: its S2 is set to the new hash as well.
func FillHash(tx *core.Transaction) {
	firstVersion := tx.S2 != "" && tx.S2 == tx.Hash
	hash, err := core.ComputeHash(tx)
	if err != nil {
		panic(fmt.Sprintf("memrepo: fixture hash: %v", err))
	}
	tx.Hash = hash
	if firstVersion {
		tx.S2 = hash
	}
}

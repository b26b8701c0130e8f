package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// canonicalBytes builds the kind-specific canonical byte string a
// Transaction's hash is derived from. It never includes signatures, and
// for editable kinds it excludes root_tx_hash when the record is the
// first version (root_tx_hash == hash), per §4.1.
func canonicalBytes(t *Transaction) ([]byte, error) {
	var b strings.Builder

	writeSlot := func(s string) {
		b.WriteString(s)
		b.WriteByte(0)
	}
	writePayload := func(p *Payload) {
		if p == nil {
			p = &Payload{}
		}
		writeSlot(p.S1)
		writeSlot(p.S2)
		writeSlot(p.S3)
		writeSlot(p.S4)
		writeSlot(p.S5)
		writeSlot(p.S6)
		writeSlot(p.S7)
		writeSlot(strconv.FormatInt(p.I1, 10))
	}
	rootOrEmpty := func() string {
		if t.S2 == t.Hash {
			return ""
		}
		return t.S2
	}

	b.WriteString(t.Kind.String())
	b.WriteByte(0)
	writeSlot(t.Address)
	writeSlot(strconv.FormatInt(t.Time, 10))

	switch t.Kind {
	case KindAccountUser, KindAccountDelete:
		writeSlot(t.S2) // referrer
		writePayload(t.Payload)

	case KindContentPost, KindContentVideo:
		writeSlot(rootOrEmpty())
		writeSlot(t.S3) // relay-tx-hash
		writePayload(t.Payload)

	case KindContentComment, KindContentCommentEdit, KindContentCommentDelete:
		writeSlot(rootOrEmpty())
		writeSlot(t.S3) // post-tx-hash
		writeSlot(t.S4) // parent-comment-hash
		writeSlot(t.S5) // answered-comment-hash
		if t.Kind == KindContentCommentDelete {
			writeSlot("") // canonical empty message, see DESIGN.md Open Question (a)
		} else if t.Payload != nil {
			writeSlot(t.Payload.S1)
		} else {
			writeSlot("")
		}

	case KindContentDelete:
		writeSlot(t.S2) // target content hash being tombstoned

	case KindActionScoreContent, KindActionScoreComment:
		writeSlot(t.S2) // target hash
		writeSlot(strconv.FormatInt(t.I1, 10))

	case KindActionSubscribe, KindActionSubscribePrivate, KindActionSubscribeCancel:
		writeSlot(t.S2) // target address

	case KindActionBlocking, KindActionBlockingCancel:
		writeSlot(t.S2) // target address
		writeSlot(t.S3) // optional JSON array of targets

	case KindActionComplain:
		writeSlot(t.S2) // target content hash
		writeSlot(strconv.FormatInt(t.I1, 10))

	case KindBarteronOffer:
		writeSlot(rootOrEmpty())
		writePayload(t.Payload)

	case KindBarteronAccount:
		writePayload(t.Payload)

	case KindModeratorRegister:
		writeSlot(t.S4) // request id

	case KindModeratorRequest:
		writeSlot(t.S2) // destination address

	case KindModerationFlag, KindModerationVote:
		writeSlot(t.S2)
		writeSlot(t.S3)
		writeSlot(t.S4)

	default:
		return nil, fmt.Errorf("%w: kind %s", ErrUnsupportedKind, t.Kind)
	}

	return []byte(b.String()), nil
}

// ComputeHash returns the double-SHA256 hex digest of t's canonical bytes.
func ComputeHash(t *Transaction) (string, error) {
	raw, err := canonicalBytes(t)
	if err != nil {
		return "", err
	}
	first := sha256.Sum256(raw)
	second := sha256.Sum256(first[:])
	return hex.EncodeToString(second[:]), nil
}

// VerifyHash recomputes t's hash and compares it against t.Hash.
func VerifyHash(t *Transaction) error {
	want, err := ComputeHash(t)
	if err != nil {
		return err
	}
	if want != t.Hash {
		return ErrFailedOpReturn
	}
	return nil
}

// ScoreOpReturn builds the "<target_author_address> <value>" binding
// string a score transaction's envelope carries, hex-encoded, per §4.1
// and §6.
func ScoreOpReturn(targetAuthorAddress string, value int64) string {
	raw := fmt.Sprintf("%s %d", targetAuthorAddress, value)
	return hex.EncodeToString([]byte(raw))
}

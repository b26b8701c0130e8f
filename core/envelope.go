package core

import (
	"fmt"
	"strconv"
)

// Envelope is what the envelope layer hands the social core: opaque
// money-layer fields the core never inspects, plus the decoded fields it
// does. Inputs/Outputs are kept only so Parse can be exercised against a
// full envelope shape in tests; the core never validates them (§1).
type Envelope struct {
	Hash        string
	Time        int64
	Height      Height
	Inputs      []string
	Outputs     []string
	OpReturnHex string
	Kind        Kind
	Fields      map[string]string
}

// Parse builds a typed Transaction from an envelope, or fails with
// ErrUnsupportedKind / ErrMalformed. The returned record's hash is taken
// from the envelope; callers that need the hash-binding guarantee call
// VerifyHash separately (§4.1: a mismatch is a validation-time failure,
// not a parse-time one; ConsensusHelper.ValidateTransaction runs
// VerifyHash before Check).
func Parse(env *Envelope) (*Transaction, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrMalformed)
	}
	f := env.Fields
	t := &Transaction{
		Hash:        env.Hash,
		Kind:        env.Kind,
		Time:        env.Time,
		Height:      env.Height,
		Address:     f["address"],
		OpReturnHex: env.OpReturnHex,
	}

	switch env.Kind {
	case KindAccountUser, KindAccountDelete:
		t.S2 = f["referrer"]
		t.Payload = &Payload{
			S1: f["lang"], S2: f["name"], S3: f["avatar"], S4: f["about"],
			S5: f["url"], S6: f["pubkey"], S7: f["donations"],
		}

	case KindContentPost, KindContentVideo:
		t.S2 = orSelf(f["root_tx_hash"], env.Hash)
		t.S3 = f["relay_tx_hash"]
		t.Payload = &Payload{
			S1: f["lang"], S2: f["caption"], S3: f["message"], S4: f["tags"],
			S5: f["images"], S6: f["settings"], S7: f["url"],
		}

	case KindContentComment, KindContentCommentEdit, KindContentCommentDelete:
		t.S2 = orSelf(f["root_tx_hash"], env.Hash)
		t.S3 = f["post_tx_hash"]
		t.S4 = f["parent_comment_hash"]
		t.S5 = f["answered_comment_hash"]
		if env.Kind != KindContentCommentDelete {
			t.Payload = &Payload{S1: f["message"]}
		}

	case KindContentDelete:
		t.S2 = f["target_hash"]

	case KindActionScoreContent, KindActionScoreComment:
		t.S2 = f["target_hash"]
		v, err := strconv.ParseInt(f["value"], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: score value %q: %v", ErrMalformed, f["value"], err)
		}
		t.I1 = v

	case KindActionSubscribe, KindActionSubscribePrivate, KindActionSubscribeCancel:
		t.S2 = f["target_address"]

	case KindActionBlocking, KindActionBlockingCancel:
		t.S2 = f["target_address"]
		t.S3 = f["addresses_to"]

	case KindActionComplain:
		t.S2 = f["target_hash"]
		reason, err := strconv.ParseInt(f["reason"], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: complain reason %q: %v", ErrMalformed, f["reason"], err)
		}
		t.I1 = reason

	case KindBarteronOffer:
		t.S2 = orSelf(f["root_tx_hash"], env.Hash)
		t.Payload = &Payload{S1: f["offer_body"]}

	case KindBarteronAccount:
		t.Payload = &Payload{S1: f["account_body"]}

	case KindModerationFlag, KindModerationVote, KindModeratorRegister, KindModeratorRequest:
		t.S2 = f["target_hash"]
		t.S3 = f["flag_hash"]
		t.S4 = f["request_id"]

	case KindTxDefault, KindTxCoinbase, KindTxCoinstake:
		// Pass-through; no social fields to decode.

	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedKind, env.Kind)
	}

	return t, nil
}

func orSelf(v, self string) string {
	if v == "" {
		return self
	}
	return v
}

package core

import "encoding/json"

// multipleBlockingCheckpointHeight is the height at which the addresses_to
// array form of Blocking/BlockingCancel becomes available. The single
// address_to form stays valid; a record carrying both forms is rejected
// (§4.6.7).
const multipleBlockingCheckpointHeight int64 = 600_000

type blockingValidator struct {
	allowMultiple bool
}

func newBlockingValidatorV1() Validator { return blockingValidator{allowMultiple: false} }
func newBlockingValidatorV2() Validator { return blockingValidator{allowMultiple: true} }

var blockingRegistry = NewCheckpointRegistry(
	CheckpointEntry[Validator]{Version: "single", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newBlockingValidatorV1},
	CheckpointEntry[Validator]{Version: "multiple_blocking", MainHeight: multipleBlockingCheckpointHeight, TestHeight: 0, AltHeight: 0, Factory: newBlockingValidatorV2},
)

func isBlockingFamily(k Kind) bool {
	return k == KindActionBlocking || k == KindActionBlockingCancel
}

func (v blockingValidator) Check(tx *Transaction) error {
	if tx.Address == tx.S2 && tx.S2 != "" {
		return ErrSelfBlocking
	}
	hasSingle := tx.S2 != ""
	hasMultiple := tx.S3 != ""
	if hasSingle && hasMultiple {
		return ErrMalformed
	}
	if !hasSingle && !hasMultiple {
		return ErrMalformed
	}
	if hasMultiple {
		if !v.allowMultiple {
			return ErrMalformed
		}
		var targets []string
		if err := json.Unmarshal([]byte(tx.S3), &targets); err != nil {
			return ErrMalformed
		}
		for _, to := range targets {
			if to == tx.Address {
				return ErrSelfBlocking
			}
		}
	}
	return nil
}

func blockingTargets(tx *Transaction) []string {
	if tx.S2 != "" {
		return []string{tx.S2}
	}
	var targets []string
	_ = json.Unmarshal([]byte(tx.S3), &targets)
	return targets
}

func (v blockingValidator) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if block != nil {
		return v.ValidateBlock(ctx, tx, block)
	}
	return v.ValidateMempool(ctx, tx)
}

func (v blockingValidator) validateChain(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	for _, to := range blockingTargets(tx) {
		if err := requireRegistered(ctx, to, block); err != nil {
			return err
		}
		liveKind, found, err := ctx.Repo.GetLastBlockingType(tx.Address, to)
		if err != nil {
			return err
		}
		if tx.Kind == KindActionBlockingCancel {
			if !found || liveKind == KindActionBlockingCancel {
				return ErrInvalidBlocking
			}
		} else if found && liveKind == KindActionBlocking {
			return ErrDoubleBlocking
		}
	}

	if existsInBlock(block, func(t *Transaction) bool {
		return isBlockingFamily(t.Kind) && t.Address == tx.Address && t.Hash != tx.Hash
	}) {
		return ErrManyTransactions
	}
	return nil
}

func (v blockingValidator) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	if err := v.validateChain(ctx, tx, nil); err != nil {
		return err
	}
	n, err := ctx.Repo.CountMempool(KindActionBlocking, tx.Address, "")
	if err != nil {
		return err
	}
	n2, err := ctx.Repo.CountMempool(KindActionBlockingCancel, tx.Address, "")
	if err != nil {
		return err
	}
	if n+n2 > 0 {
		return ErrManyTransactions
	}
	return nil
}

func (v blockingValidator) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	return v.validateChain(ctx, tx, block)
}

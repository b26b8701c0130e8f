package core

type subscribeValidator struct {
	disableForBlocked bool
}

func newSubscribeValidatorV1() Validator { return subscribeValidator{disableForBlocked: false} }
func newSubscribeValidatorV2() Validator { return subscribeValidator{disableForBlocked: true} }

var subscribeRegistry = NewCheckpointRegistry(
	CheckpointEntry[Validator]{Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newSubscribeValidatorV1},
	CheckpointEntry[Validator]{Version: "disable_for_blocked", MainHeight: scoreBlockingCheckpointEnd + 1, TestHeight: 0, AltHeight: 0, Factory: newSubscribeValidatorV2},
)

func isSubscribeFamily(k Kind) bool {
	switch k {
	case KindActionSubscribe, KindActionSubscribePrivate, KindActionSubscribeCancel:
		return true
	default:
		return false
	}
}

func (subscribeValidator) Check(tx *Transaction) error {
	if tx.S2 == "" {
		return ErrMalformed
	}
	if tx.S2 == tx.Address {
		return ErrSelfSubscribe
	}
	return nil
}

func (v subscribeValidator) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if block != nil {
		return v.ValidateBlock(ctx, tx, block)
	}
	return v.ValidateMempool(ctx, tx)
}

func (v subscribeValidator) validateChain(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	if err := requireRegistered(ctx, tx.S2, block); err != nil {
		return err
	}

	liveKind, found, err := ctx.Repo.GetLastSubscribeType(tx.Address, tx.S2)
	if err != nil {
		return err
	}
	if tx.Kind == KindActionSubscribeCancel {
		if !found || liveKind == KindActionSubscribeCancel {
			return ErrInvalidSubscribe
		}
	} else {
		if found && liveKind == tx.Kind {
			return ErrDoubleSubscribe
		}
		if tx.Kind == KindActionSubscribePrivate && v.disableForBlocked {
			blockedKind, exists, err := ctx.Repo.GetLastBlockingType(tx.S2, tx.Address)
			if err != nil {
				return err
			}
			if exists && blockedKind == KindActionBlocking {
				return ErrBlocking
			}
		}
	}

	if existsInBlock(block, func(t *Transaction) bool {
		return isSubscribeFamily(t.Kind) && t.Address == tx.Address && t.S2 == tx.S2 && t.Hash != tx.Hash
	}) {
		return ErrManyTransactions
	}
	return nil
}

func (v subscribeValidator) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	if err := v.validateChain(ctx, tx, nil); err != nil {
		return err
	}
	n, err := ctx.Repo.CountMempool(KindActionSubscribe, tx.Address, tx.S2)
	if err != nil {
		return err
	}
	n2, err := ctx.Repo.CountMempool(KindActionSubscribePrivate, tx.Address, tx.S2)
	if err != nil {
		return err
	}
	n3, err := ctx.Repo.CountMempool(KindActionSubscribeCancel, tx.Address, tx.S2)
	if err != nil {
		return err
	}
	if n+n2+n3 > 0 {
		return ErrManyTransactions
	}
	return nil
}

func (v subscribeValidator) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	return v.validateChain(ctx, tx, block)
}

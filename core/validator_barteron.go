package core

// barterAccountActivationHeight is the placeholder activation height for
// the not-yet-shipped barter account validator (§9 Open Question (b)).
// Every network carries the same placeholder until a real checkpoint is
// cut; until then BARTERON_ACCOUNT resolves to ErrUnknown like any kind
// with no active checkpoint entry.
const barterAccountActivationHeight int64 = 99_999_999

// barteronOfferValidatorV1 implements BARTERON_OFFER (§4.6.9): a single
// editable record per address family, capped by how many an address may
// hold live at once rather than by a daily count.
type barteronOfferValidatorV1 struct{}

func newBarteronOfferValidatorV1() Validator { return barteronOfferValidatorV1{} }

var barteronOfferRegistry = NewCheckpointRegistry(CheckpointEntry[Validator]{
	Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newBarteronOfferValidatorV1,
})

// barteronAccountValidatorStub is wired into the registry at the
// placeholder activation height so the checkpoint machinery is exercised
// end to end, but every network's current height is far below it, so
// dispatch never reaches it in practice (§4.9 Open Question (b)).
type barteronAccountValidatorStub struct{}

func newBarteronAccountValidatorStub() Validator { return barteronAccountValidatorStub{} }

func (barteronAccountValidatorStub) Check(*Transaction) error { return ErrUnknown }
func (barteronAccountValidatorStub) Validate(*ValidationContext, *Transaction, []*Transaction) error {
	return ErrUnknown
}
func (barteronAccountValidatorStub) ValidateMempool(*ValidationContext, *Transaction) error {
	return ErrUnknown
}
func (barteronAccountValidatorStub) ValidateBlock(*ValidationContext, *Transaction, []*Transaction) error {
	return ErrUnknown
}

var barteronAccountRegistry = NewCheckpointRegistry(CheckpointEntry[Validator]{
	Version: "stub", MainHeight: barterAccountActivationHeight, TestHeight: barterAccountActivationHeight,
	AltHeight: barterAccountActivationHeight, Factory: newBarteronAccountValidatorStub,
})

func (barteronOfferValidatorV1) Check(tx *Transaction) error {
	if tx.Payload == nil || tx.Payload.S1 == "" {
		return ErrMalformed
	}
	return nil
}

func (v barteronOfferValidatorV1) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}

	maxSize, _ := ctx.Limits.Get(ParamMaxBarteronRequestSize, ctx.Network, ctx.Height)
	if maxSize > 0 && int64(payloadSize(tx.Payload)) > maxSize {
		return ErrContentSizeLimit
	}

	if !tx.IsEdit() {
		return v.checkNew(ctx, tx)
	}
	if err := v.checkEdit(ctx, tx, block); err != nil {
		return err
	}

	if block != nil {
		if existsInBlock(block, func(t *Transaction) bool {
			return t.Kind == KindBarteronOffer && t.IsEdit() && t.RootTxHash() == tx.RootTxHash() && t.Hash != tx.Hash
		}) {
			return ErrManyTransactions
		}
		return nil
	}
	n, err := ctx.Repo.CountMempool(KindBarteronOffer, tx.Address, tx.RootTxHash())
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrManyTransactions
	}
	return nil
}

func (v barteronOfferValidatorV1) checkNew(ctx *ValidationContext, tx *Transaction) error {
	active, err := ctx.Repo.CountActive(KindBarteronOffer, tx.Address)
	if err != nil {
		return err
	}
	maxActive, _ := ctx.Limits.Get(ParamMaxActiveCount, ctx.Network, ctx.Height)
	if maxActive > 0 && int64(active) >= maxActive {
		return ErrExceededLimit
	}
	return nil
}

// checkEdit requires a BARTERON_OFFER at the offer's root, in chain or
// earlier in the block, authored by tx.Address: a missing root fails with
// ExceededLimit and another author with ContentEditUnauthorized. Only
// BARTERON_OFFER records are read; no deletion of the root is looked up.
func (barteronOfferValidatorV1) checkEdit(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	last, ok, err := ctx.Repo.GetLast(KindBarteronOffer, tx.RootTxHash())
	if err != nil {
		return err
	}
	if !ok {
		inBlock, ok2 := findInBlock(block, func(t *Transaction) bool {
			return t.Kind == KindBarteronOffer && t.Hash == tx.RootTxHash()
		})
		if !ok2 {
			return ErrExceededLimit
		}
		if inBlock.Address != tx.Address {
			return ErrContentEditUnauthorized
		}
		return nil
	}
	if last.Address != tx.Address {
		return ErrContentEditUnauthorized
	}
	return nil
}

func (v barteronOfferValidatorV1) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	return v.Validate(ctx, tx, nil)
}

func (v barteronOfferValidatorV1) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	return v.Validate(ctx, tx, block)
}

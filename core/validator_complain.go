package core

type complainValidatorV1 struct{}

func newComplainValidatorV1() Validator { return complainValidatorV1{} }

var complainRegistry = NewCheckpointRegistry(CheckpointEntry[Validator]{
	Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newComplainValidatorV1,
})

func (complainValidatorV1) Check(tx *Transaction) error {
	if tx.S2 == "" {
		return ErrMalformed
	}
	if tx.I1 < 0 {
		return ErrMalformed
	}
	return nil
}

func (v complainValidatorV1) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	author, ok, err := findContentAuthor(ctx, tx.S2, block)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	if author == tx.Address {
		return ErrSelfComplain
	}

	dup, err := ctx.Repo.ExistsScore(tx.Address, tx.S2, KindActionComplain, true)
	if err != nil {
		return err
	}
	if dup {
		return ErrDoubleComplain
	}
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindActionComplain && t.Address == tx.Address && t.S2 == tx.S2
	}) {
		return ErrDoubleComplain
	}

	rep, err := ctx.Repo.GetUserReputation(tx.Address, ctx.Height)
	if err != nil {
		return err
	}
	threshold, _ := ctx.Limits.Get(ParamThresholdReputationComplains, ctx.Network, ctx.Height)
	if rep < threshold {
		return ErrLowReputation
	}

	info, err := AccountInfoAt(ctx, tx.Address)
	if err != nil {
		return err
	}
	limitParam := ParamTrialComplainLimit
	if info.Mode == ModeFull {
		limitParam = ParamFullComplainLimit
	}
	limit, _ := ctx.Limits.Get(limitParam, ctx.Network, ctx.Height)
	n, err := ctx.Repo.CountWindow(KindActionComplain, tx.Address, "", WindowSeconds, tx.Time-dayInSeconds, tx.Time, tx.Hash)
	if err != nil {
		return err
	}
	n += countInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindActionComplain && t.Address == tx.Address && t.Hash != tx.Hash
	})
	if limit > 0 && int64(n) >= limit {
		return ErrComplainLimit
	}
	return nil
}

func (v complainValidatorV1) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	return v.Validate(ctx, tx, nil)
}

func (v complainValidatorV1) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	return v.Validate(ctx, tx, block)
}

package core

// contentDeleteValidatorV1 implements CONTENT_DELETE: a tombstone over an
// existing CONTENT_POST or CONTENT_VIDEO root, authored by the same
// address as the original (§4.6.2, lifecycle note in §4).
type contentDeleteValidatorV1 struct{}

func newContentDeleteValidatorV1() Validator { return contentDeleteValidatorV1{} }

var contentDeleteRegistry = NewCheckpointRegistry(CheckpointEntry[Validator]{
	Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newContentDeleteValidatorV1,
})

func (contentDeleteValidatorV1) Check(tx *Transaction) error {
	if tx.S2 == "" {
		return ErrMalformed
	}
	return nil
}

// targetContentAuthor looks up the author of the post or video rooted at
// hash, trying both content kinds since the delete record carries no
// kind discriminant for its target.
func targetContentAuthor(ctx *ValidationContext, hash string, block []*Transaction) (string, bool, error) {
	for _, k := range [...]Kind{KindContentPost, KindContentVideo} {
		if last, ok, err := ctx.Repo.GetLast(k, hash); err != nil {
			return "", false, err
		} else if ok {
			return last.Address, true, nil
		}
	}
	if inBlock, ok := findInBlock(block, func(t *Transaction) bool {
		return (t.Kind == KindContentPost || t.Kind == KindContentVideo) && t.Hash == hash
	}); ok {
		return inBlock.Address, true, nil
	}
	return "", false, nil
}

func (v contentDeleteValidatorV1) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	author, ok, err := targetContentAuthor(ctx, tx.S2, block)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	if author != tx.Address {
		return ErrContentEditUnauthorized
	}
	if block != nil {
		return v.ValidateBlock(ctx, tx, block)
	}
	return v.ValidateMempool(ctx, tx)
}

func (contentDeleteValidatorV1) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	n, err := ctx.Repo.CountMempool(KindContentDelete, tx.Address, tx.S2)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDoubleContentEdit
	}
	return nil
}

func (contentDeleteValidatorV1) ValidateBlock(_ *ValidationContext, tx *Transaction, block []*Transaction) error {
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindContentDelete && t.S2 == tx.S2 && t.Hash != tx.Hash
	}) {
		return ErrDoubleContentEdit
	}
	return nil
}

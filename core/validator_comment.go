package core

import "fmt"

// commentValidatorV1 implements CONTENT_COMMENT / CONTENT_COMMENT_EDIT /
// CONTENT_COMMENT_DELETE (§4.6.3).
type commentValidatorV1 struct{}

func newCommentValidatorV1() Validator { return commentValidatorV1{} }

var commentRegistry = NewCheckpointRegistry(CheckpointEntry[Validator]{
	Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newCommentValidatorV1,
})

func (commentValidatorV1) Check(tx *Transaction) error {
	if tx.Kind != KindContentCommentDelete && (tx.Payload == nil || tx.Payload.S1 == "") {
		return fmt.Errorf("%w: empty comment message", ErrMalformed)
	}
	if tx.S3 == "" {
		return fmt.Errorf("%w: missing target post", ErrMalformed)
	}
	return nil
}

func (v commentValidatorV1) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	postExists, err := contentExists(ctx, tx.S3, block)
	if err != nil {
		return err
	}
	if !postExists {
		return ErrNotFound
	}
	if tx.S4 != "" {
		parentExists, err := commentExists(ctx, tx.S4, block)
		if err != nil {
			return err
		}
		if !parentExists {
			return ErrNotFound
		}
	}
	if block != nil {
		return v.ValidateBlock(ctx, tx, block)
	}
	return v.ValidateMempool(ctx, tx)
}

func (commentValidatorV1) checkEditAuthority(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	original, ok, err := ctx.Repo.GetLast(KindContentComment, tx.RootTxHash())
	if err != nil {
		return err
	}
	var author string
	switch {
	case ok:
		author = original.Address
	default:
		inBlock, found := findInBlock(block, func(t *Transaction) bool {
			return t.Kind == KindContentComment && t.Hash == tx.RootTxHash()
		})
		if !found {
			return ErrNotFound
		}
		author = inBlock.Address
	}
	if author != tx.Address {
		return ErrContentEditUnauthorized
	}
	return nil
}

func (v commentValidatorV1) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	if !tx.IsEdit() && tx.Kind == KindContentComment {
		return nil
	}
	if err := v.checkEditAuthority(ctx, tx, nil); err != nil {
		return err
	}
	n, err := ctx.Repo.CountMempool(tx.Kind, tx.Address, tx.RootTxHash())
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDoubleContentEdit
	}
	return nil
}

func (v commentValidatorV1) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if !tx.IsEdit() && tx.Kind == KindContentComment {
		return nil
	}
	if err := v.checkEditAuthority(ctx, tx, block); err != nil {
		return err
	}
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Kind != KindContentComment && t.RootTxHash() == tx.RootTxHash() && t.Address == tx.Address
	}) {
		return ErrDoubleContentEdit
	}
	return nil
}

func contentExists(ctx *ValidationContext, hash string, block []*Transaction) (bool, error) {
	if existsInBlock(block, func(t *Transaction) bool { return t.Kind.IsContent() && t.Hash == hash }) {
		return true, nil
	}
	return ctx.Repo.ExistsContent(hash)
}

func commentExists(ctx *ValidationContext, hash string, block []*Transaction) (bool, error) {
	if existsInBlock(block, func(t *Transaction) bool {
		return (t.Kind == KindContentComment || t.Kind == KindContentCommentEdit) && t.Hash == hash
	}) {
		return true, nil
	}
	_, ok, err := ctx.Repo.GetLast(KindContentComment, hash)
	if err != nil || !ok {
		return false, err
	}
	_, deleted, err := ctx.Repo.GetLast(KindContentCommentDelete, hash)
	if err != nil {
		return false, err
	}
	return !deleted, nil
}

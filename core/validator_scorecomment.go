package core

type scoreCommentValidator struct {
	disableForBlocked bool
}

func newScoreCommentValidatorV1() Validator { return scoreCommentValidator{disableForBlocked: false} }
func newScoreCommentValidatorV2() Validator { return scoreCommentValidator{disableForBlocked: true} }

var scoreCommentRegistry = NewCheckpointRegistry(
	CheckpointEntry[Validator]{Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newScoreCommentValidatorV1},
	CheckpointEntry[Validator]{Version: "disable_for_blocked", MainHeight: scoreBlockingCheckpointEnd + 1, TestHeight: 0, AltHeight: 0, Factory: newScoreCommentValidatorV2},
)

func (scoreCommentValidator) Check(tx *Transaction) error {
	if tx.S2 == "" {
		return ErrMalformed
	}
	if tx.I1 != 1 && tx.I1 != -1 {
		return ErrMalformed
	}
	return nil
}

func (v scoreCommentValidator) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	ok, err := commentExists(ctx, tx.S2, block)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	author, found, err := commentAuthor(ctx, tx.S2, block)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	if author == tx.Address {
		return ErrSelfCommentScore
	}
	if ScoreOpReturn(author, tx.I1) != tx.OpReturnHex {
		return ErrFailedOpReturn
	}

	dup, err := ctx.Repo.ExistsScore(tx.Address, tx.S2, KindActionScoreComment, true)
	if err != nil {
		return err
	}
	if dup {
		return ErrDoubleCommentScore
	}
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindActionScoreComment && t.Address == tx.Address && t.S2 == tx.S2
	}) {
		return ErrDoubleCommentScore
	}

	if v.disableForBlocked {
		blockedKind, exists, err := ctx.Repo.GetLastBlockingType(author, tx.Address)
		if err != nil {
			return err
		}
		if exists && blockedKind == KindActionBlocking {
			return ErrBlocking
		}
	}

	info, err := AccountInfoAt(ctx, tx.Address)
	if err != nil {
		return err
	}
	limitParam := ParamTrialCommentScore
	if info.Mode == ModeFull {
		limitParam = ParamFullCommentScore
	}
	limit, _ := ctx.Limits.Get(limitParam, ctx.Network, ctx.Height)
	n, err := ctx.Repo.CountWindow(KindActionScoreComment, tx.Address, "", WindowSeconds, tx.Time-dayInSeconds, tx.Time, tx.Hash)
	if err != nil {
		return err
	}
	n += countInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindActionScoreComment && t.Address == tx.Address && t.Hash != tx.Hash
	})
	if limit > 0 && int64(n) >= limit {
		return ErrCommentScoreLimit
	}
	return nil
}

func (v scoreCommentValidator) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	return v.Validate(ctx, tx, nil)
}

func (v scoreCommentValidator) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	return v.Validate(ctx, tx, block)
}

func commentAuthor(ctx *ValidationContext, hash string, block []*Transaction) (string, bool, error) {
	if inBlock, ok := findInBlock(block, func(t *Transaction) bool {
		return (t.Kind == KindContentComment || t.Kind == KindContentCommentEdit) && t.Hash == hash
	}); ok {
		return inBlock.Address, true, nil
	}
	last, ok, err := ctx.Repo.GetLast(KindContentComment, hash)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return last.Address, true, nil
}

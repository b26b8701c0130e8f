package core

// scoreBlockingCheckpointStart/End bound the checkpoint era during which a
// content author's block of the scorer rejects the score outright
// (§4.6.4).
const (
	scoreBlockingCheckpointStart int64 = 430_000
	scoreBlockingCheckpointEnd   int64 = 514_184
)

type scoreContentValidator struct {
	enforceBlocking bool
}

func newScoreContentValidatorV1() Validator { return scoreContentValidator{enforceBlocking: false} }
func newScoreContentValidatorV2() Validator { return scoreContentValidator{enforceBlocking: true} }
func newScoreContentValidatorV3() Validator { return scoreContentValidator{enforceBlocking: false} }

var scoreContentRegistry = NewCheckpointRegistry(
	CheckpointEntry[Validator]{Version: "pre_blocking", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newScoreContentValidatorV1},
	CheckpointEntry[Validator]{Version: "blocking_window", MainHeight: scoreBlockingCheckpointStart, TestHeight: 0, AltHeight: 0, Factory: newScoreContentValidatorV2},
	CheckpointEntry[Validator]{Version: "post_blocking_window", MainHeight: scoreBlockingCheckpointEnd + 1, TestHeight: -1, AltHeight: -1, Factory: newScoreContentValidatorV3},
)

func (scoreContentValidator) Check(tx *Transaction) error {
	if tx.S2 == "" {
		return ErrMalformed
	}
	if tx.I1 < 1 || tx.I1 > 5 {
		return ErrMalformed
	}
	return nil
}

func findContentAuthor(ctx *ValidationContext, hash string, block []*Transaction) (string, bool, error) {
	if inBlock, ok := findInBlock(block, func(t *Transaction) bool {
		return t.Kind.IsContent() && (t.Hash == hash || t.RootTxHash() == hash)
	}); ok {
		return inBlock.Address, true, nil
	}
	if last, ok, err := ctx.Repo.GetLast(KindContentPost, hash); err != nil {
		return "", false, err
	} else if ok {
		return last.Address, true, nil
	}
	if last, ok, err := ctx.Repo.GetLast(KindContentVideo, hash); err != nil {
		return "", false, err
	} else if ok {
		return last.Address, true, nil
	}
	return "", false, nil
}

func (v scoreContentValidator) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
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
		return ErrSelfScore
	}
	if ScoreOpReturn(author, tx.I1) != tx.OpReturnHex {
		return ErrFailedOpReturn
	}

	dup, err := ctx.Repo.ExistsScore(tx.Address, tx.S2, KindActionScoreContent, true)
	if err != nil {
		return err
	}
	if dup {
		return ErrDoubleScore
	}
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindActionScoreContent && t.Address == tx.Address && t.S2 == tx.S2
	}) {
		return ErrDoubleScore
	}

	if v.enforceBlocking {
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
	limitParam := ParamTrialScoreLimit
	if info.Mode == ModeFull {
		limitParam = ParamFullScoreLimit
	}
	limit, _ := ctx.Limits.Get(limitParam, ctx.Network, ctx.Height)
	dayStart := tx.Time - dayInSeconds
	n, err := ctx.Repo.CountWindow(KindActionScoreContent, tx.Address, "", WindowSeconds, dayStart, tx.Time, tx.Hash)
	if err != nil {
		return err
	}
	n += countInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindActionScoreContent && t.Address == tx.Address && t.Hash != tx.Hash
	})
	if limit > 0 && int64(n) >= limit {
		return ErrScoreLimit
	}
	return nil
}

func (v scoreContentValidator) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	return v.Validate(ctx, tx, nil)
}

func (v scoreContentValidator) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	return v.Validate(ctx, tx, block)
}

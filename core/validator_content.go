package core

import "fmt"

// postDailyWindowHeightsPostCheckpoint is the literal block-height width
// used for the daily post-count window once the height-windowed
// checkpoint is active, and postEditTimeoutSecondsPreCheckpoint the
// literal second-count width used for the edit window before it
// (§4.6.2). The two uses share the same numeral in the
// original chain's history but are independent constants that could
// diverge under a future checkpoint.
const (
	postDailyWindowHeightsPostCheckpoint int64 = 1_180_000
	postEditTimeoutSecondsPreCheckpoint  int64 = 1_180_000
)

// contentValidator implements CONTENT_POST / CONTENT_VIDEO. heightWindows
// selects whether daily and edit windows are measured in block heights
// (post-checkpoint) or in seconds (pre-checkpoint).
type contentValidator struct {
	heightWindows bool
}

func newContentValidatorV1() Validator { return contentValidator{heightWindows: false} }
func newContentValidatorV2() Validator { return contentValidator{heightWindows: true} }

var contentRegistry = NewCheckpointRegistry(
	CheckpointEntry[Validator]{Version: "time_windows", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newContentValidatorV1},
	CheckpointEntry[Validator]{Version: "height_windows", MainHeight: postDailyWindowHeightsPostCheckpoint, TestHeight: 0, AltHeight: 0, Factory: newContentValidatorV2},
)

func (contentValidator) Check(tx *Transaction) error {
	if tx.Payload == nil {
		return fmt.Errorf("%w: missing payload", ErrMalformed)
	}
	return nil
}

func (v contentValidator) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	maxSize, _ := ctx.Limits.Get(ParamMaxPostSize, ctx.Network, ctx.Height)
	if maxSize > 0 && int64(payloadSize(tx.Payload)) > maxSize {
		return ErrContentSizeLimit
	}
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	if block != nil {
		return v.ValidateBlock(ctx, tx, block)
	}
	return v.ValidateMempool(ctx, tx)
}

func (v contentValidator) dailyWindow(ctx *ValidationContext, tx *Transaction) (WindowUnit, int64, int64) {
	if v.heightWindows {
		h := int64(ctx.Height)
		return WindowHeight, h - postDailyWindowHeightsPostCheckpoint, h
	}
	return WindowSeconds, 0, tx.Time // width is the `depth` parameter, applied by the caller
}

// withinEditWindow reports whether tx, editing a record originally
// accepted at (originalTime, originalHeight), still falls inside the
// edit window measured from that original acceptance (§4.6.2).
func (v contentValidator) withinEditWindow(ctx *ValidationContext, tx *Transaction, originalTime int64, originalHeight Height) bool {
	if v.heightWindows {
		timeout, _ := ctx.Limits.Get(ParamEditPostTimeout, ctx.Network, ctx.Height)
		return int64(ctx.Height)-int64(originalHeight) <= timeout
	}
	return tx.Time-originalTime <= postEditTimeoutSecondsPreCheckpoint
}

func (v contentValidator) checkNew(ctx *ValidationContext, tx *Transaction) error {
	info, err := AccountInfoAt(ctx, tx.Address)
	if err != nil {
		return err
	}
	limitParam := ParamTrialPostLimit
	if info.Mode == ModeFull {
		limitParam = ParamFullPostLimit
	}
	limit, _ := ctx.Limits.Get(limitParam, ctx.Network, ctx.Height)

	unit, from, to := v.dailyWindow(ctx, tx)
	if unit == WindowSeconds {
		depth, _ := ctx.Limits.Get(ParamDepth, ctx.Network, ctx.Height)
		from = tx.Time - depth
	}
	n, err := ctx.Repo.CountWindow(tx.Kind, tx.Address, "", unit, from, to, tx.Hash)
	if err != nil {
		return err
	}
	if limit > 0 && int64(n) >= limit {
		return ErrContentLimit
	}
	return nil
}

func (v contentValidator) checkEdit(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	original, ok, err := ctx.Repo.GetLast(tx.Kind, tx.RootTxHash())
	if err != nil {
		return err
	}
	var originalAuthor string
	var originalTime int64
	var originalHeight Height
	if ok {
		originalAuthor = original.Address
		originalTime = original.Time
		originalHeight = original.Height
	} else if inBlock, ok2 := findInBlock(block, func(t *Transaction) bool {
		return t.Kind == tx.Kind && t.Hash == tx.RootTxHash()
	}); ok2 {
		originalAuthor = inBlock.Address
		originalTime = inBlock.Time
		originalHeight = inBlock.Height
	} else {
		return ErrNotFound
	}
	if originalAuthor != tx.Address {
		return ErrContentEditUnauthorized
	}

	if !v.withinEditWindow(ctx, tx, originalTime, originalHeight) {
		return ErrContentEditLimit
	}

	info, err := AccountInfoAt(ctx, tx.Address)
	if err != nil {
		return err
	}
	editLimitParam := ParamTrialPostEditLimit
	if info.Mode == ModeFull {
		editLimitParam = ParamFullPostEditLimit
	}
	editLimit, _ := ctx.Limits.Get(editLimitParam, ctx.Network, ctx.Height)
	edits, err := ctx.Repo.CountEdits(tx.Kind, tx.RootTxHash())
	if err != nil {
		return err
	}
	if editLimit > 0 && int64(edits) >= editLimit {
		return ErrPostEditLimit
	}
	return nil
}

func (v contentValidator) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	if !tx.IsEdit() {
		return v.checkNew(ctx, tx)
	}
	if err := v.checkEdit(ctx, tx, nil); err != nil {
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

func (v contentValidator) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if !tx.IsEdit() {
		return v.checkNew(ctx, tx)
	}
	if err := v.checkEdit(ctx, tx, block); err != nil {
		return err
	}
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Kind == tx.Kind && t.IsEdit() && t.RootTxHash() == tx.RootTxHash()
	}) {
		return ErrDoubleContentEdit
	}
	return nil
}

func payloadSize(p *Payload) int {
	if p == nil {
		return 0
	}
	return len(p.S1) + len(p.S2) + len(p.S3) + len(p.S4) + len(p.S5) + len(p.S6) + len(p.S7)
}

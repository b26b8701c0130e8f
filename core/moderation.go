package core

// JurySelector is the deterministic moderator-assignment capability the
// moderation family depends on (§4.9). Select returns the subset of
// moderators empaneled to decide flagHash at height; it must be a pure
// function of its arguments so two hosts running identical checkpoints
// agree on the jury without coordinating (§5).
type JurySelector interface {
	Select(flagHash string, height Height, moderators []string) []string
}

func inJury(jury []string, address string) bool {
	for _, m := range jury {
		if m == address {
			return true
		}
	}
	return false
}

// moderatorRegisterValidatorV1 implements MODERATOR_REGISTER: an address
// petitions to join the moderator roster. Beyond the kind, address and
// time that every canonical hash covers, its hash depends only on the
// request id (S4, §4.6.10).
type moderatorRegisterValidatorV1 struct{}

func newModeratorRegisterValidatorV1() Validator { return moderatorRegisterValidatorV1{} }

var moderatorRegisterRegistry = NewCheckpointRegistry(CheckpointEntry[Validator]{
	Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newModeratorRegisterValidatorV1,
})

func (moderatorRegisterValidatorV1) Check(tx *Transaction) error {
	if tx.S4 == "" {
		return ErrMalformed
	}
	return nil
}

func (v moderatorRegisterValidatorV1) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if block != nil {
		return v.ValidateBlock(ctx, tx, block)
	}
	return v.ValidateMempool(ctx, tx)
}

func (moderatorRegisterValidatorV1) validateChain(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	already, err := ctx.Repo.ExistsModerator(tx.Address)
	if err != nil {
		return err
	}
	if already {
		return ErrManyTransactions
	}
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindModeratorRegister && t.Address == tx.Address && t.Hash != tx.Hash
	}) {
		return ErrManyTransactions
	}
	return nil
}

func (v moderatorRegisterValidatorV1) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	if err := v.validateChain(ctx, tx, nil); err != nil {
		return err
	}
	n, err := ctx.Repo.CountMempool(KindModeratorRegister, tx.Address, "")
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrManyTransactions
	}
	return nil
}

func (v moderatorRegisterValidatorV1) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	return v.validateChain(ctx, tx, block)
}

// moderatorRequestValidatorV1 implements MODERATOR_REQUEST: a sponsoring
// petition naming a destination address (S2) to be considered for
// moderator status. Beyond the kind, address and time that every
// canonical hash covers, its hash depends only on that destination
// address.
type moderatorRequestValidatorV1 struct{}

func newModeratorRequestValidatorV1() Validator { return moderatorRequestValidatorV1{} }

var moderatorRequestRegistry = NewCheckpointRegistry(CheckpointEntry[Validator]{
	Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newModeratorRequestValidatorV1,
})

func (moderatorRequestValidatorV1) Check(tx *Transaction) error {
	if tx.S2 == "" {
		return ErrMalformed
	}
	return nil
}

func (v moderatorRequestValidatorV1) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if block != nil {
		return v.ValidateBlock(ctx, tx, block)
	}
	return v.ValidateMempool(ctx, tx)
}

func (moderatorRequestValidatorV1) validateChain(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	if err := requireRegistered(ctx, tx.S2, block); err != nil {
		return err
	}
	already, err := ctx.Repo.ExistsModerator(tx.S2)
	if err != nil {
		return err
	}
	if already {
		return ErrManyTransactions
	}
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindModeratorRequest && t.Address == tx.Address && t.S2 == tx.S2 && t.Hash != tx.Hash
	}) {
		return ErrManyTransactions
	}
	return nil
}

func (v moderatorRequestValidatorV1) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	if err := v.validateChain(ctx, tx, nil); err != nil {
		return err
	}
	n, err := ctx.Repo.CountMempool(KindModeratorRequest, tx.Address, tx.S2)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrManyTransactions
	}
	return nil
}

func (v moderatorRequestValidatorV1) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	return v.validateChain(ctx, tx, block)
}

// moderationFlagValidatorV1 implements MODERATION_FLAG: a registered
// account flags content (target_hash, S2) for moderation review. The
// flag's own hash becomes the flag_hash later votes attach to.
type moderationFlagValidatorV1 struct{}

func newModerationFlagValidatorV1() Validator { return moderationFlagValidatorV1{} }

var moderationFlagRegistry = NewCheckpointRegistry(CheckpointEntry[Validator]{
	Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newModerationFlagValidatorV1,
})

func (moderationFlagValidatorV1) Check(tx *Transaction) error {
	if tx.S2 == "" {
		return ErrMalformed
	}
	return nil
}

func (moderationFlagValidatorV1) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	exists, err := ctx.Repo.ExistsContent(tx.S2)
	if err != nil {
		return err
	}
	if !exists && !existsInBlock(block, func(t *Transaction) bool { return t.Hash == tx.S2 }) {
		return ErrNotFound
	}
	return nil
}

func (v moderationFlagValidatorV1) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	return v.Validate(ctx, tx, nil)
}

func (v moderationFlagValidatorV1) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	return v.Validate(ctx, tx, block)
}

// moderationVoteValidatorV1 implements MODERATION_VOTE: a juror casts a
// vote (target_hash S2, flag_hash S3) on an outstanding flag. The jury
// for flag_hash is drawn deterministically by ValidationContext's
// JurySelector over the moderator roster at the flag's height (the
// evaluation height when the flag's height is not known to the
// repository).
type moderationVoteValidatorV1 struct{}

func newModerationVoteValidatorV1() Validator { return moderationVoteValidatorV1{} }

var moderationVoteRegistry = NewCheckpointRegistry(CheckpointEntry[Validator]{
	Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newModerationVoteValidatorV1,
})

func (moderationVoteValidatorV1) Check(tx *Transaction) error {
	if tx.S2 == "" || tx.S3 == "" {
		return ErrMalformed
	}
	return nil
}

func (moderationVoteValidatorV1) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := requireRegistered(ctx, tx.Address, block); err != nil {
		return err
	}
	isModerator, err := ctx.Repo.ExistsModerator(tx.Address)
	if err != nil {
		return err
	}
	if !isModerator {
		return ErrNotRegistered
	}

	juryHeight := ctx.Height
	flagHeight, known, err := ctx.Repo.GetTransactionHeight(tx.S3)
	if err != nil {
		return err
	}
	if known {
		juryHeight = flagHeight
	}
	moderators, err := ctx.Repo.ListModerators(juryHeight)
	if err != nil {
		return err
	}
	jury := ctx.Jury.Select(tx.S3, juryHeight, moderators)
	if !inJury(jury, tx.Address) {
		return ErrNotRegistered
	}

	dup, err := ctx.Repo.ExistsModerationVote(tx.Address, tx.S3, true)
	if err != nil {
		return err
	}
	if dup {
		return ErrManyTransactions
	}
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindModerationVote && t.Address == tx.Address && t.S3 == tx.S3 && t.Hash != tx.Hash
	}) {
		return ErrManyTransactions
	}
	return nil
}

func (v moderationVoteValidatorV1) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	return v.Validate(ctx, tx, nil)
}

func (v moderationVoteValidatorV1) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	return v.Validate(ctx, tx, block)
}

package core

import (
	"fmt"
	"strings"
)

const maxNicknameLength = 20

// userValidatorV1 implements ACCOUNT_USER / ACCOUNT_DELETE. There is a
// single checkpoint version: the original rule set has not been revised
// since the distilled spec was cut (§4.6.1).
type userValidatorV1 struct{}

func newUserValidatorV1() Validator { return userValidatorV1{} }

var userRegistry = NewCheckpointRegistry(CheckpointEntry[Validator]{
	Version: "v1", MainHeight: 0, TestHeight: 0, AltHeight: 0, Factory: newUserValidatorV1,
})

func isValidNicknameChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		return true
	default:
		return false
	}
}

func (userValidatorV1) Check(tx *Transaction) error {
	if tx.Kind == KindAccountDelete {
		return nil
	}
	if tx.Payload == nil {
		return fmt.Errorf("%w: missing payload", ErrMalformed)
	}
	name := tx.Payload.S2
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrMalformed)
	}
	if strings.HasPrefix(name, "%20") || strings.HasSuffix(name, "%20") ||
		strings.HasPrefix(name, " ") || strings.HasSuffix(name, " ") {
		return fmt.Errorf("%w: padded name", ErrMalformed)
	}
	lower := normalizedName(name)
	if len(lower) > maxNicknameLength {
		return ErrNicknameLong
	}
	for _, r := range lower {
		if !isValidNicknameChar(r) {
			return fmt.Errorf("%w: invalid name character", ErrMalformed)
		}
	}
	if tx.S2 != "" && tx.S2 == tx.Address {
		return ErrReferrerSelf
	}
	return nil
}

func (v userValidatorV1) Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if block != nil {
		return v.ValidateBlock(ctx, tx, block)
	}
	return v.ValidateMempool(ctx, tx)
}

func (userValidatorV1) checkCommon(ctx *ValidationContext, tx *Transaction) error {
	if tx.Kind == KindAccountDelete {
		lastKind, ok, err := ctx.Repo.GetLastAccountType(tx.Address)
		if err != nil {
			return err
		}
		if !ok || lastKind == KindAccountDelete {
			return ErrNotRegistered
		}
		return nil
	}

	lastKind, ok, err := ctx.Repo.GetLastAccountType(tx.Address)
	if err != nil {
		return err
	}
	if ok && lastKind == KindAccountDelete {
		return ErrAccountDeleted
	}

	lower := normalizedName(tx.Payload.S2)
	dup, err := ctx.Repo.ExistsAnotherByName(tx.Address, lower)
	if err != nil {
		return err
	}
	if dup {
		return ErrNicknameDouble
	}

	editLimit, _ := ctx.Limits.Get(ParamEditAccountDailyCount, ctx.Network, ctx.Height)
	window, _ := ctx.Limits.Get(ParamEditAccountDepth, ctx.Network, ctx.Height)
	n, err := ctx.Repo.CountWindow(KindAccountUser, tx.Address, "", WindowSeconds, tx.Time-window, tx.Time, tx.Hash)
	if err != nil {
		return err
	}
	if editLimit > 0 && int64(n) >= editLimit {
		return ErrChangeInfoLimit
	}
	return nil
}

func (v userValidatorV1) ValidateMempool(ctx *ValidationContext, tx *Transaction) error {
	if err := v.checkCommon(ctx, tx); err != nil {
		return err
	}
	n, err := ctx.Repo.CountMempool(KindAccountUser, tx.Address, "")
	if err != nil {
		return err
	}
	n2, err := ctx.Repo.CountMempool(KindAccountDelete, tx.Address, "")
	if err != nil {
		return err
	}
	if n+n2 > 0 {
		return ErrChangeInfoDoubleInMempool
	}
	return nil
}

func (v userValidatorV1) ValidateBlock(ctx *ValidationContext, tx *Transaction, block []*Transaction) error {
	if err := v.checkCommon(ctx, tx); err != nil {
		return err
	}
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Address == tx.Address && (t.Kind == KindAccountUser || t.Kind == KindAccountDelete)
	}) {
		return ErrChangeInfoDoubleInBlock
	}
	if tx.Kind == KindAccountUser {
		lower := normalizedName(tx.Payload.S2)
		if existsInBlock(block, func(t *Transaction) bool {
			return t.Kind == KindAccountUser && t.Address != tx.Address &&
				t.Payload != nil && normalizedName(t.Payload.S2) == lower
		}) {
			return ErrNicknameDouble
		}
	}
	return nil
}

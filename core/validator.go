package core

import "strings"

// ValidationContext is the immutable, call-scoped context every validator
// reads from. It is assembled by the Consensus Helper (C7) and never
// mutated; the core holds nothing between calls (§5).
type ValidationContext struct {
	Repo    Repository
	Limits  *LimitTable
	Escapes *EscapeRegistry
	Jury    JurySelector
	Network Network
	// Height is the height at which rules are evaluated: the target
	// block height when validating a block member, or the height the
	// host considers "next" when validating a mempool candidate. It is
	// always supplied by the caller; the core never infers it (§5, §9).
	Height Height
}

// Validator is the contract every per-kind checkpoint version implements
// (C6). Implementations are immutable value objects bound to one height's
// worth of rules by the Checkpoint Registry; they hold no state.
type Validator interface {
	// Check is context-free well-formedness: required fields, ranges,
	// self-reference bans, payload size.
	Check(tx *Transaction) error

	// ValidateMempool applies chain + mempool context rules.
	ValidateMempool(ctx *ValidationContext, tx *Transaction) error

	// ValidateBlock applies chain context rules plus the transactions
	// already accepted earlier in the same block.
	ValidateBlock(ctx *ValidationContext, tx *Transaction, blockSoFar []*Transaction) error

	// Validate is the entry point: kind-specific chain checks, then
	// ValidateMempool or ValidateBlock depending on whether block is
	// nil.
	Validate(ctx *ValidationContext, tx *Transaction, block []*Transaction) error
}

// countInBlock is the in-block side of the shared count predicate (§9):
// every validator states its predicate once and applies it against the
// chain (via Repository), the mempool (via Repository), and the in-block
// slice (via this helper).
func countInBlock(block []*Transaction, pred func(*Transaction) bool) int {
	n := 0
	for _, tx := range block {
		if pred(tx) {
			n++
		}
	}
	return n
}

func existsInBlock(block []*Transaction, pred func(*Transaction) bool) bool {
	for _, tx := range block {
		if pred(tx) {
			return true
		}
	}
	return false
}

// findInBlock returns the first transaction in block matching pred.
func findInBlock(block []*Transaction, pred func(*Transaction) bool) (*Transaction, bool) {
	for _, tx := range block {
		if pred(tx) {
			return tx, true
		}
	}
	return nil, false
}

// requireRegistered enforces the shared registration precondition every
// kind not explicitly exempted is bound by: the named address must have
// an ACCOUNT_USER visible in chain, the same block, or mempool, and must
// not be tombstoned by an ACCOUNT_DELETE (§4.6, §4.9).
func requireRegistered(ctx *ValidationContext, address string, block []*Transaction) error {
	lastKind, ok, err := ctx.Repo.GetLastAccountType(address)
	if err != nil {
		return err
	}
	if ok {
		if lastKind == KindAccountDelete {
			return ErrAccountDeleted
		}
		return nil
	}
	if existsInBlock(block, func(t *Transaction) bool {
		return t.Kind == KindAccountUser && t.Address == address
	}) {
		return nil
	}
	exists, err := ctx.Repo.ExistsAccount(address)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	n, err := ctx.Repo.CountMempool(KindAccountUser, address, "")
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return ErrNotRegistered
}

// normalizedName lower-cases a display name the way name-uniqueness
// comparisons require (§4.6.1).
func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func maybeEscape(ctx *ValidationContext, tx *Transaction, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Escapes.Allow(tx.Hash, tx.Kind, err) {
		return nil
	}
	return err
}

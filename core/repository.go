package core

// WindowUnit selects whether a window's from/to bounds are epoch seconds
// or block heights. Pre-checkpoint rules window by time; post-checkpoint
// rules window by height (§4.6.2, §4.6.4).
type WindowUnit int

const (
	WindowSeconds WindowUnit = iota
	WindowHeight
)

// Repository is the read-only port every validator consumes (C2). An
// implementation is injected by the host; the core never mutates it and
// never caches across calls (§5). All filtering beyond the operation's
// own parameters lives in the calling validator, not in the repository.
type Repository interface {
	// ExistsAccount reports whether an ACCOUNT_USER for address exists
	// anywhere visible to the caller (chain only; mempool/block presence
	// is checked separately by the caller, which also has the in-block
	// view).
	ExistsAccount(address string) (bool, error)

	// ExistsContent reports whether a content transaction with this hash
	// exists in the chain.
	ExistsContent(hash string) (bool, error)

	// CountWindow counts chain transactions of kind authored by address
	// (optionally further keyed by extraKey, e.g. a target address) whose
	// time or height — per unit — falls in [from, to]. excludeHash, if
	// non-empty, is skipped from the count (used by the one-to-one and
	// lottery reputation checks to exclude the candidate itself).
	CountWindow(kind Kind, address, extraKey string, unit WindowUnit, from, to int64, excludeHash string) (int, error)

	// ListWindow is CountWindow's record-returning counterpart, used
	// where a validator must filter by a field CountWindow cannot key on
	// (e.g. score value for the lottery check).
	ListWindow(kind Kind, address, extraKey string, unit WindowUnit, from, to int64) ([]*Transaction, error)

	// CountEdits counts edits (kind, root_tx_hash) in the chain,
	// excluding the first version.
	CountEdits(kind Kind, rootTxHash string) (int, error)

	// CountActive counts distinct (kind, root_tx_hash) roots authored by
	// address whose newest version is still kind itself rather than a
	// tombstone — used by limits on the number of simultaneously live
	// items a single address may hold (e.g. barter offers, §4.6.9).
	CountActive(kind Kind, address string) (int, error)

	// GetLast returns the chronologically newest chain record for
	// (kind, rootTxHash), if any.
	GetLast(kind Kind, rootTxHash string) (*Transaction, bool, error)

	// GetLastAccountType returns the kind of the newest ACCOUNT_USER or
	// ACCOUNT_DELETE chain record for address.
	GetLastAccountType(address string) (Kind, bool, error)

	// GetLastSubscribeType returns the kind of the newest Subscribe-
	// family chain record for (from, to).
	GetLastSubscribeType(from, to string) (Kind, bool, error)

	// GetLastBlockingType returns the kind of the newest Blocking-family
	// chain record for (from, to).
	GetLastBlockingType(from, to string) (Kind, bool, error)

	// ExistsScore reports whether scorer already scored target with this
	// kind in the chain, or in mempool when includeMempool is set.
	ExistsScore(scorer, target string, kind Kind, includeMempool bool) (bool, error)

	// ExistsAnotherByName reports whether some address other than
	// address already holds lowerName as its current display name.
	ExistsAnotherByName(address, lowerName string) (bool, error)

	// CountMempool counts mempool candidates of kind authored by address,
	// optionally further keyed by extraKey.
	CountMempool(kind Kind, address, extraKey string) (int, error)

	// GetUserReputation returns address's derived reputation score as of
	// height (§4.4 reads height-1 for gating; callers pass the height
	// they mean).
	GetUserReputation(address string, height Height) (int64, error)

	// GetUserBalance returns address's coin balance as of height.
	GetUserBalance(address string, height Height) (int64, error)

	// GetTransactionHeight returns the committed height of hash, if any.
	GetTransactionHeight(hash string) (Height, bool, error)

	// ExistsModerator reports whether address currently holds moderator
	// status (a live MODERATOR_REGISTER with no later revocation), used
	// by the moderation family's jury-membership and voter-eligibility
	// checks (§4.6.10, §4.9).
	ExistsModerator(address string) (bool, error)

	// ListModerators returns the roster of addresses holding moderator
	// status as of height, the pool JurySelector draws a jury from.
	ListModerators(height Height) ([]string, error)

	// ExistsModerationVote reports whether voter already cast a
	// MODERATION_VOTE against flagHash, in the chain or, when
	// includeMempool is set, in the mempool.
	ExistsModerationVote(voter, flagHash string, includeMempool bool) (bool, error)
}

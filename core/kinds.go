package core

// Kind tags the variant a Transaction carries. Numeric values are stable
// and must never be renumbered once a network has committed transactions
// carrying them.
type Kind int

const (
	KindUnknown Kind = 0

	// Money envelope, pass-through — not validated by the social core.
	KindTxDefault   Kind = 1
	KindTxCoinbase  Kind = 2
	KindTxCoinstake Kind = 3

	// Account.
	KindAccountUser   Kind = 100
	KindAccountDelete Kind = 101

	// Content.
	KindContentPost          Kind = 200
	KindContentVideo         Kind = 201
	KindContentComment       Kind = 204
	KindContentCommentEdit   Kind = 205
	KindContentCommentDelete Kind = 206
	KindContentDelete        Kind = 207

	// Action.
	KindActionScoreContent      Kind = 300
	KindActionScoreComment      Kind = 301
	KindActionSubscribe         Kind = 302
	KindActionSubscribePrivate  Kind = 303
	KindActionSubscribeCancel   Kind = 304
	KindActionBlocking          Kind = 305
	KindActionBlockingCancel    Kind = 306
	KindActionComplain          Kind = 307

	// Moderation.
	KindModerationFlag    Kind = 410
	KindModerationVote    Kind = 411
	KindModeratorRegister Kind = 412
	KindModeratorRequest  Kind = 413

	// Barter.
	KindBarteronAccount Kind = 420
	KindBarteronOffer   Kind = 421
)

var kindNames = map[Kind]string{
	KindTxDefault:            "TX_DEFAULT",
	KindTxCoinbase:           "TX_COINBASE",
	KindTxCoinstake:          "TX_COINSTAKE",
	KindAccountUser:          "ACCOUNT_USER",
	KindAccountDelete:        "ACCOUNT_DELETE",
	KindContentPost:          "CONTENT_POST",
	KindContentVideo:         "CONTENT_VIDEO",
	KindContentComment:       "CONTENT_COMMENT",
	KindContentCommentEdit:   "CONTENT_COMMENT_EDIT",
	KindContentCommentDelete: "CONTENT_COMMENT_DELETE",
	KindContentDelete:        "CONTENT_DELETE",
	KindActionScoreContent:   "ACTION_SCORE_CONTENT",
	KindActionScoreComment:   "ACTION_SCORE_COMMENT",
	KindActionSubscribe:      "ACTION_SUBSCRIBE",
	KindActionSubscribePrivate: "ACTION_SUBSCRIBE_PRIVATE",
	KindActionSubscribeCancel:  "ACTION_SUBSCRIBE_CANCEL",
	KindActionBlocking:         "ACTION_BLOCKING",
	KindActionBlockingCancel:   "ACTION_BLOCKING_CANCEL",
	KindActionComplain:         "ACTION_COMPLAIN",
	KindModerationFlag:         "MODERATION_FLAG",
	KindModerationVote:         "MODERATION_VOTE",
	KindModeratorRegister:      "MODERATOR_REGISTER",
	KindModeratorRequest:       "MODERATOR_REQUEST",
	KindBarteronAccount:        "BARTERON_ACCOUNT",
	KindBarteronOffer:          "BARTERON_OFFER",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseKindName resolves a kind's canonical name, e.g. "CONTENT_POST",
// back to its numeric Kind. Used by operator tooling that accepts kind
// names on the command line rather than raw numeric values.
func ParseKindName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// IsMonetary reports whether a kind belongs to the money envelope and is
// skipped entirely by the social consensus dispatch.
func (k Kind) IsMonetary() bool {
	switch k {
	case KindTxDefault, KindTxCoinbase, KindTxCoinstake:
		return true
	default:
		return false
	}
}

// IsEditable reports whether a kind carries a root_tx_hash distinct from
// its own hash once it is the second or later version of some content.
func (k Kind) IsEditable() bool {
	switch k {
	case KindContentPost, KindContentVideo, KindContentComment, KindContentCommentEdit, KindContentCommentDelete, KindBarteronOffer:
		return true
	default:
		return false
	}
}

// IsContent reports whether a kind is content that other kinds (scores,
// comments, complaints) can target by hash.
func (k Kind) IsContent() bool {
	switch k {
	case KindContentPost, KindContentVideo:
		return true
	default:
		return false
	}
}

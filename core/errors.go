package core

// ErrorKind is the fixed outcome enumeration every validator and the two
// Consensus Helper entry points return. A nil error means Success. Values
// satisfy the standard error interface so callers can use errors.Is.
type ErrorKind string

func (e ErrorKind) Error() string { return string(e) }

const (
	ErrUnknown     ErrorKind = "Unknown"
	ErrFailed      ErrorKind = "Failed"
	ErrMalformed   ErrorKind = "Malformed"
	ErrUnsupportedKind ErrorKind = "UnsupportedKind"
	ErrFailedOpReturn  ErrorKind = "FailedOpReturn"
	ErrNotRegistered   ErrorKind = "NotRegistered"
	ErrNotFound        ErrorKind = "NotFound"

	ErrPostLimit             ErrorKind = "PostLimit"
	ErrPostEditLimit         ErrorKind = "PostEditLimit"
	ErrContentEditUnauthorized ErrorKind = "ContentEditUnauthorized"
	ErrContentLimit          ErrorKind = "ContentLimit"
	ErrContentEditLimit      ErrorKind = "ContentEditLimit"
	ErrDoubleContentEdit     ErrorKind = "DoubleContentEdit"
	ErrContentSizeLimit      ErrorKind = "ContentSizeLimit"

	ErrScoreLimit   ErrorKind = "ScoreLimit"
	ErrSelfScore    ErrorKind = "SelfScore"
	ErrDoubleScore  ErrorKind = "DoubleScore"

	ErrCommentScoreLimit ErrorKind = "CommentScoreLimit"
	ErrSelfCommentScore  ErrorKind = "SelfCommentScore"
	ErrDoubleCommentScore ErrorKind = "DoubleCommentScore"

	ErrComplainLimit ErrorKind = "ComplainLimit"
	ErrSelfComplain  ErrorKind = "SelfComplain"
	ErrDoubleComplain ErrorKind = "DoubleComplain"
	ErrLowReputation ErrorKind = "LowReputation"

	ErrNicknameLong   ErrorKind = "NicknameLong"
	ErrNicknameDouble ErrorKind = "NicknameDouble"
	ErrChangeInfoLimit          ErrorKind = "ChangeInfoLimit"
	ErrChangeInfoDoubleInBlock  ErrorKind = "ChangeInfoDoubleInBlock"
	ErrChangeInfoDoubleInMempool ErrorKind = "ChangeInfoDoubleInMempool"
	ErrReferrerSelf   ErrorKind = "ReferrerSelf"
	ErrAccountDeleted ErrorKind = "AccountDeleted"

	ErrSelfSubscribe  ErrorKind = "SelfSubscribe"
	ErrDoubleSubscribe ErrorKind = "DoubleSubscribe"
	ErrInvalidSubscribe ErrorKind = "InvalidSubscribe"

	ErrSelfBlocking   ErrorKind = "SelfBlocking"
	ErrDoubleBlocking ErrorKind = "DoubleBlocking"
	ErrInvalidBlocking ErrorKind = "InvalidBlocking"

	ErrManyTransactions ErrorKind = "ManyTransactions"
	ErrBlocking         ErrorKind = "Blocking"
	ErrExceededLimit    ErrorKind = "ExceededLimit"
)

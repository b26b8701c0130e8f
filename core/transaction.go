package core

// Height is a block height, or the sentinel MempoolHeight for a candidate
// that has not yet been included in a block.
type Height int64

// MempoolHeight marks a transaction that is only a mempool candidate.
const MempoolHeight Height = -1

// IsMempool reports whether h denotes a mempool candidate rather than a
// committed block height.
func (h Height) IsMempool() bool { return h < 0 }

// Payload carries the up-to-seven string slots and single integer slot
// used by human-readable or moderated content (post body, user profile
// fields, comment text, barter offer body). A nil Payload and a Payload
// whose slots are all empty strings are equivalent for hashing purposes.
type Payload struct {
	S1, S2, S3, S4, S5, S6, S7 string
	I1                         int64
}

// Transaction is the typed record the social consensus core operates on.
// Slot fields S2..S5 and I1 are kind-specific; see the per-kind validator
// files for the meaning each kind assigns to them.
type Transaction struct {
	Hash    string
	Kind    Kind
	Time    int64
	Height  Height
	Address string // s1: the authoring address for every kind.

	S2 string
	S3 string
	S4 string
	S5 string
	I1 int64

	Payload *Payload

	// OpReturnHex is the envelope's raw op_return payload, hex-encoded.
	// Only score kinds bind it to anything (§4.1, §6); other kinds carry
	// it through unexamined.
	OpReturnHex string
}

// RootTxHash returns the editable root identifier for kinds where S2 holds
// it (Post, Video, the Comment family, BarteronOffer). IsEdit reports root != hash.
func (t *Transaction) RootTxHash() string {
	if t.Kind.IsEditable() {
		return t.S2
	}
	return t.Hash
}

// IsEdit reports whether t is a later version of an editable root rather
// than the first version.
func (t *Transaction) IsEdit() bool {
	return t.Kind.IsEditable() && t.S2 != "" && t.S2 != t.Hash
}

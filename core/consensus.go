package core

import "github.com/sirupsen/logrus"

// ConsensusHelper is the Consensus Helper (C7): the two entry points the
// envelope layer and block-acceptance path call into. It owns the full
// set of per-kind checkpoint registries and dispatches by Kind, threading
// a single ValidationContext through Check and Validate.
type ConsensusHelper struct {
	registries map[Kind]*CheckpointRegistry[Validator]
	log        *logrus.Entry
}

// NewConsensusHelper builds the dispatcher's fixed kind→registry map. The
// map itself never changes after construction; only what Instance returns
// for a given height varies (§6: "activation heights ... are the sole
// knob for protocol evolution").
func NewConsensusHelper(log *logrus.Logger) *ConsensusHelper {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ConsensusHelper{
		log: log.WithField("component", "consensus_helper"),
		registries: map[Kind]*CheckpointRegistry[Validator]{
			KindAccountUser:            userRegistry,
			KindAccountDelete:          userRegistry,
			KindContentPost:            contentRegistry,
			KindContentVideo:           contentRegistry,
			KindContentComment:         commentRegistry,
			KindContentCommentEdit:     commentRegistry,
			KindContentCommentDelete:   commentRegistry,
			KindContentDelete:          contentDeleteRegistry,
			KindActionScoreContent:     scoreContentRegistry,
			KindActionScoreComment:     scoreCommentRegistry,
			KindActionSubscribe:        subscribeRegistry,
			KindActionSubscribePrivate: subscribeRegistry,
			KindActionSubscribeCancel:  subscribeRegistry,
			KindActionBlocking:         blockingRegistry,
			KindActionBlockingCancel:   blockingRegistry,
			KindActionComplain:         complainRegistry,
			KindModerationFlag:         moderationFlagRegistry,
			KindModerationVote:         moderationVoteRegistry,
			KindModeratorRegister:      moderatorRegisterRegistry,
			KindModeratorRequest:       moderatorRequestRegistry,
			KindBarteronOffer:          barteronOfferRegistry,
			KindBarteronAccount:        barteronAccountRegistry,
		},
	}
}

// resolve returns the active validator for kind at (network, height), nil
// with no error for pass-through monetary kinds, or ErrUnknown for any
// kind dispatch does not recognize or that has no active checkpoint entry
// yet (§4.7).
func (c *ConsensusHelper) resolve(kind Kind, network Network, height Height) (Validator, error) {
	switch kind {
	case KindTxDefault, KindTxCoinbase, KindTxCoinstake:
		return nil, nil
	}
	registry, known := c.registries[kind]
	if !known {
		return nil, ErrUnknown
	}
	v, ok := registry.Instance(network, height)
	if !ok {
		return nil, ErrUnknown
	}
	return v, nil
}

// ValidateTransaction is the mempool-facing entry point: validate a
// single candidate against chain + mempool context.
func (c *ConsensusHelper) ValidateTransaction(ctx *ValidationContext, tx *Transaction) error {
	v, err := c.resolve(tx.Kind, ctx.Network, ctx.Height)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	if err := VerifyHash(tx); err != nil {
		return maybeEscape(ctx, tx, err)
	}
	if err := v.Check(tx); err != nil {
		return maybeEscape(ctx, tx, err)
	}
	return maybeEscape(ctx, tx, v.Validate(ctx, tx, nil))
}

// ValidateBlock is the block-acceptance entry point: validate records in
// order, each against chain context plus every record accepted earlier in
// this same block. The first failure aborts with that record's error and
// the block is rejected as a whole.
func (c *ConsensusHelper) ValidateBlock(ctx *ValidationContext, txs []*Transaction) error {
	accepted := make([]*Transaction, 0, len(txs))
	for i, tx := range txs {
		v, err := c.resolve(tx.Kind, ctx.Network, ctx.Height)
		if err != nil {
			c.log.WithFields(logrus.Fields{"index": i, "kind": tx.Kind.String(), "hash": tx.Hash}).
				Warn("block rejected: unknown kind")
			return err
		}
		if v == nil {
			accepted = append(accepted, tx)
			continue
		}

		err = VerifyHash(tx)
		if err == nil {
			err = v.Check(tx)
		}
		if err == nil {
			err = v.Validate(ctx, tx, accepted)
		}
		if err = maybeEscape(ctx, tx, err); err != nil {
			c.log.WithFields(logrus.Fields{
				"index": i, "kind": tx.Kind.String(), "hash": tx.Hash, "error": err.Error(),
			}).Warn("block rejected")
			return err
		}
		accepted = append(accepted, tx)
	}
	return nil
}

package core

// AccountMode is Full or Trial, selecting which daily-limit parameter
// value applies to an address (§4.3, §4.4).
type AccountMode int

const (
	ModeTrial AccountMode = iota
	ModeFull
)

func (m AccountMode) String() string {
	if m == ModeFull {
		return "Full"
	}
	return "Trial"
}

// AccountInfo is the derived (mode, reputation, balance) triple for an
// address at a height.
type AccountInfo struct {
	Mode       AccountMode
	Reputation int64
	Balance    int64
}

// AccountInfoAt fetches reputation at height-1 and balance at height, and
// classifies the account's mode against the configured thresholds (§4.4.1).
func AccountInfoAt(ctx *ValidationContext, address string) (AccountInfo, error) {
	rep, err := ctx.Repo.GetUserReputation(address, ctx.Height-1)
	if err != nil {
		return AccountInfo{}, err
	}
	bal, err := ctx.Repo.GetUserBalance(address, ctx.Height)
	if err != nil {
		return AccountInfo{}, err
	}
	thrRep, _ := ctx.Limits.Get(ParamThresholdReputation, ctx.Network, ctx.Height)
	thrBal, _ := ctx.Limits.Get(ParamThresholdBalance, ctx.Network, ctx.Height)

	mode := ModeTrial
	if rep >= thrRep || bal >= thrBal {
		mode = ModeFull
	}
	return AccountInfo{Mode: mode, Reputation: rep, Balance: bal}, nil
}

// AllowModifyReputation is false if scorer's reputation is below the
// scoring eligibility threshold (§4.4.2).
func AllowModifyReputation(ctx *ValidationContext, scorer string) (bool, error) {
	rep, err := ctx.Repo.GetUserReputation(scorer, ctx.Height)
	if err != nil {
		return false, err
	}
	threshold, _ := ctx.Limits.Get(ParamThresholdReputationScore, ctx.Network, ctx.Height)
	return rep >= threshold, nil
}

const dayInSeconds = 24 * 60 * 60

// AllowReputationOneToOne is false if scorer has already scored author's
// content at least scores_one_to_one times in the last 24 hours,
// excluding txHash itself (§4.4.3).
func AllowReputationOneToOne(ctx *ValidationContext, scorer, author, txHash string, txTime int64) (bool, error) {
	cap_, _ := ctx.Limits.Get(ParamScoresOneToOne, ctx.Network, ctx.Height)
	if cap_ <= 0 {
		return true, nil
	}
	n, err := ctx.Repo.CountWindow(KindActionScoreContent, scorer, author, WindowSeconds, txTime-dayInSeconds, txTime, txHash)
	if err != nil {
		return false, err
	}
	return int64(n) < cap_, nil
}

// AllowLottery is AllowReputationOneToOne restricted to scores of value
// 4 or 5 (§4.4.4).
func AllowLottery(ctx *ValidationContext, scorer, author, txHash string, txTime int64) (bool, error) {
	cap_, _ := ctx.Limits.Get(ParamScoresOneToOne, ctx.Network, ctx.Height)
	if cap_ <= 0 {
		return true, nil
	}
	recs, err := ctx.Repo.ListWindow(KindActionScoreContent, scorer, author, WindowSeconds, txTime-dayInSeconds, txTime)
	if err != nil {
		return false, err
	}
	count := int64(0)
	for _, r := range recs {
		if r.Hash == txHash {
			continue
		}
		if r.I1 == 4 || r.I1 == 5 {
			count++
		}
	}
	return count < cap_, nil
}

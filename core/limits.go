package core

import "sort"

// Network identifies which chain parameter set and checkpoint ladder
// applies — main, test, or alt (§4.5, §6).
type Network string

const (
	NetworkMain Network = "main"
	NetworkTest Network = "test"
	NetworkAlt  Network = "alt"
)

// Parameter names a Limit Table knob (§4.3). Values are normative names;
// the activation-height-indexed values behind them are network-specific.
type Parameter string

const (
	ParamThresholdReputation Parameter = "threshold_reputation"
	ParamThresholdBalance    Parameter = "threshold_balance"

	ParamFullPostLimit     Parameter = "full_post_limit"
	ParamTrialPostLimit    Parameter = "trial_post_limit"
	ParamFullPostEditLimit Parameter = "full_post_edit_limit"
	ParamTrialPostEditLimit Parameter = "trial_post_edit_limit"

	ParamFullScoreLimit  Parameter = "full_score_limit"
	ParamTrialScoreLimit Parameter = "trial_score_limit"

	ParamFullComplainLimit  Parameter = "full_complain_limit"
	ParamTrialComplainLimit Parameter = "trial_complain_limit"

	ParamFullCommentScore  Parameter = "full_comment_score"
	ParamTrialCommentScore Parameter = "trial_comment_score"

	ParamDepth           Parameter = "depth"
	ParamEditPostTimeout Parameter = "edit_post_timeout"
	ParamEditAccountDepth Parameter = "edit_account_depth"

	ParamThresholdReputationComplains Parameter = "threshold_reputation_complains"
	ParamThresholdReputationScore     Parameter = "threshold_reputation_score"
	ParamThresholdReputationBlocking  Parameter = "threshold_reputation_blocking"
	ParamScoresOneToOne               Parameter = "scores_one_to_one"

	ParamMaxPostSize            Parameter = "max_post_size"
	ParamMaxUserSize            Parameter = "max_user_size"
	ParamMaxBarteronRequestSize Parameter = "max_barteron_request_size"

	ParamEditAccountDailyCount Parameter = "edit_account_daily_count"
	ParamMaxActiveCount        Parameter = "max_active_count"
)

// rung is one activation-height step of a parameter's value ladder.
type rung struct {
	Height int64
	Value  int64
}

// LimitTable is a height-indexed lookup of numeric rule parameters per
// network (C3). It is immutable after construction.
type LimitTable struct {
	ladders map[Parameter]map[Network][]rung
}

// NewLimitTable builds a LimitTable from raw activation-height maps. The
// shape matches what config.go decodes from YAML: for each parameter, for
// each network, a map of activation height to value.
func NewLimitTable(raw map[Parameter]map[Network]map[int64]int64) *LimitTable {
	lt := &LimitTable{ladders: make(map[Parameter]map[Network][]rung, len(raw))}
	for param, byNetwork := range raw {
		lt.ladders[param] = make(map[Network][]rung, len(byNetwork))
		for network, byHeight := range byNetwork {
			rungs := make([]rung, 0, len(byHeight))
			for h, v := range byHeight {
				rungs = append(rungs, rung{Height: h, Value: v})
			}
			sort.Slice(rungs, func(i, j int) bool { return rungs[i].Height < rungs[j].Height })
			lt.ladders[param][network] = rungs
		}
	}
	return lt
}

// Get returns the value of param on network whose activation height is
// the largest one not exceeding height, and whether any rung applied.
func (lt *LimitTable) Get(param Parameter, network Network, height Height) (int64, bool) {
	if lt == nil {
		return 0, false
	}
	rungs := lt.ladders[param][network]
	if len(rungs) == 0 {
		return 0, false
	}
	h := int64(height)
	best, found := int64(0), false
	for _, r := range rungs {
		if r.Height <= h {
			best = r.Value
			found = true
		}
	}
	return best, found
}

// MustGet is Get with a zero-value fallback, for call sites where an
// absent rung means "feature not active" rather than an error.
func (lt *LimitTable) MustGet(param Parameter, network Network, height Height) int64 {
	v, _ := lt.Get(param, network, height)
	return v
}

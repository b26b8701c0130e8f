package core_test

import (
	"testing"

	"socialconsensus/core"
	"socialconsensus/memrepo"
)

func newLimits(t *testing.T) *core.LimitTable {
	t.Helper()
	return core.NewLimitTable(map[core.Parameter]map[core.Network]map[int64]int64{
		core.ParamThresholdReputation:      {core.NetworkMain: {0: 500}},
		core.ParamThresholdBalance:         {core.NetworkMain: {0: 50}},
		core.ParamThresholdReputationScore: {core.NetworkMain: {0: 500}},
		core.ParamScoresOneToOne:           {core.NetworkMain: {0: 1}},
	})
}

func TestAccountInfoAtClassifiesFullByReputation(t *testing.T) {
	repo := memrepo.New(0)
	addr := memrepo.NewFixtureAddress("alice")
	repo.SetReputation(addr, 1000)

	ctx := &core.ValidationContext{Repo: repo, Limits: newLimits(t), Network: core.NetworkMain, Height: core.Height(10)}
	info, err := core.AccountInfoAt(ctx, addr)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode != core.ModeFull {
		t.Fatalf("want Full, got %s", info.Mode)
	}
}

func TestAccountInfoAtClassifiesTrialBelowBothThresholds(t *testing.T) {
	repo := memrepo.New(0)
	addr := memrepo.NewFixtureAddress("bob")

	ctx := &core.ValidationContext{Repo: repo, Limits: newLimits(t), Network: core.NetworkMain, Height: core.Height(10)}
	info, err := core.AccountInfoAt(ctx, addr)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode != core.ModeTrial {
		t.Fatalf("want Trial, got %s", info.Mode)
	}
}

func TestAllowReputationOneToOneExcludesCandidateHash(t *testing.T) {
	repo := memrepo.New(0)
	scorer := memrepo.NewFixtureAddress("scorer")
	author := memrepo.NewFixtureAddress("author")

	score := memrepo.NewFixtureTransaction(core.KindActionScoreContent, scorer, 5000, core.Height(10))
	score.S2 = author
	score.I1 = 5
	memrepo.FillHash(score)
	repo.Commit(score)

	ctx := &core.ValidationContext{Repo: repo, Limits: newLimits(t), Network: core.NetworkMain, Height: core.Height(11)}

	ok, err := core.AllowReputationOneToOne(ctx, scorer, author, score.Hash, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("the candidate's own hash must be excluded from its own one-to-one count")
	}

	ok, err = core.AllowReputationOneToOne(ctx, scorer, author, "some-other-hash", 5000)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("a distinct candidate must see the existing score and be capped")
	}
}

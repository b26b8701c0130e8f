package core_test

import (
	"testing"

	"socialconsensus/core"
	"socialconsensus/memrepo"
)

func contentLimits() *core.LimitTable {
	return core.NewLimitTable(map[core.Parameter]map[core.Network]map[int64]int64{
		core.ParamTrialPostLimit:        {core.NetworkMain: {0: 5}},
		core.ParamFullPostLimit:         {core.NetworkMain: {0: 30}},
		core.ParamThresholdReputation:   {core.NetworkMain: {0: 500}},
		core.ParamThresholdBalance:      {core.NetworkMain: {0: 50}},
		core.ParamDepth:                 {core.NetworkMain: {0: 86400}},
		core.ParamTrialPostEditLimit:    {core.NetworkMain: {0: 2}},
		core.ParamFullPostEditLimit:     {core.NetworkMain: {0: 5}},
	})
}

// TestTrialPostLimitScenario reproduces the six-post walkthrough: five
// posts within the daily window succeed for a trial-mode author, a sixth
// fails ContentLimit, and a seventh outside the 86400-second window
// succeeds again.
func TestTrialPostLimitScenario(t *testing.T) {
	repo := memrepo.New(0)
	helper := core.NewConsensusHelper(nil)
	addr := memrepo.NewFixtureAddress("trial-author")
	repo.Commit(memrepo.NewFixtureTransaction(core.KindAccountUser, addr, 0, core.Height(1)))

	ctx := &core.ValidationContext{Repo: repo, Limits: contentLimits(), Escapes: core.NewEscapeRegistry(nil), Network: core.NetworkMain, Height: core.Height(10)}

	post := func(at int64) error {
		tx := memrepo.NewFixtureTransaction(core.KindContentPost, addr, at, core.MempoolHeight)
		tx.S2 = tx.Hash
		tx.Payload = &core.Payload{S2: "caption"}
		memrepo.FillHash(tx)
		err := helper.ValidateTransaction(ctx, tx)
		if err == nil {
			repo.Commit(tx)
		}
		return err
	}

	for i := 0; i < 5; i++ {
		if err := post(int64(1000 + i)); err != nil {
			t.Fatalf("post %d: want Success, got %v", i+1, err)
		}
	}
	if err := post(1010); err != core.ErrContentLimit {
		t.Fatalf("6th post: want ErrContentLimit, got %v", err)
	}
	if err := post(1010 + 86400 + 1); err != nil {
		t.Fatalf("7th post outside the window: want Success, got %v", err)
	}
}

func TestContentEditRequiresOriginalAuthor(t *testing.T) {
	repo := memrepo.New(0)
	helper := core.NewConsensusHelper(nil)
	author := memrepo.NewFixtureAddress("author")
	other := memrepo.NewFixtureAddress("other")
	repo.Commit(memrepo.NewFixtureTransaction(core.KindAccountUser, author, 0, core.Height(1)))
	repo.Commit(memrepo.NewFixtureTransaction(core.KindAccountUser, other, 0, core.Height(1)))

	root := memrepo.NewFixtureTransaction(core.KindContentPost, author, 1000, core.Height(10))
	root.S2 = root.Hash
	memrepo.FillHash(root)
	repo.Commit(root)

	ctx := &core.ValidationContext{Repo: repo, Limits: contentLimits(), Escapes: core.NewEscapeRegistry(nil), Network: core.NetworkMain, Height: core.Height(10)}

	edit := &core.Transaction{Kind: core.KindContentPost, Address: other, Time: 2000, S2: root.Hash, Payload: &core.Payload{S2: "edited"}}
	memrepo.FillHash(edit)
	if err := helper.ValidateTransaction(ctx, edit); err != core.ErrContentEditUnauthorized {
		t.Fatalf("want ErrContentEditUnauthorized, got %v", err)
	}
}

func TestContentEditRejectsPastTheEditWindow(t *testing.T) {
	repo := memrepo.New(0)
	helper := core.NewConsensusHelper(nil)
	author := memrepo.NewFixtureAddress("author")
	repo.Commit(memrepo.NewFixtureTransaction(core.KindAccountUser, author, 0, core.Height(1)))

	root := memrepo.NewFixtureTransaction(core.KindContentPost, author, 1000, core.Height(10))
	root.S2 = root.Hash
	memrepo.FillHash(root)
	repo.Commit(root)

	ctx := &core.ValidationContext{Repo: repo, Limits: contentLimits(), Escapes: core.NewEscapeRegistry(nil), Network: core.NetworkMain, Height: core.Height(10)}

	edit := &core.Transaction{Kind: core.KindContentPost, Address: author, Time: 1000 + 1_180_000 + 1, S2: root.Hash, Payload: &core.Payload{S2: "edited"}}
	memrepo.FillHash(edit)
	if err := helper.ValidateTransaction(ctx, edit); err != core.ErrContentEditLimit {
		t.Fatalf("want ErrContentEditLimit for an edit past the window measured from the original post, got %v", err)
	}
}

func TestContentRejectsUnregisteredAuthor(t *testing.T) {
	repo := memrepo.New(0)
	helper := core.NewConsensusHelper(nil)
	addr := memrepo.NewFixtureAddress("ghost")

	tx := memrepo.NewFixtureTransaction(core.KindContentPost, addr, 1000, core.MempoolHeight)
	tx.S2 = tx.Hash
	tx.Payload = &core.Payload{S2: "hi"}
	memrepo.FillHash(tx)

	ctx := &core.ValidationContext{Repo: repo, Limits: contentLimits(), Escapes: core.NewEscapeRegistry(nil), Network: core.NetworkMain, Height: core.Height(10)}
	if err := helper.ValidateTransaction(ctx, tx); err != core.ErrNotRegistered {
		t.Fatalf("want ErrNotRegistered, got %v", err)
	}
}

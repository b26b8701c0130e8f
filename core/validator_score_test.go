package core

import "testing"

type stubScoreRepo struct {
	repoStub
	author       string
	authorFound  bool
	dupScore     bool
	blocked      bool
	windowCount  int
}

func (s *stubScoreRepo) ExistsAccount(string) (bool, error) { return true, nil }
func (s *stubScoreRepo) GetLast(kind Kind, hash string) (*Transaction, bool, error) {
	if kind == KindContentPost && s.authorFound {
		return &Transaction{Address: s.author}, true, nil
	}
	return nil, false, nil
}
func (s *stubScoreRepo) ExistsScore(string, string, Kind, bool) (bool, error) { return s.dupScore, nil }
func (s *stubScoreRepo) GetLastBlockingType(string, string) (Kind, bool, error) {
	if s.blocked {
		return KindActionBlocking, true, nil
	}
	return KindUnknown, false, nil
}
func (s *stubScoreRepo) CountWindow(Kind, string, string, WindowUnit, int64, int64, string) (int, error) {
	return s.windowCount, nil
}

func scoreLimits() *LimitTable {
	return NewLimitTable(map[Parameter]map[Network]map[int64]int64{
		ParamTrialScoreLimit: {NetworkMain: {0: 100}},
		ParamFullScoreLimit:  {NetworkMain: {0: 200}},
	})
}

func TestScoreContentCheckRejectsOutOfRangeValue(t *testing.T) {
	v := scoreContentValidator{}
	if err := v.Check(&Transaction{S2: "target", I1: 5}); err != nil {
		t.Fatalf("valid score rejected: %v", err)
	}
	if err := v.Check(&Transaction{S2: "target", I1: 6}); err != ErrMalformed {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
	if err := v.Check(&Transaction{I1: 5}); err != ErrMalformed {
		t.Fatal("expected ErrMalformed for a missing target")
	}
}

func TestScoreContentRejectsSelfScore(t *testing.T) {
	v := scoreContentValidator{}
	repo := &stubScoreRepo{author: "Pself", authorFound: true}
	ctx := &ValidationContext{Repo: repo, Limits: scoreLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pself", S2: "target", I1: 5, OpReturnHex: ScoreOpReturn("Pself", 5)}
	if err := v.Validate(ctx, tx, nil); err != ErrSelfScore {
		t.Fatalf("want ErrSelfScore, got %v", err)
	}
}

func TestScoreContentRejectsOpReturnMismatch(t *testing.T) {
	v := scoreContentValidator{}
	repo := &stubScoreRepo{author: "Pauthor", authorFound: true}
	ctx := &ValidationContext{Repo: repo, Limits: scoreLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pscorer", S2: "target", I1: 5, OpReturnHex: "wrong"}
	if err := v.Validate(ctx, tx, nil); err != ErrFailedOpReturn {
		t.Fatalf("want ErrFailedOpReturn, got %v", err)
	}
}

func TestScoreContentRejectsDuplicate(t *testing.T) {
	v := scoreContentValidator{}
	repo := &stubScoreRepo{author: "Pauthor", authorFound: true, dupScore: true}
	ctx := &ValidationContext{Repo: repo, Limits: scoreLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pscorer", S2: "target", I1: 5, OpReturnHex: ScoreOpReturn("Pauthor", 5)}
	if err := v.Validate(ctx, tx, nil); err != ErrDoubleScore {
		t.Fatalf("want ErrDoubleScore, got %v", err)
	}
}

func TestScoreContentEnforcesBlockingWhenActive(t *testing.T) {
	v := scoreContentValidator{enforceBlocking: true}
	repo := &stubScoreRepo{author: "Pauthor", authorFound: true, blocked: true}
	ctx := &ValidationContext{Repo: repo, Limits: scoreLimits(), Network: NetworkMain, Height: Height(500_000)}
	tx := &Transaction{Address: "Pscorer", S2: "target", I1: 5, OpReturnHex: ScoreOpReturn("Pauthor", 5)}
	if err := v.Validate(ctx, tx, nil); err != ErrBlocking {
		t.Fatalf("want ErrBlocking, got %v", err)
	}
}

func TestScoreContentSkipsBlockingCheckWhenNotEnforced(t *testing.T) {
	v := scoreContentValidator{enforceBlocking: false}
	repo := &stubScoreRepo{author: "Pauthor", authorFound: true, blocked: true}
	ctx := &ValidationContext{Repo: repo, Limits: scoreLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pscorer", S2: "target", I1: 5, OpReturnHex: ScoreOpReturn("Pauthor", 5)}
	if err := v.Validate(ctx, tx, nil); err != nil {
		t.Fatalf("want Success when blocking is not yet enforced, got %v", err)
	}
}

func TestScoreContentTargetNotFound(t *testing.T) {
	v := scoreContentValidator{}
	repo := &stubScoreRepo{authorFound: false}
	ctx := &ValidationContext{Repo: repo, Limits: scoreLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pscorer", S2: "target", I1: 5}
	if err := v.Validate(ctx, tx, nil); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

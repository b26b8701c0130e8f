package core

import "testing"

func accountLimits() *LimitTable {
	return NewLimitTable(map[Parameter]map[Network]map[int64]int64{
		ParamEditAccountDailyCount: {NetworkMain: {0: 5}},
		ParamEditAccountDepth:      {NetworkMain: {0: 86400}},
	})
}

type stubAccountRepo struct {
	repoStub
	lastAccountKind Kind
	hasAccount      bool
	dupName         bool
	mempoolUsers    int
	mempoolDeletes  int
	windowCount     int
}

func (s *stubAccountRepo) GetLastAccountType(string) (Kind, bool, error) {
	return s.lastAccountKind, s.hasAccount, nil
}
func (s *stubAccountRepo) ExistsAnotherByName(string, string) (bool, error) { return s.dupName, nil }
func (s *stubAccountRepo) CountWindow(Kind, string, string, WindowUnit, int64, int64, string) (int, error) {
	return s.windowCount, nil
}
func (s *stubAccountRepo) CountMempool(kind Kind, _ string, _ string) (int, error) {
	if kind == KindAccountUser {
		return s.mempoolUsers, nil
	}
	return s.mempoolDeletes, nil
}

func TestUserValidatorCheckRejectsMalformedNicknames(t *testing.T) {
	v := userValidatorV1{}
	valid := &Transaction{Kind: KindAccountUser, Address: "Paddr", Payload: &Payload{S2: "alice_1"}}
	if err := v.Check(valid); err != nil {
		t.Fatalf("valid nickname rejected: %v", err)
	}

	empty := &Transaction{Kind: KindAccountUser, Address: "Paddr", Payload: &Payload{S2: "  "}}
	if err := v.Check(empty); err == nil {
		t.Fatal("expected an error for an empty name")
	}

	tooLong := &Transaction{Kind: KindAccountUser, Address: "Paddr", Payload: &Payload{S2: "thisnameiswaytoolongtobevalid"}}
	if err := v.Check(tooLong); err != ErrNicknameLong {
		t.Fatalf("want ErrNicknameLong, got %v", err)
	}

	selfRef := &Transaction{Kind: KindAccountUser, Address: "Paddr", S2: "Paddr", Payload: &Payload{S2: "alice"}}
	if err := v.Check(selfRef); err != ErrReferrerSelf {
		t.Fatalf("want ErrReferrerSelf, got %v", err)
	}

	del := &Transaction{Kind: KindAccountDelete, Address: "Paddr"}
	if err := v.Check(del); err != nil {
		t.Fatalf("ACCOUNT_DELETE needs no payload, got %v", err)
	}
}

func TestUserValidatorMempoolRejectsDuplicateName(t *testing.T) {
	v := userValidatorV1{}
	repo := &stubAccountRepo{dupName: true}
	ctx := &ValidationContext{Repo: repo, Limits: accountLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Kind: KindAccountUser, Address: "Paddr", Time: 1000, Payload: &Payload{S2: "alice"}}
	if err := v.ValidateMempool(ctx, tx); err != ErrNicknameDouble {
		t.Fatalf("want ErrNicknameDouble, got %v", err)
	}
}

func TestUserValidatorMempoolRejectsSecondPendingChange(t *testing.T) {
	v := userValidatorV1{}
	repo := &stubAccountRepo{mempoolUsers: 1}
	ctx := &ValidationContext{Repo: repo, Limits: accountLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Kind: KindAccountUser, Address: "Paddr", Time: 1000, Payload: &Payload{S2: "alice"}}
	if err := v.ValidateMempool(ctx, tx); err != ErrChangeInfoDoubleInMempool {
		t.Fatalf("want ErrChangeInfoDoubleInMempool, got %v", err)
	}
}

func TestUserValidatorBlockRejectsDuplicateNameWithinBlock(t *testing.T) {
	v := userValidatorV1{}
	repo := &stubAccountRepo{}
	ctx := &ValidationContext{Repo: repo, Limits: accountLimits(), Network: NetworkMain, Height: Height(10)}
	earlier := &Transaction{Kind: KindAccountUser, Address: "Pother", Payload: &Payload{S2: "alice"}}
	tx := &Transaction{Kind: KindAccountUser, Address: "Paddr", Time: 1000, Payload: &Payload{S2: "Alice"}}
	if err := v.ValidateBlock(ctx, tx, []*Transaction{earlier}); err != ErrNicknameDouble {
		t.Fatalf("want ErrNicknameDouble (case-insensitive), got %v", err)
	}
}

func TestUserValidatorAccountDeleteRequiresLiveAccount(t *testing.T) {
	v := userValidatorV1{}
	repo := &stubAccountRepo{}
	ctx := &ValidationContext{Repo: repo, Limits: accountLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Kind: KindAccountDelete, Address: "Paddr"}
	if err := v.ValidateMempool(ctx, tx); err != ErrNotRegistered {
		t.Fatalf("want ErrNotRegistered, got %v", err)
	}
}

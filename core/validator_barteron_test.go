package core

import "testing"

type stubBarteronRepo struct {
	repoStub
	activeCount int
	lastOwner   string
	lastFound   bool
	mempool     int
}

func (s *stubBarteronRepo) ExistsAccount(string) (bool, error)      { return true, nil }
func (s *stubBarteronRepo) CountActive(Kind, string) (int, error)   { return s.activeCount, nil }
func (s *stubBarteronRepo) GetLast(Kind, string) (*Transaction, bool, error) {
	if !s.lastFound {
		return nil, false, nil
	}
	return &Transaction{Kind: KindBarteronOffer, Address: s.lastOwner}, true, nil
}
func (s *stubBarteronRepo) CountMempool(Kind, string, string) (int, error) { return s.mempool, nil }

func barteronLimits() *LimitTable {
	return NewLimitTable(map[Parameter]map[Network]map[int64]int64{
		ParamMaxActiveCount:        {NetworkMain: {0: 30}},
		ParamMaxBarteronRequestSize: {NetworkMain: {0: 60000}},
	})
}

func TestBarteronOfferCheckRequiresBody(t *testing.T) {
	v := barteronOfferValidatorV1{}
	if err := v.Check(&Transaction{Payload: &Payload{S1: "body"}}); err != nil {
		t.Fatalf("valid offer rejected: %v", err)
	}
	if err := v.Check(&Transaction{}); err != ErrMalformed {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
}

func TestBarteronOfferNewRejectsOverActiveLimit(t *testing.T) {
	v := barteronOfferValidatorV1{}
	repo := &stubBarteronRepo{activeCount: 30}
	ctx := &ValidationContext{Repo: repo, Limits: barteronLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pa", Hash: "h1", S2: "h1", Payload: &Payload{S1: "body"}}
	if err := v.Validate(ctx, tx, nil); err != ErrExceededLimit {
		t.Fatalf("want ErrExceededLimit, got %v", err)
	}
}

func TestBarteronOfferEditRejectsMissingRoot(t *testing.T) {
	v := barteronOfferValidatorV1{}
	repo := &stubBarteronRepo{lastFound: false}
	ctx := &ValidationContext{Repo: repo, Limits: barteronLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pa", Hash: "h2", S2: "h1", Payload: &Payload{S1: "body"}}
	if err := v.Validate(ctx, tx, nil); err != ErrExceededLimit {
		t.Fatalf("want ErrExceededLimit for a missing root, got %v", err)
	}
}

func TestBarteronOfferEditRejectsWrongAuthor(t *testing.T) {
	v := barteronOfferValidatorV1{}
	repo := &stubBarteronRepo{lastFound: true, lastOwner: "Powner"}
	ctx := &ValidationContext{Repo: repo, Limits: barteronLimits(), Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pother", Hash: "h2", S2: "h1", Payload: &Payload{S1: "body"}}
	if err := v.Validate(ctx, tx, nil); err != ErrContentEditUnauthorized {
		t.Fatalf("want ErrContentEditUnauthorized, got %v", err)
	}
}

func TestBarteronAccountStubAlwaysUnknown(t *testing.T) {
	v := barteronAccountValidatorStub{}
	if err := v.Check(&Transaction{}); err != ErrUnknown {
		t.Fatalf("want ErrUnknown, got %v", err)
	}
	if err := v.Validate(nil, &Transaction{}, nil); err != ErrUnknown {
		t.Fatalf("want ErrUnknown, got %v", err)
	}
}

func TestBarteronAccountRegistryInactiveAtRealisticHeights(t *testing.T) {
	if _, ok := barteronAccountRegistry.Instance(NetworkMain, Height(10_000_000)); ok {
		t.Fatal("the barter account placeholder must stay inactive at any realistic current height")
	}
}

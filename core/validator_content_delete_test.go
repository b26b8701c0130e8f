package core

import "testing"

type stubContentDeleteRepo struct {
	repoStub
	author string
	found  bool
	videoOnly bool
	mempool int
}

func (s *stubContentDeleteRepo) ExistsAccount(string) (bool, error) { return true, nil }
func (s *stubContentDeleteRepo) GetLast(kind Kind, hash string) (*Transaction, bool, error) {
	if !s.found {
		return nil, false, nil
	}
	want := KindContentPost
	if s.videoOnly {
		want = KindContentVideo
	}
	if kind != want {
		return nil, false, nil
	}
	return &Transaction{Address: s.author}, true, nil
}
func (s *stubContentDeleteRepo) CountMempool(Kind, string, string) (int, error) { return s.mempool, nil }

func TestContentDeleteCheckRequiresTarget(t *testing.T) {
	v := contentDeleteValidatorV1{}
	if err := v.Check(&Transaction{S2: "target"}); err != nil {
		t.Fatalf("valid delete rejected: %v", err)
	}
	if err := v.Check(&Transaction{}); err != ErrMalformed {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
}

func TestContentDeleteFindsVideoTargetsToo(t *testing.T) {
	v := contentDeleteValidatorV1{}
	repo := &stubContentDeleteRepo{author: "Pauthor", found: true, videoOnly: true}
	ctx := &ValidationContext{Repo: repo, Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pauthor", S2: "vid1"}
	if err := v.Validate(ctx, tx, nil); err != nil {
		t.Fatalf("want Success for a matching video author, got %v", err)
	}
}

func TestContentDeleteRejectsWrongAuthor(t *testing.T) {
	v := contentDeleteValidatorV1{}
	repo := &stubContentDeleteRepo{author: "Pauthor", found: true}
	ctx := &ValidationContext{Repo: repo, Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pother", S2: "post1"}
	if err := v.Validate(ctx, tx, nil); err != ErrContentEditUnauthorized {
		t.Fatalf("want ErrContentEditUnauthorized, got %v", err)
	}
}

func TestContentDeleteTargetNotFound(t *testing.T) {
	v := contentDeleteValidatorV1{}
	repo := &stubContentDeleteRepo{found: false}
	ctx := &ValidationContext{Repo: repo, Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pauthor", S2: "post1"}
	if err := v.Validate(ctx, tx, nil); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestContentDeleteMempoolRejectsDuplicate(t *testing.T) {
	v := contentDeleteValidatorV1{}
	repo := &stubContentDeleteRepo{author: "Pauthor", found: true, mempool: 1}
	ctx := &ValidationContext{Repo: repo, Network: NetworkMain, Height: Height(10)}
	tx := &Transaction{Address: "Pauthor", S2: "post1"}
	if err := v.Validate(ctx, tx, nil); err != ErrDoubleContentEdit {
		t.Fatalf("want ErrDoubleContentEdit, got %v", err)
	}
}

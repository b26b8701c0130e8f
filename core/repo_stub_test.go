package core

// repoStub is a zero-value Repository a test-specific stub embeds and
// overrides only the methods its scenario exercises.
type repoStub struct{}

func (repoStub) ExistsAccount(string) (bool, error) { return false, nil }
func (repoStub) ExistsContent(string) (bool, error) { return false, nil }
func (repoStub) CountWindow(Kind, string, string, WindowUnit, int64, int64, string) (int, error) {
	return 0, nil
}
func (repoStub) ListWindow(Kind, string, string, WindowUnit, int64, int64) ([]*Transaction, error) {
	return nil, nil
}
func (repoStub) CountEdits(Kind, string) (int, error)    { return 0, nil }
func (repoStub) CountActive(Kind, string) (int, error)   { return 0, nil }
func (repoStub) GetLast(Kind, string) (*Transaction, bool, error) { return nil, false, nil }
func (repoStub) GetLastAccountType(string) (Kind, bool, error)    { return KindUnknown, false, nil }
func (repoStub) GetLastSubscribeType(string, string) (Kind, bool, error) {
	return KindUnknown, false, nil
}
func (repoStub) GetLastBlockingType(string, string) (Kind, bool, error) {
	return KindUnknown, false, nil
}
func (repoStub) ExistsScore(string, string, Kind, bool) (bool, error)  { return false, nil }
func (repoStub) ExistsAnotherByName(string, string) (bool, error)      { return false, nil }
func (repoStub) CountMempool(Kind, string, string) (int, error)        { return 0, nil }
func (repoStub) GetUserReputation(string, Height) (int64, error)       { return 0, nil }
func (repoStub) GetUserBalance(string, Height) (int64, error)          { return 0, nil }
func (repoStub) GetTransactionHeight(string) (Height, bool, error)     { return 0, false, nil }
func (repoStub) ExistsModerator(string) (bool, error)                  { return false, nil }
func (repoStub) ListModerators(Height) ([]string, error)               { return nil, nil }
func (repoStub) ExistsModerationVote(string, string, bool) (bool, error) {
	return false, nil
}

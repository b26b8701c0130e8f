// Package memrepo is a reference, in-memory implementation of
// core.Repository and core.JurySelector: a complete store suitable for
// tests and for a single-process operator tool, not a production chain
// index.
package memrepo

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"socialconsensus/core"
)

// shardCount bounds how many concurrent scans CountWindow fans its chain
// scan across. The store is in-memory, so sharding buys little in
// practice, but it exercises the same fan-out-then-reduce shape a real
// disk-backed repository's window scan would use.
const shardCount = 4

// Store is a single-process, mutex-guarded implementation of
// core.Repository. Chain records are append-only; mempool records are
// replaced wholesale by SetMempool between validation rounds.
type Store struct {
	mu sync.RWMutex

	chain   []*core.Transaction
	mempool []*core.Transaction

	moderators map[string]bool

	balances    map[string]int64
	reputations map[string]int64

	byHash *lru.Cache[string, *core.Transaction]
}

// New builds an empty store. cacheSize bounds the read-through hash
// cache; 0 disables caching.
func New(cacheSize int) *Store {
	var cache *lru.Cache[string, *core.Transaction]
	if cacheSize > 0 {
		cache, _ = lru.New[string, *core.Transaction](cacheSize)
	}
	return &Store{
		moderators:  make(map[string]bool),
		balances:    make(map[string]int64),
		reputations: make(map[string]int64),
		byHash:      cache,
	}
}

// Commit appends tx to the chain. Callers are responsible for having
// already run it through a ConsensusHelper.
func (s *Store) Commit(tx *core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chain = append(s.chain, tx)
	if s.byHash != nil {
		s.byHash.Add(tx.Hash, tx)
	}
	if tx.Kind == core.KindModeratorRegister {
		s.moderators[tx.Address] = true
	}
}

// SetMempool replaces the mempool view wholesale.
func (s *Store) SetMempool(txs []*core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mempool = txs
}

// SetBalance and SetReputation seed fixture account state; production
// repositories would derive these from the money ledger and the
// reputation accrual engine respectively, both out of this spec's scope.
func (s *Store) SetBalance(address string, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[address] = balance
}

func (s *Store) SetReputation(address string, reputation int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reputations[address] = reputation
}

func (s *Store) byHashLocked(hash string) (*core.Transaction, bool) {
	if s.byHash != nil {
		if tx, ok := s.byHash.Get(hash); ok {
			return tx, true
		}
	}
	for _, tx := range s.chain {
		if tx.Hash == hash {
			if s.byHash != nil {
				s.byHash.Add(hash, tx)
			}
			return tx, true
		}
	}
	return nil, false
}

func (s *Store) ExistsAccount(address string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.chain {
		if tx.Kind == core.KindAccountUser && tx.Address == address {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ExistsContent(hash string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.byHashLocked(hash)
	return ok && tx.Kind.IsContent(), nil
}

// chainShards splits the chain slice into shardCount contiguous windows
// for CountWindow's fan-out scan.
func (s *Store) chainShards() [][]*core.Transaction {
	n := len(s.chain)
	if n == 0 {
		return nil
	}
	shards := make([][]*core.Transaction, 0, shardCount)
	step := (n + shardCount - 1) / shardCount
	for start := 0; start < n; start += step {
		end := start + step
		if end > n {
			end = n
		}
		shards = append(shards, s.chain[start:end])
	}
	return shards
}

func (s *Store) matchesWindow(tx *core.Transaction, kind core.Kind, address, extraKey string, unit core.WindowUnit, from, to int64, excludeHash string) bool {
	if tx.Kind != kind || tx.Address != address || tx.Hash == excludeHash {
		return false
	}
	if extraKey != "" && tx.S2 != extraKey {
		return false
	}
	var v int64
	if unit == core.WindowHeight {
		v = int64(tx.Height)
	} else {
		v = tx.Time
	}
	return v >= from && v <= to
}

func (s *Store) CountWindow(kind core.Kind, address, extraKey string, unit core.WindowUnit, from, to int64, excludeHash string) (int, error) {
	s.mu.RLock()
	shards := s.chainShards()
	s.mu.RUnlock()
	if len(shards) == 0 {
		return 0, nil
	}

	counts := make([]int, len(shards))
	var g errgroup.Group
	for i, shard := range shards {
		i, shard := i, shard
		g.Go(func() error {
			n := 0
			for _, tx := range shard {
				if s.matchesWindow(tx, kind, address, extraKey, unit, from, to, excludeHash) {
					n++
				}
			}
			counts[i] = n
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

func (s *Store) ListWindow(kind core.Kind, address, extraKey string, unit core.WindowUnit, from, to int64) ([]*core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*core.Transaction
	for _, tx := range s.chain {
		if s.matchesWindow(tx, kind, address, extraKey, unit, from, to, "") {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *Store) CountEdits(kind core.Kind, rootTxHash string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, tx := range s.chain {
		if tx.Kind == kind && tx.IsEdit() && tx.RootTxHash() == rootTxHash {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountActive(kind core.Kind, address string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	latest := make(map[string]*core.Transaction)
	for _, tx := range s.chain {
		if tx.Kind != kind || tx.Address != address {
			continue
		}
		root := tx.RootTxHash()
		if prev, ok := latest[root]; !ok || tx.Time > prev.Time {
			latest[root] = tx
		}
	}
	n := 0
	for _, tx := range latest {
		if tx.Kind == kind {
			n++
		}
	}
	return n, nil
}

func (s *Store) GetLast(kind core.Kind, rootTxHash string) (*core.Transaction, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best *core.Transaction
	for _, tx := range s.chain {
		if tx.Kind != kind || tx.RootTxHash() != rootTxHash {
			continue
		}
		if best == nil || tx.Time > best.Time {
			best = tx
		}
	}
	return best, best != nil, nil
}

func (s *Store) GetLastAccountType(address string) (core.Kind, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best *core.Transaction
	for _, tx := range s.chain {
		if (tx.Kind != core.KindAccountUser && tx.Kind != core.KindAccountDelete) || tx.Address != address {
			continue
		}
		if best == nil || tx.Time > best.Time {
			best = tx
		}
	}
	if best == nil {
		return core.KindUnknown, false, nil
	}
	return best.Kind, true, nil
}

func (s *Store) GetLastSubscribeType(from, to string) (core.Kind, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best *core.Transaction
	for _, tx := range s.chain {
		if tx.Address != from || tx.S2 != to {
			continue
		}
		switch tx.Kind {
		case core.KindActionSubscribe, core.KindActionSubscribePrivate, core.KindActionSubscribeCancel:
		default:
			continue
		}
		if best == nil || tx.Time > best.Time {
			best = tx
		}
	}
	if best == nil {
		return core.KindUnknown, false, nil
	}
	return best.Kind, true, nil
}

func (s *Store) GetLastBlockingType(from, to string) (core.Kind, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best *core.Transaction
	for _, tx := range s.chain {
		if tx.Kind != core.KindActionBlocking && tx.Kind != core.KindActionBlockingCancel {
			continue
		}
		if tx.Address != from {
			continue
		}
		matches := tx.S2 == to
		if !matches {
			for _, t := range blockingTargetsOf(tx) {
				if t == to {
					matches = true
					break
				}
			}
		}
		if !matches {
			continue
		}
		if best == nil || tx.Time > best.Time {
			best = tx
		}
	}
	if best == nil {
		return core.KindUnknown, false, nil
	}
	return best.Kind, true, nil
}

func (s *Store) ExistsScore(scorer, target string, kind core.Kind, includeMempool bool) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scan := func(txs []*core.Transaction) bool {
		for _, tx := range txs {
			if tx.Kind == kind && tx.Address == scorer && tx.S2 == target {
				return true
			}
		}
		return false
	}
	if scan(s.chain) {
		return true, nil
	}
	if includeMempool && scan(s.mempool) {
		return true, nil
	}
	return false, nil
}

func (s *Store) ExistsAnotherByName(address, lowerName string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	latest := make(map[string]*core.Transaction)
	for _, tx := range s.chain {
		if tx.Kind != core.KindAccountUser || tx.Payload == nil {
			continue
		}
		if prev, ok := latest[tx.Address]; !ok || tx.Time > prev.Time {
			latest[tx.Address] = tx
		}
	}
	for addr, tx := range latest {
		if addr == address {
			continue
		}
		if normalizeName(tx.Payload.S2) == lowerName {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CountMempool(kind core.Kind, address, extraKey string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, tx := range s.mempool {
		if tx.Kind != kind || tx.Address != address {
			continue
		}
		if extraKey != "" && tx.S2 != extraKey && tx.RootTxHash() != extraKey {
			continue
		}
		n++
	}
	return n, nil
}

func (s *Store) GetUserReputation(address string, _ core.Height) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reputations[address], nil
}

func (s *Store) GetUserBalance(address string, _ core.Height) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[address], nil
}

func (s *Store) GetTransactionHeight(hash string) (core.Height, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.byHashLocked(hash)
	if !ok {
		return 0, false, nil
	}
	return tx.Height, true, nil
}

func (s *Store) ExistsModerator(address string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moderators[address], nil
}

func (s *Store) ListModerators(_ core.Height) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.moderators))
	for addr := range s.moderators {
		out = append(out, addr)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) ExistsModerationVote(voter, flagHash string, includeMempool bool) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scan := func(txs []*core.Transaction) bool {
		for _, tx := range txs {
			if tx.Kind == core.KindModerationVote && tx.Address == voter && tx.S3 == flagHash {
				return true
			}
		}
		return false
	}
	if scan(s.chain) {
		return true, nil
	}
	if includeMempool && scan(s.mempool) {
		return true, nil
	}
	return false, nil
}

// Select implements core.JurySelector with a deterministic draw seeded by
// sha256(flagHash): the core may not use wall-clock or process-global
// randomness (§5, §9), so the jury must be reproducible from its inputs
// alone. jurySize caps the panel at min(len(moderators), 5).
func (s *Store) Select(flagHash string, _ core.Height, moderators []string) []string {
	if len(moderators) == 0 {
		return nil
	}
	pool := make([]string, len(moderators))
	copy(pool, moderators)
	sort.Strings(pool)

	seed := sha256.Sum256([]byte(flagHash))
	jurySize := 5
	if len(pool) < jurySize {
		jurySize = len(pool)
	}

	jury := make([]string, 0, jurySize)
	taken := make(map[int]bool, jurySize)
	for i := 0; i < jurySize; i++ {
		offset := binary.BigEndian.Uint64(seed[(i*8)%24 : (i*8)%24+8])
		idx := int(offset % uint64(len(pool)))
		for taken[idx] {
			idx = (idx + 1) % len(pool)
		}
		taken[idx] = true
		jury = append(jury, pool[idx])
	}
	return jury
}

func blockingTargetsOf(tx *core.Transaction) []string {
	if tx.S2 != "" {
		return []string{tx.S2}
	}
	var targets []string
	_ = json.Unmarshal([]byte(tx.S3), &targets)
	return targets
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

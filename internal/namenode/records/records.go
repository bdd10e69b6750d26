// Package records is the namenode's bookkeeping core: the datanode
// registry, the heartbeat table, the block placement map, and the file
// index.
//
// Each table is guarded by its own lock. Operations touching more than one
// table acquire locks in a fixed order — datanodes, datanode ids, block
// placement, file index, heartbeats — and never in reverse. The placement
// table is read-dominant and uses a reader-writer lock; the rest are
// exclusive.
package records

import (
	"errors"
	"sort"
	"sync"
	"time"

	"blockfs/internal/block"
)

// ErrNoCapacity is returned when a block needs a placement and no live
// datanode is registered.
var ErrNoCapacity = errors.New("no live datanodes registered")

// ErrPlacementLost reports a file-index entry whose placement vanished, a
// post-condition violation inside the records themselves.
var ErrPlacementLost = errors.New("placement table lost an entry")

// Clock abstracts time for the heartbeat table and the liveness monitor.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// NodeInfo is one datanode registry entry. Entries are created on first
// heartbeat and never removed; only entries with Alive set receive new
// placements.
type NodeInfo struct {
	ID      uint64
	Address string
	Alive   bool
}

// Records holds the namenode's five tables.
type Records struct {
	blockSize   int64
	replication int
	clock       Clock

	datanodesMu sync.Mutex
	datanodes   map[uint64]NodeInfo
	nextID      uint64

	idsMu       sync.Mutex
	datanodeIDs map[string]uint64

	placementMu    sync.RWMutex
	blockPlacement map[uint64][]string

	filesMu    sync.Mutex
	fileBlocks map[string]int

	heartbeatsMu sync.Mutex
	heartbeats   map[string]time.Time
}

// New returns empty records for the given block size and replication
// factor. A nil clock defaults to the real one.
func New(blockSize int64, replication int, clock Clock) *Records {
	if clock == nil {
		clock = RealClock{}
	}
	return &Records{
		blockSize:      blockSize,
		replication:    replication,
		clock:          clock,
		datanodes:      make(map[uint64]NodeInfo),
		datanodeIDs:    make(map[string]uint64),
		blockPlacement: make(map[uint64][]string),
		fileBlocks:     make(map[string]int),
		heartbeats:     make(map[string]time.Time),
	}
}

// BlockSize returns the configured maximum bytes per block.
func (r *Records) BlockSize() int64 { return r.blockSize }

// RecordHeartbeat registers addr on first sight, assigning it the next
// monotonic id, and bumps its heartbeat timestamp. A tombstoned entry is
// revived.
func (r *Records) RecordHeartbeat(addr string) {
	r.datanodesMu.Lock()
	r.idsMu.Lock()
	id, known := r.datanodeIDs[addr]
	if !known {
		id = r.nextID
		r.nextID++
		r.datanodeIDs[addr] = id
	}
	r.datanodes[id] = NodeInfo{ID: id, Address: addr, Alive: true}
	r.idsMu.Unlock()
	r.datanodesMu.Unlock()

	r.heartbeatsMu.Lock()
	r.heartbeats[addr] = r.clock.Now()
	r.heartbeatsMu.Unlock()
}

// LastHeartbeat returns the last-seen timestamp for addr.
func (r *Records) LastHeartbeat(addr string) (time.Time, bool) {
	r.heartbeatsMu.Lock()
	defer r.heartbeatsMu.Unlock()
	t, ok := r.heartbeats[addr]
	return t, ok
}

// Statuses returns a registry snapshot ordered by id.
func (r *Records) Statuses() []NodeInfo {
	r.datanodesMu.Lock()
	nodes := make([]NodeInfo, 0, len(r.datanodes))
	for _, info := range r.datanodes {
		nodes = append(nodes, info)
	}
	r.datanodesMu.Unlock()

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

// MarkDead tombstones every node whose last heartbeat is older than
// threshold. Returns the addresses flipped on this pass.
func (r *Records) MarkDead(threshold time.Duration) []string {
	now := r.clock.Now()

	var flipped []string
	r.datanodesMu.Lock()
	r.heartbeatsMu.Lock()
	for id, info := range r.datanodes {
		if !info.Alive {
			continue
		}
		last, ok := r.heartbeats[info.Address]
		if !ok || now.Sub(last) > threshold {
			info.Alive = false
			r.datanodes[id] = info
			flipped = append(flipped, info.Address)
		}
	}
	r.heartbeatsMu.Unlock()
	r.datanodesMu.Unlock()

	sort.Strings(flipped)
	return flipped
}

// AddFile computes and records placement for every block of a file of
// declared size, registering the file in the index. An existing file of
// the same path is overwritten; stale trailing placements from a larger
// previous incarnation are dropped.
func (r *Records) AddFile(path string, size int64) ([][]string, error) {
	n := block.Count(size, r.blockSize)

	placements := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		addrs, err := r.place(block.Name(path, i))
		if err != nil {
			return nil, err
		}
		placements = append(placements, addrs)
	}

	r.placementMu.Lock()
	r.filesMu.Lock()
	oldN := r.fileBlocks[path]
	for i, addrs := range placements {
		r.blockPlacement[block.ID(block.Name(path, i))] = addrs
	}
	for i := n; i < oldN; i++ {
		delete(r.blockPlacement, block.ID(block.Name(path, i)))
	}
	r.fileBlocks[path] = n
	r.filesMu.Unlock()
	r.placementMu.Unlock()

	return placements, nil
}

// UpdateFile re-registers path at its new size. The returned list covers
// indices [0, max(nNew, nOld)): positions below nNew are write targets
// (recorded placements, newly assigned where the file grew) and positions
// from nNew up are delete targets (the pre-existing placement of blocks
// the shrink removes). An unknown path behaves as a zero-block old file.
func (r *Records) UpdateFile(path string, size int64) ([][]string, error) {
	nNew := block.Count(size, r.blockSize)

	// Assign placements outside the placement lock; recorded entries win
	// below so concurrent updates stay consistent.
	assigned := make([][]string, nNew)
	for i := 0; i < nNew; i++ {
		addrs, err := r.place(block.Name(path, i))
		if err != nil {
			return nil, err
		}
		assigned[i] = addrs
	}

	r.placementMu.Lock()
	r.filesMu.Lock()
	nOld := r.fileBlocks[path]
	total := nNew
	if nOld > total {
		total = nOld
	}
	out := make([][]string, total)
	for i := 0; i < nNew; i++ {
		id := block.ID(block.Name(path, i))
		if existing, ok := r.blockPlacement[id]; ok {
			out[i] = existing
			continue
		}
		r.blockPlacement[id] = assigned[i]
		out[i] = assigned[i]
	}
	for i := nNew; i < nOld; i++ {
		id := block.ID(block.Name(path, i))
		out[i] = r.blockPlacement[id]
		delete(r.blockPlacement, id)
	}
	r.fileBlocks[path] = nNew
	r.filesMu.Unlock()
	r.placementMu.Unlock()

	return out, nil
}

// RemoveFile drops path from the file index and the placement map,
// returning the per-block placements so the caller can route deletions.
// Removing an unknown path returns an empty list.
func (r *Records) RemoveFile(path string) ([][]string, error) {
	r.placementMu.Lock()
	r.filesMu.Lock()
	defer r.filesMu.Unlock()
	defer r.placementMu.Unlock()

	n, ok := r.fileBlocks[path]
	if !ok {
		return nil, nil
	}
	delete(r.fileBlocks, path)

	placements := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		id := block.ID(block.Name(path, i))
		addrs, ok := r.blockPlacement[id]
		if !ok {
			return nil, ErrPlacementLost
		}
		placements = append(placements, addrs)
		delete(r.blockPlacement, id)
	}
	return placements, nil
}

// FileAddresses returns the recorded placement of every block of path, in
// index order. An unknown path yields an empty list.
func (r *Records) FileAddresses(path string) ([][]string, error) {
	r.placementMu.RLock()
	r.filesMu.Lock()
	defer r.filesMu.Unlock()
	defer r.placementMu.RUnlock()

	n, ok := r.fileBlocks[path]
	if !ok {
		return nil, nil
	}

	placements := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		addrs, ok := r.blockPlacement[block.ID(block.Name(path, i))]
		if !ok {
			return nil, ErrPlacementLost
		}
		placements = append(placements, addrs)
	}
	return placements, nil
}

// BlockCount returns the file index entry for path.
func (r *Records) BlockCount(path string) (int, bool) {
	r.filesMu.Lock()
	defer r.filesMu.Unlock()
	n, ok := r.fileBlocks[path]
	return n, ok
}

// NumDataNodes returns the registry size, dead entries included.
func (r *Records) NumDataNodes() int {
	r.datanodesMu.Lock()
	defer r.datanodesMu.Unlock()
	return len(r.datanodes)
}

func (r *Records) liveAddrs() []NodeInfo {
	r.datanodesMu.Lock()
	nodes := make([]NodeInfo, 0, len(r.datanodes))
	for _, info := range r.datanodes {
		if info.Alive {
			nodes = append(nodes, info)
		}
	}
	r.datanodesMu.Unlock()

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

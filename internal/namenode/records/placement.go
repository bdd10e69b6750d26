package records

import (
	"math/rand"

	"blockfs/internal/block"
	"blockfs/internal/check"
)

// place chooses the replica set for a block name: the live registry is
// snapshotted in id order, shuffled by a generator seeded with the block
// id, and the first min(R, live) addresses are taken. The same name
// against the same live set always yields the same list, so independent
// lookups agree without coordination.
func (r *Records) place(name string) ([]string, error) {
	nodes := r.liveAddrs()
	if len(nodes) == 0 {
		return nil, ErrNoCapacity
	}

	addrs := make([]string, len(nodes))
	for i, n := range nodes {
		addrs[i] = n.Address
	}

	seed := int64(block.ID(name))
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(addrs), func(i, j int) {
		addrs[i], addrs[j] = addrs[j], addrs[i]
	})

	n := r.replication
	if len(addrs) < n {
		n = len(addrs)
	}
	chosen := addrs[:n]

	check.Assertf(distinct(chosen), "place(%s): replica set has duplicates", name)
	return chosen, nil
}

func distinct(addrs []string) bool {
	seen := make(map[string]struct{}, len(addrs))
	for _, a := range addrs {
		if _, ok := seen[a]; ok {
			return false
		}
		seen[a] = struct{}{}
	}
	return true
}

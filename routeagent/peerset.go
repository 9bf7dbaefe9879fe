/*
 * MIT License
 *
 * Copyright (c) 2026 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package routeagent

import (
	"hash/fnv"
	"math/rand"
	"sort"
	"sync/atomic"

	liberr "github.com/nabbar/netcore/errors"
)

// Policy names the pick strategy applied to a PeerSet on every fetch
// (spec §4.8).
type Policy uint8

const (
	PolicyRandom Policy = iota
	PolicySerial
	PolicyRoundRobin
	PolicyKetama
	PolicyRendezvous
	PolicyJumpHash
)

// WeightedPeer names one downstream escaper and its relative weight.
type WeightedPeer struct {
	Name   string
	Weight uint32
}

// PeerSet is an ordered, immutable collection of weighted peers (spec §3's
// "SelectiveVec<WeightedValue<NodeName>>"). Replacing the slice held by a
// Record is atomic from the caller's perspective: in-flight selections keep
// using the PeerSet they already read (spec §3 invariant).
type PeerSet struct {
	Peers []WeightedPeer
}

// rrCounter is shared across Pick calls for PolicyRoundRobin so successive
// fetches of the same Record advance the cursor instead of always picking
// index 0; it is swapped in by the caller since PeerSet values themselves
// are treated as immutable snapshots.
type rrCounter struct {
	n atomic.Uint64
}

// Pick resolves one peer out of the set under the given policy. For
// PolicyKetama/PolicyRendezvous/PolicyJumpHash, clientKey (typically the
// client IP) drives the consistent-hash choice, giving per-client stickiness
// across repeated lookups without any server-side coordination.
func (s PeerSet) Pick(policy Policy, clientKey string, rr *rrCounter) (WeightedPeer, error) {
	if len(s.Peers) == 0 {
		return WeightedPeer{}, liberr.New(ErrorEmptySet.Uint16(), "")
	}

	switch policy {
	case PolicyRandom:
		return s.weightedRandom(), nil

	case PolicySerial:
		return s.Peers[0], nil

	case PolicyRoundRobin:
		if rr == nil {
			rr = &rrCounter{}
		}
		idx := rr.n.Add(1) % uint64(len(s.Peers))
		return s.Peers[idx], nil

	case PolicyKetama, PolicyRendezvous:
		return s.rendezvous(clientKey), nil

	case PolicyJumpHash:
		return s.Peers[jumpHash(hashKey(clientKey), int32(len(s.Peers)))], nil
	}

	return WeightedPeer{}, liberr.New(ErrorUnknownPolicy.Uint16(), "")
}

func (s PeerSet) weightedRandom() WeightedPeer {
	var total uint64
	for _, p := range s.Peers {
		total += uint64(p.Weight) + 1
	}

	r := uint64(rand.Int63n(int64(total)))
	for _, p := range s.Peers {
		w := uint64(p.Weight) + 1
		if r < w {
			return p
		}
		r -= w
	}

	return s.Peers[len(s.Peers)-1]
}

// rendezvous (HRW) hashing: the peer whose combined hash with clientKey is
// highest wins. Stable under PeerSet membership changes: adding/removing one
// peer only reassigns the keys that hashed best to it, unlike mod-N hashing.
func (s PeerSet) rendezvous(clientKey string) WeightedPeer {
	var (
		best    WeightedPeer
		bestVal uint64
	)

	sorted := make([]WeightedPeer, len(s.Peers))
	copy(sorted, s.Peers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for i, p := range sorted {
		v := hashKey(clientKey + "#" + p.Name)
		if i == 0 || v > bestVal {
			bestVal = v
			best = p
		}
	}

	return best
}

func hashKey(k string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k))
	return h.Sum64()
}

// jumpHash is Google's "A Fast, Minimal Memory, Consistent Hash Algorithm"
// (Lamping & Veach): O(ln n), no auxiliary table.
func jumpHash(key uint64, numBuckets int32) int32 {
	var b, j int64 = -1, 0

	for j < int64(numBuckets) {
		b = j
		key = key*2862933555777941757 + 1
		j = int64(float64(b+1) * (float64(int64(1)<<31) / float64((key>>33)+1)))
	}

	return int32(b)
}

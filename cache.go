// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/cybrota/cryptotree/cryptotree"
	"github.com/patrickmn/go-cache"
)

// NewProofCache creates a cache for inclusion proofs.
func NewProofCache(expiration, cleanup time.Duration) *cache.Cache {
	return cache.New(expiration, cleanup)
}

// proofCacheKey binds a proof to the root it was generated against, so any
// insertion that changes the root makes older entries unreachable.
func proofCacheKey(merkleRoot, id string) string {
	return merkleRoot + "/" + id
}

func CacheProof(c *cache.Cache, merkleRoot, id string, proof []cryptotree.ProofStep) {
	c.Set(proofCacheKey(merkleRoot, id), proof, cache.DefaultExpiration)
}

func GetCachedProof(c *cache.Cache, merkleRoot, id string) ([]cryptotree.ProofStep, bool) {
	val, ok := c.Get(proofCacheKey(merkleRoot, id))
	if !ok {
		return nil, false
	}
	cached := val.([]cryptotree.ProofStep)
	proof := make([]cryptotree.ProofStep, len(cached))
	copy(proof, cached)
	return proof, true
}

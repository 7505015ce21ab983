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
	"reflect"
	"testing"
	"time"

	"github.com/cybrota/cryptotree/cryptotree"
)

func TestCacheProofAndGetCachedProof(t *testing.T) {
	c := NewProofCache(30*time.Minute, 5*time.Minute)
	root := "root-a"
	proof := []cryptotree.ProofStep{{Side: cryptotree.SideLeft, Hash: "abc"}}

	if _, ok := GetCachedProof(c, root, "tx_001"); ok {
		t.Error("expected a miss before caching")
	}

	CacheProof(c, root, "tx_001", proof)

	got, ok := GetCachedProof(c, root, "tx_001")
	if !ok || !reflect.DeepEqual(got, proof) {
		t.Errorf("GetCachedProof = %v, %v; want %v", got, ok, proof)
	}

	// A different root never sees the entry.
	if _, ok := GetCachedProof(c, "root-b", "tx_001"); ok {
		t.Error("proof leaked across roots")
	}

	// Callers get their own copy.
	got[0].Hash = "mutated"
	again, _ := GetCachedProof(c, root, "tx_001")
	if again[0].Hash != "abc" {
		t.Errorf("cached proof was mutated: %v", again)
	}
}

func TestCachedEmptyProofStaysNonNil(t *testing.T) {
	c := NewProofCache(time.Minute, time.Minute)
	CacheProof(c, "root", "tx_root", []cryptotree.ProofStep{})

	got, ok := GetCachedProof(c, "root", "tx_root")
	if !ok || got == nil || len(got) != 0 {
		t.Errorf("GetCachedProof = %#v, %v; want empty non-nil slice", got, ok)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := NewProofCache(100*time.Millisecond, 50*time.Millisecond)
	CacheProof(c, "root", "tx_001", []cryptotree.ProofStep{})

	if _, ok := GetCachedProof(c, "root", "tx_001"); !ok {
		t.Fatal("expected entry right after caching")
	}

	time.Sleep(150 * time.Millisecond)

	if _, ok := GetCachedProof(c, "root", "tx_001"); ok {
		t.Error("expected entry to expire")
	}
}

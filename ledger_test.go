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
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/cybrota/cryptotree/cryptotree"
)

func TestLedgerIngest(t *testing.T) {
	ledger := NewLedger(testConfig(), nil)

	recs := append(sampleRecords(), cryptotree.Record{ID: "tx_003", From: "Mallory", To: "Mallory", Amount: 1})
	added, duplicates := ledger.Ingest(recs, false)

	if added != 5 || duplicates != 1 {
		t.Errorf("Ingest = (%d, %d); want (5, 1)", added, duplicates)
	}
	if ledger.Len() != 5 {
		t.Errorf("Len = %d; want 5", ledger.Len())
	}
	rec, found := ledger.Lookup("tx_003")
	if !found || rec.From != "Bob" {
		t.Errorf("duplicate overwrote original record: %+v", rec)
	}
	if !ledger.Verify().Valid {
		t.Error("expected ledger to verify")
	}
}

func TestLedgerIngestWithProgress(t *testing.T) {
	ledger := NewLedger(testConfig(), nil)
	var progress bytes.Buffer
	ledger.progressOut = &progress

	added, _ := ledger.Ingest(sampleRecords(), true)
	if added != 5 {
		t.Errorf("added = %d; want 5", added)
	}
	if !strings.Contains(progress.String(), "Indexing transactions") {
		t.Errorf("expected progress output, got %q", progress.String())
	}
}

func TestLedgerLookupUsesBloomFilter(t *testing.T) {
	ledger := NewLedger(testConfig(), nil)
	ledger.Ingest(sampleRecords(), false)

	for _, rec := range sampleRecords() {
		if !ledger.MayContain(rec.ID) {
			t.Errorf("bloom filter lost %s", rec.ID)
		}
		got, found := ledger.Lookup(rec.ID)
		if !found || !reflect.DeepEqual(got, rec) {
			t.Errorf("Lookup(%s) = %+v, %v", rec.ID, got, found)
		}
	}

	if _, found := ledger.Lookup("tx_404"); found {
		t.Error("found a transaction that was never added")
	}
}

func TestLedgerProveMatchesTree(t *testing.T) {
	ledger := NewLedger(testConfig(), nil)
	ledger.Ingest(sampleRecords(), false)

	tree := cryptotree.New()
	for _, rec := range sampleRecords() {
		tree.Insert(rec)
	}
	if tree.MerkleRoot() != ledger.Root() {
		t.Fatalf("ledger root %s differs from tree root %s", ledger.Root(), tree.MerkleRoot())
	}

	for _, id := range tree.Keys() {
		want, _ := tree.GetProofOfInclusion(id)
		got, found := ledger.Prove(id)
		if !found || !reflect.DeepEqual(got, want) {
			t.Errorf("Prove(%s) = %v; want %v", id, got, want)
		}
		// Second call is served from the cache.
		if _, ok := GetCachedProof(ledger.proofs, ledger.Root(), id); !ok {
			t.Errorf("proof for %s was not cached", id)
		}
		cached, _ := ledger.Prove(id)
		if !reflect.DeepEqual(cached, want) {
			t.Errorf("cached Prove(%s) = %v; want %v", id, cached, want)
		}
	}

	if _, found := ledger.Prove("tx_404"); found {
		t.Error("proved a transaction that was never added")
	}
}

func TestLedgerProofRefreshesAfterInsert(t *testing.T) {
	ledger := NewLedger(testConfig(), nil)
	ledger.Ingest(sampleRecords(), false)

	// tx_000 forces a rotation that puts tx_001 above tx_003.
	before, _ := ledger.Prove("tx_003")
	rootBefore := ledger.Root()
	ledger.Add(cryptotree.Record{ID: "tx_000", From: "X", To: "Y", Amount: 1})
	after, found := ledger.Prove("tx_003")

	if !found || ledger.Root() == rootBefore {
		t.Fatalf("expected tx_003 to stay provable under a new root")
	}
	if len(before) != 1 || len(after) != 2 {
		t.Errorf("proof lengths = %d, %d; want 1, 2", len(before), len(after))
	}
}

func TestLoadLedger(t *testing.T) {
	path := writeSampleLedger(t)

	ledger, err := loadLedger(path, testConfig(), nil)
	if err != nil {
		t.Fatalf("loadLedger returned error: %v", err)
	}
	if ledger.Len() != 5 {
		t.Errorf("Len = %d; want 5", ledger.Len())
	}

	if _, err := loadLedger(path+".missing", testConfig(), nil); err == nil {
		t.Error("expected error for missing ledger")
	}
}

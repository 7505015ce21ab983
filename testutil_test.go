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
	"path/filepath"
	"testing"

	"github.com/cybrota/cryptotree/cryptotree"
)

func sampleRecords() []cryptotree.Record {
	return []cryptotree.Record{
		{ID: "tx_005", From: "Alice", To: "Bob", Amount: 100, Timestamp: cryptotree.Uint64(1640995200)},
		{ID: "tx_003", From: "Bob", To: "Charlie", Amount: 50, Timestamp: cryptotree.Uint64(1640995300)},
		{ID: "tx_007", From: "Charlie", To: "Dave", Amount: 25, Timestamp: cryptotree.Uint64(1640995400)},
		{ID: "tx_001", From: "Dave", To: "Eve", Amount: 75, Timestamp: cryptotree.Uint64(1640995500)},
		{ID: "tx_009", From: "Eve", To: "Frank", Amount: 30},
	}
}

func testConfig() *Config {
	config := defaultConfig()
	config.Ledger.ShowProgress = false
	config.Index.BloomFilterSize = 1024
	config.Index.BloomFilterHashes = 3
	return &config
}

func writeSampleLedger(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	if err := writeLedgerFile(path, sampleRecords()); err != nil {
		t.Fatalf("writeLedgerFile: %v", err)
	}
	return path
}

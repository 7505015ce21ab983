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
	"fmt"
	"io"
	"os"

	"github.com/cybrota/cryptotree/cryptotree"
	"github.com/patrickmn/go-cache"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
	"go.uber.org/zap"
)

// Ledger indexes transactions in an authenticated tree. A bloom filter
// answers definite misses without a tree descent and proofs are cached per
// merkle root.
type Ledger struct {
	tree        *cryptotree.Tree
	bloomFilter *bloom.BloomFilter
	proofs      *cache.Cache
	logger      *zap.Logger
	progressOut io.Writer
}

func NewLedger(config *Config, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		tree:        cryptotree.New(cryptotree.WithLogger(logger.Named("tree"))),
		bloomFilter: bloom.New(config.Index.BloomFilterSize, config.Index.BloomFilterHashes),
		proofs:      NewProofCache(config.Cache.ProofExpiration, config.Cache.CleanupInterval),
		logger:      logger,
		progressOut: os.Stderr,
	}
}

// Add inserts rec and reports whether it was new.
func (l *Ledger) Add(rec cryptotree.Record) bool {
	if !l.tree.Insert(rec) {
		return false
	}
	l.bloomFilter.AddString(rec.ID)
	return true
}

// Ingest bulk loads recs. Duplicates are skipped and counted.
func (l *Ledger) Ingest(recs []cryptotree.Record, showProgress bool) (added, duplicates int) {
	l.logger.Info("ingesting ledger", zap.Int("transactions", len(recs)))

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(recs),
			progressbar.OptionSetWriter(l.progressOut),
			progressbar.OptionSetDescription("Indexing transactions..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(l.progressOut)
			}),
		)
	}

	for _, rec := range recs {
		if l.Add(rec) {
			added++
		} else {
			duplicates++
			l.logger.Warn("duplicate transaction skipped", zap.String("id", rec.ID))
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	l.logger.Info("ledger indexed",
		zap.Int("added", added),
		zap.Int("duplicates", duplicates),
		zap.Int("height", l.tree.Height()),
		zap.String("merkle_root", l.tree.MerkleRoot()))
	return added, duplicates
}

// MayContain reports whether id might be indexed. False is definite.
func (l *Ledger) MayContain(id string) bool {
	return l.bloomFilter.TestString(id)
}

func (l *Ledger) Lookup(id string) (cryptotree.Record, bool) {
	if !l.MayContain(id) {
		return cryptotree.Record{}, false
	}
	return l.tree.Search(id)
}

func (l *Ledger) Prove(id string) ([]cryptotree.ProofStep, bool) {
	if !l.MayContain(id) {
		return nil, false
	}

	root := l.tree.MerkleRoot()
	if proof, ok := GetCachedProof(l.proofs, root, id); ok {
		return proof, true
	}

	proof, ok := l.tree.GetProofOfInclusion(id)
	if !ok {
		return nil, false
	}
	CacheProof(l.proofs, root, id, proof)
	return proof, true
}

func (l *Ledger) Verify() cryptotree.IntegrityReport {
	return l.tree.Audit()
}

func (l *Ledger) Root() string {
	return l.tree.MerkleRoot()
}

func (l *Ledger) Len() int {
	return l.tree.Len()
}

func (l *Ledger) Height() int {
	return l.tree.Height()
}

func (l *Ledger) Keys() []string {
	return l.tree.Keys()
}

// loadLedger reads path and indexes it.
func loadLedger(path string, config *Config, logger *zap.Logger) (*Ledger, error) {
	recs, err := readLedgerFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	ledger := NewLedger(config, logger)
	ledger.Ingest(recs, config.Ledger.ShowProgress)
	return ledger, nil
}

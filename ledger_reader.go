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
	"errors"
	"fmt"
	"os"

	"github.com/cybrota/cryptotree/cryptotree"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingID   = errors.New("transaction has no id")
	ErrEmptyLedger = errors.New("ledger has no transactions")
)

// ledgerFile is the on-disk shape of a ledger. JSON files parse too since
// JSON is a subset of YAML.
type ledgerFile struct {
	Transactions []cryptotree.Record `yaml:"transactions"`
}

// readLedgerFile loads and validates every transaction in path.
func readLedgerFile(path string) ([]cryptotree.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("ledger file not found: %s", path)
		}
		return nil, err
	}
	return parseLedger(data)
}

func parseLedger(data []byte) ([]cryptotree.Record, error) {
	var ledger ledgerFile
	if err := yaml.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("failed to parse ledger: %w", err)
	}

	if len(ledger.Transactions) == 0 {
		return nil, ErrEmptyLedger
	}
	for i, rec := range ledger.Transactions {
		if rec.ID == "" {
			return nil, fmt.Errorf("transaction %d: %w", i, ErrMissingID)
		}
	}
	return ledger.Transactions, nil
}

// writeLedgerFile stores records in the format readLedgerFile accepts.
func writeLedgerFile(path string, recs []cryptotree.Record) error {
	data, err := yaml.Marshal(ledgerFile{Transactions: recs})
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	return nil
}

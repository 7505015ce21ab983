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

package cryptotree

// Record is a single ledger entry indexed by the tree. Field order is part of
// the canonical digest encoding and must not change.
type Record struct {
	ID        string  `json:"id" yaml:"id"`
	From      string  `json:"from" yaml:"from"`
	To        string  `json:"to" yaml:"to"`
	Amount    uint64  `json:"amount" yaml:"amount"`
	Timestamp *uint64 `json:"timestamp" yaml:"timestamp,omitempty"`
}

// Clone returns a deep copy so stored payloads never alias caller memory.
func (r Record) Clone() Record {
	if r.Timestamp != nil {
		ts := *r.Timestamp
		r.Timestamp = &ts
	}
	return r
}

// Uint64 is a helper for building records with a timestamp literal.
func Uint64(v uint64) *uint64 {
	return &v
}

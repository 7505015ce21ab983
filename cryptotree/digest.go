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

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const (
	// Sentinel stands in for a missing child digest and for the merkle root
	// of an empty tree. It is part of the canonical encoding.
	Sentinel = "0"

	// DigestLength is the length of a hex rendered SHA-256 digest.
	DigestLength = sha256.Size * 2
)

// nodeData is the canonical shape hashed for every node. Field order is fixed.
type nodeData struct {
	Transaction Record `json:"transaction"`
	LeftHash    string `json:"left_hash"`
	RightHash   string `json:"right_hash"`
	Height      int    `json:"height"`
}

// EncodeNode returns the canonical byte encoding of a node: compact JSON with
// fields in declared order. An empty child digest means the child is absent
// and is encoded as Sentinel.
func EncodeNode(rec Record, leftDigest, rightDigest string, height int) []byte {
	if leftDigest == "" {
		leftDigest = Sentinel
	}
	if rightDigest == "" {
		rightDigest = Sentinel
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(nodeData{
		Transaction: rec,
		LeftHash:    leftDigest,
		RightHash:   rightDigest,
		Height:      height,
	})
	if err != nil {
		// Every field is a string or an unsigned integer.
		panic(fmt.Sprintf("cryptotree: canonical encoding failed: %v", err))
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// HashNode computes the node digest as lowercase hex SHA-256 over EncodeNode.
func HashNode(rec Record, leftDigest, rightDigest string, height int) string {
	sum := sha256.Sum256(EncodeNode(rec, leftDigest, rightDigest, height))
	return hex.EncodeToString(sum[:])
}

// IsDigest reports whether s looks like a digest produced by HashNode.
func IsDigest(s string) bool {
	if len(s) != DigestLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

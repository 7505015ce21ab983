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

type node struct {
	record Record // Immutable once inserted
	digest string // HashNode(record, left.digest, right.digest, height)
	height int
	left   *node
	right  *node
}

func newLeaf(rec Record) *node {
	n := &node{record: rec.Clone(), height: 1}
	n.digest = HashNode(n.record, Sentinel, Sentinel, 1)
	return n
}

func (n *node) key() string {
	return n.record.ID
}

// childDigest returns the digest of a possibly absent child.
func childDigest(n *node) string {
	if n == nil {
		return Sentinel
	}
	return n.digest
}

// expectedDigest recomputes what the node's digest should be given its
// record, its height and the digests currently stored on its children.
func (n *node) expectedDigest() string {
	return HashNode(n.record, childDigest(n.left), childDigest(n.right), n.height)
}

func (n *node) rehash() {
	n.digest = n.expectedDigest()
}

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

// Package cryptotree implements an authenticated AVL tree. Every node carries
// a SHA-256 digest over its record, its children's digests and its height, so
// the digest of the root commits to the full content and shape of the tree.
//
// A Tree is not safe for concurrent mutation.
package cryptotree

import (
	"go.uber.org/zap"
)

type Tree struct {
	root       *node
	size       int
	merkleRoot string
	logger     *zap.Logger
}

// New returns an empty tree whose merkle root is Sentinel.
func New(opts ...Option) *Tree {
	tree := &Tree{
		merkleRoot: Sentinel,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(tree)
	}
	return tree
}

func (tree *Tree) getHeight(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (tree *Tree) updateHeight(n *node) {
	n.height = max(tree.getHeight(n.left), tree.getHeight(n.right)) + 1
}

func (tree *Tree) getBalanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return tree.getHeight(n.left) - tree.getHeight(n.right)
}

// rotateLeft lifts n.right above n. The node that moved down is refreshed
// first because the pivot's digest depends on it.
func (tree *Tree) rotateLeft(n *node) *node {
	if n == nil || n.right == nil {
		return n
	}

	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	tree.updateHeight(n)
	n.rehash()
	tree.updateHeight(pivot)
	pivot.rehash()

	return pivot
}

// rotateRight lifts n.left above n.
func (tree *Tree) rotateRight(n *node) *node {
	if n == nil || n.left == nil {
		return n
	}

	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	tree.updateHeight(n)
	n.rehash()
	tree.updateHeight(pivot)
	pivot.rehash()

	return pivot
}

func (tree *Tree) rebalance(n *node) *node {
	balanceFactor := tree.getBalanceFactor(n)

	// Left-heavy
	if balanceFactor > 1 {
		if tree.getBalanceFactor(n.left) < 0 {
			n.left = tree.rotateLeft(n.left)
		}
		return tree.rotateRight(n)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if tree.getBalanceFactor(n.right) > 0 {
			n.right = tree.rotateRight(n.right)
		}
		return tree.rotateLeft(n)
	}

	return n
}

// Insert adds rec to the tree. It returns false and leaves the tree untouched
// when a record with the same ID is already present.
func (tree *Tree) Insert(rec Record) bool {
	var inserted bool
	tree.root = tree.insertRecursive(tree.root, rec, &inserted)
	if !inserted {
		tree.logger.Debug("duplicate record rejected", zap.String("id", rec.ID))
		return false
	}

	tree.size++
	tree.updateMerkleRoot()
	tree.logger.Debug("record inserted",
		zap.String("id", rec.ID),
		zap.Int("size", tree.size),
		zap.String("merkle_root", tree.merkleRoot))
	return true
}

func (tree *Tree) insertRecursive(n *node, rec Record, inserted *bool) *node {
	if n == nil {
		*inserted = true
		return newLeaf(rec)
	}

	if rec.ID < n.key() {
		n.left = tree.insertRecursive(n.left, rec, inserted)
	} else if rec.ID > n.key() {
		n.right = tree.insertRecursive(n.right, rec, inserted)
	} else {
		// Keep the original record
		return n
	}

	if !*inserted {
		return n
	}

	tree.updateHeight(n)
	n = tree.rebalance(n)
	// Children may have changed in rebalance, so hash last.
	n.rehash()
	return n
}

func (tree *Tree) updateMerkleRoot() {
	tree.merkleRoot = Sentinel
	if tree.root != nil {
		tree.merkleRoot = tree.root.digest
	}
}

// Search returns a copy of the record stored under key.
func (tree *Tree) Search(key string) (Record, bool) {
	n := searchNode(tree.root, key)
	if n == nil {
		return Record{}, false
	}
	return n.record.Clone(), true
}

func searchNode(n *node, key string) *node {
	if n == nil {
		return nil
	}

	if key < n.key() {
		return searchNode(n.left, key)
	} else if key > n.key() {
		return searchNode(n.right, key)
	}
	return n
}

// MerkleRoot returns the digest of the root node, or Sentinel when empty.
func (tree *Tree) MerkleRoot() string {
	return tree.merkleRoot
}

func (tree *Tree) Len() int {
	return tree.size
}

func (tree *Tree) IsEmpty() bool {
	return tree.size == 0
}

// Height returns the height of the root, 0 for an empty tree.
func (tree *Tree) Height() int {
	return tree.getHeight(tree.root)
}

// Walk visits records in ascending key order until fn returns false.
func (tree *Tree) Walk(fn func(Record) bool) {
	walkInOrder(tree.root, fn)
}

func walkInOrder(n *node, fn func(Record) bool) bool {
	if n == nil {
		return true
	}
	if !walkInOrder(n.left, fn) {
		return false
	}
	if !fn(n.record.Clone()) {
		return false
	}
	return walkInOrder(n.right, fn)
}

// Keys returns every key in ascending order.
func (tree *Tree) Keys() []string {
	keys := make([]string, 0, tree.size)
	tree.Walk(func(rec Record) bool {
		keys = append(keys, rec.ID)
		return true
	})
	return keys
}

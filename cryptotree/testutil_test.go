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
	"testing"

	"github.com/stretchr/testify/require"
)

func testRecord(id string) Record {
	return Record{
		ID:        id,
		From:      "Alice",
		To:        "Bob",
		Amount:    100,
		Timestamp: Uint64(1640995200),
	}
}

func buildTree(t *testing.T, ids ...string) *Tree {
	t.Helper()
	tree := New()
	for _, id := range ids {
		require.True(t, tree.Insert(testRecord(id)), "insert %s", id)
	}
	return tree
}

// requireInvariants checks ordering, balance, height, digest and size
// invariants over the whole tree.
func requireInvariants(t *testing.T, tree *Tree) {
	t.Helper()
	count := checkSubtree(t, tree.root, "", "")
	require.Equal(t, tree.Len(), count, "size does not match reachable nodes")
	if tree.root == nil {
		require.Equal(t, Sentinel, tree.MerkleRoot())
	} else {
		require.Equal(t, tree.root.digest, tree.MerkleRoot())
	}
}

func checkSubtree(t *testing.T, n *node, low, high string) int {
	t.Helper()
	if n == nil {
		return 0
	}
	if low != "" {
		require.Greater(t, n.key(), low, "ordering violated")
	}
	if high != "" {
		require.Less(t, n.key(), high, "ordering violated")
	}

	left := checkSubtree(t, n.left, low, n.key())
	right := checkSubtree(t, n.right, n.key(), high)

	lh, rh := 0, 0
	if n.left != nil {
		lh = n.left.height
	}
	if n.right != nil {
		rh = n.right.height
	}
	require.Equal(t, max(lh, rh)+1, n.height, "height of %s", n.key())
	require.LessOrEqual(t, lh-rh, 1, "balance of %s", n.key())
	require.GreaterOrEqual(t, lh-rh, -1, "balance of %s", n.key())
	require.Equal(t, n.expectedDigest(), n.digest, "digest of %s", n.key())
	require.True(t, IsDigest(n.digest))

	return left + right + 1
}

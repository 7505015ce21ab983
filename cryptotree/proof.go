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

// Side names which side of the search path a sibling digest sits on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ProofStep is one sibling digest collected while descending to a key.
type ProofStep struct {
	Side Side   `json:"side" yaml:"side"`
	Hash string `json:"hash" yaml:"hash"`
}

// GetProofOfInclusion descends toward key the same way Search does and
// collects, at every branch, the digest of the sibling subtree that the
// descent did not enter. Steps are in root-to-leaf order. The proof carries
// sibling digests only; rebuilding an ancestor's digest also requires that
// ancestor's record and height.
func (tree *Tree) GetProofOfInclusion(key string) ([]ProofStep, bool) {
	proof := []ProofStep{}
	if !collectProof(tree.root, key, &proof) {
		return nil, false
	}
	return proof, true
}

func collectProof(n *node, key string, proof *[]ProofStep) bool {
	if n == nil {
		return false
	}

	if key < n.key() {
		if n.right != nil {
			*proof = append(*proof, ProofStep{Side: SideRight, Hash: n.right.digest})
		}
		return collectProof(n.left, key, proof)
	} else if key > n.key() {
		if n.left != nil {
			*proof = append(*proof, ProofStep{Side: SideLeft, Hash: n.left.digest})
		}
		return collectProof(n.right, key, proof)
	}
	return true
}

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

import "go.uber.org/zap"

// IntegrityReport is the outcome of a full digest audit.
type IntegrityReport struct {
	Valid         bool
	NodesChecked  int
	FirstMismatch string   // Key of the first node whose digest did not match
	Mismatches    []string // Keys of all mismatching nodes, in visit order
}

// VerifyIntegrity recomputes every node digest and reports whether all of
// them match. An empty tree is valid.
func (tree *Tree) VerifyIntegrity() bool {
	return tree.Audit().Valid
}

// Audit walks the tree children-first and recomputes each node's digest from
// its record, its height and the digests stored on its children. It never
// repairs anything.
func (tree *Tree) Audit() IntegrityReport {
	report := IntegrityReport{Valid: true}
	tree.auditRecursive(tree.root, &report)
	if !report.Valid {
		tree.logger.Warn("integrity check failed",
			zap.String("first_mismatch", report.FirstMismatch),
			zap.Int("mismatches", len(report.Mismatches)),
			zap.Int("nodes_checked", report.NodesChecked))
	}
	return report
}

func (tree *Tree) auditRecursive(n *node, report *IntegrityReport) {
	if n == nil {
		return
	}
	tree.auditRecursive(n.left, report)
	tree.auditRecursive(n.right, report)

	report.NodesChecked++
	expected := n.expectedDigest()
	if n.digest == expected {
		return
	}

	tree.logger.Warn("hash mismatch",
		zap.String("id", n.key()),
		zap.String("stored", n.digest),
		zap.String("expected", expected))
	if report.Valid {
		report.Valid = false
		report.FirstMismatch = n.key()
	}
	report.Mismatches = append(report.Mismatches, n.key())
}

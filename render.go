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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cybrota/cryptotree/cryptotree"
	"gopkg.in/yaml.v3"
)

func formatRecord(rec cryptotree.Record) string {
	return fmt.Sprintf("%s  %s -> %s  amount=%d  time=%s",
		styles.Label.Render(rec.ID), rec.From, rec.To, rec.Amount, FormatUnix(rec.Timestamp))
}

// formatProof renders proof steps as text, json or yaml.
func formatProof(proof []cryptotree.ProofStep, format string) (string, error) {
	switch format {
	case "", "text":
		if len(proof) == 0 {
			return styles.Muted.Render("(empty proof: key is at the root)"), nil
		}
		var sb strings.Builder
		for i, step := range proof {
			fmt.Fprintf(&sb, "%2d. %-5s %s\n", i+1, step.Side, styles.Digest.Render(step.Hash))
		}
		return strings.TrimSuffix(sb.String(), "\n"), nil
	case "json":
		data, err := json.MarshalIndent(proof, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal proof: %w", err)
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(proof)
		if err != nil {
			return "", fmt.Errorf("failed to marshal proof: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	default:
		return "", fmt.Errorf("unknown proof format %q (want text, json or yaml)", format)
	}
}

func formatIntegrity(report cryptotree.IntegrityReport) string {
	if report.Valid {
		return styles.Success.Render(fmt.Sprintf("integrity OK (%d nodes checked)", report.NodesChecked))
	}
	return styles.Error.Render(fmt.Sprintf("integrity FAILED at %s (%d of %d nodes mismatched: %s)",
		report.FirstMismatch, len(report.Mismatches), report.NodesChecked,
		strings.Join(report.Mismatches, ", ")))
}

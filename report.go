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
	"strings"

	"github.com/charmbracelet/glamour"
)

const reportKeyLimit = 50

// buildReport summarises a ledger as markdown.
func buildReport(l *Ledger) string {
	integrity := l.Verify()

	var sb strings.Builder
	sb.WriteString("# Ledger report\n\n")
	sb.WriteString("| Property | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Transactions | %d |\n", l.Len())
	fmt.Fprintf(&sb, "| Tree height | %d |\n", l.Height())
	fmt.Fprintf(&sb, "| Merkle root | `%s` |\n", l.Root())
	if integrity.Valid {
		fmt.Fprintf(&sb, "| Integrity | OK (%d nodes) |\n", integrity.NodesChecked)
	} else {
		fmt.Fprintf(&sb, "| Integrity | FAILED at `%s` |\n", integrity.FirstMismatch)
	}

	keys := l.Keys()
	sb.WriteString("\n## Transactions\n\n")
	for i, key := range keys {
		if i == reportKeyLimit {
			fmt.Fprintf(&sb, "* ... and %d more\n", len(keys)-reportKeyLimit)
			break
		}
		rec, _ := l.Lookup(key)
		fmt.Fprintf(&sb, "* `%s` %s → %s (%d) at %s\n", rec.ID, rec.From, rec.To, rec.Amount, FormatUnix(rec.Timestamp))
	}
	return sb.String()
}

func renderMarkdown(md string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(md)
}

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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/cryptotree/cryptotree"
	"github.com/mattn/go-shellwords"
)

const shellPrompt = "cryptotree> "

var errShellExit = errors.New("exit")

const shellHelp = `Commands:
  insert <id> <from> <to> <amount> [timestamp]
  search <id>
  prove <id> [text|json|yaml]
  verify
  root
  len
  height
  keys
  help
  exit`

// splitCommand splits a full command string into parts.
func splitCommand(fullCmd string) ([]string, error) {
	args, err := shellwords.Parse(fullCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", fullCmd, err)
	}
	return args, nil
}

// runShell reads commands from in until EOF or exit and writes results to out.
func runShell(in io.Reader, out io.Writer, l *Ledger) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, shellPrompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			err := execShellLine(out, l, line)
			if errors.Is(err, errShellExit) {
				return nil
			}
			if err != nil {
				fmt.Fprintln(out, styles.Error.Render("error: "+err.Error()))
			}
		}
		fmt.Fprint(out, shellPrompt)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func execShellLine(out io.Writer, l *Ledger, line string) error {
	parts, err := splitCommand(line)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return nil
	}

	args := parts[1:]
	switch parts[0] {
	case "insert":
		rec, err := parseRecordArgs(args)
		if err != nil {
			return err
		}
		if !l.Add(rec) {
			fmt.Fprintf(out, "duplicate: %s already indexed\n", rec.ID)
			return nil
		}
		fmt.Fprintf(out, "inserted %s, root %s\n", rec.ID, styles.Digest.Render(l.Root()))
	case "search":
		if len(args) != 1 {
			return fmt.Errorf("usage: search <id>")
		}
		rec, found := l.Lookup(args[0])
		if !found {
			fmt.Fprintf(out, "%s not found\n", args[0])
			return nil
		}
		fmt.Fprintln(out, formatRecord(rec))
	case "prove":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("usage: prove <id> [text|json|yaml]")
		}
		proof, found := l.Prove(args[0])
		if !found {
			fmt.Fprintf(out, "%s not found\n", args[0])
			return nil
		}
		format := "text"
		if len(args) == 2 {
			format = args[1]
		}
		text, err := formatProof(proof, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	case "verify":
		fmt.Fprintln(out, formatIntegrity(l.Verify()))
	case "root":
		fmt.Fprintln(out, l.Root())
	case "len":
		fmt.Fprintln(out, l.Len())
	case "height":
		fmt.Fprintln(out, l.Height())
	case "keys":
		fmt.Fprintln(out, strings.Join(l.Keys(), "\n"))
	case "help":
		fmt.Fprintln(out, shellHelp)
	case "exit", "quit":
		return errShellExit
	default:
		return fmt.Errorf("unknown command %q (try help)", parts[0])
	}
	return nil
}

func parseRecordArgs(args []string) (cryptotree.Record, error) {
	if len(args) < 4 || len(args) > 5 {
		return cryptotree.Record{}, fmt.Errorf("usage: insert <id> <from> <to> <amount> [timestamp]")
	}
	if args[0] == "" {
		return cryptotree.Record{}, ErrMissingID
	}

	amount, err := strconv.ParseUint(args[3], 10, 64)
	if err != nil {
		return cryptotree.Record{}, fmt.Errorf("invalid amount %q: %w", args[3], err)
	}
	rec := cryptotree.Record{ID: args[0], From: args[1], To: args[2], Amount: amount}

	if len(args) == 5 {
		ts, err := strconv.ParseUint(args[4], 10, 64)
		if err != nil {
			return cryptotree.Record{}, fmt.Errorf("invalid timestamp %q: %w", args[4], err)
		}
		rec.Timestamp = &ts
	}
	return rec, nil
}

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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **cryptotree %s**

An authenticated AVL index for transaction ledgers. Every node carries a SHA-256
digest over its transaction, its children's digests and its height, so the merkle
root commits to the whole ledger.

Built with Go %s

# 1. Commands
* **ingest**: load the ledger and print its size, height and merkle root
* **search <id>**: look up a transaction
* **prove <id>**: print the sibling digests along the path to a transaction
* **verify**: recompute every digest and report the first mismatch
* **report**: render a markdown summary of the ledger
* **shell**: interactive session over the loaded ledger
* **settings**: show or create ~/.cryptotree.yaml

# 2. Ledger format
A YAML (or JSON) file with a top level *transactions* list. Each entry has
*id*, *from*, *to*, *amount* and an optional *timestamp* in epoch seconds.

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

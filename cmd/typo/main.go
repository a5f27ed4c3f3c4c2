// Copyright 2025 The Typo Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the typo spell checking server and CLI.

Typo checks words against Hunspell .aff/.dic dictionaries. Words are accepted
as dictionary roots, as roots expanded by prefix and suffix rules, or as
compounds of flagged roots. Misspelled words get corrections ranked by edit
distance.

# Usage

Start the msgpack IPC server on stdin/stdout:

	typo serve --locale en_US

Check a file or a few words:

	typo check --file notes.txt
	typo check recieve definately

List corrections:

	typo suggest -n 5 helo

Run an interactive session:

	typo repl -d

Dictionaries are looked up as <locale>.aff and <locale>.dic in the data
directory, or given directly with --aff and --dic. When none can be read a
small built-in English word list is used.

# Configuration

Runtime configuration is read from typo-config.toml in the user config dir:

	[server]
	max_suggestions = 10
	max_word_length = 60
	watch_files = true
	cache_size = 1024

	[dict]
	locale = "en_US"
	data_dir = "dicts/"

	[cli]
	default_limit = 10
	show_timings = false

# IPC Protocol

Requests and responses are MessagePack maps. See package server for all
actions.

	{"id": "r1", "action": "check", "w": "helo"}
	{"id": "r1", "w": "helo", "ok": false, "s": [{"w": "hello", "r": 1}], "t": 212}
*/
package main

import (
	"os"

	"github.com/bastiangx/typo/cmd/typo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}

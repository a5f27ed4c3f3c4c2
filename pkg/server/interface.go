/*
Package server implements msgpack IPC for spell checking services.

The server reads msgpack requests from stdin and writes one msgpack response
per request to stdout. Messages are processed synchronously, in order, with
timing info (microseconds) included in responses.

# IPC

The first message written is a status object:

	{"status": "ready"}

Every request carries an ID, an action and usually a word:

	{"id": "req_001", "action": "check", "w": "wrk", "l": 5}

A misspelled word is answered with its suggestions when a limit is given:

	{"id": "req_001", "w": "wrk", "ok": false, "s": [{"w": "work", "r": 1}], "t": 140}

Actions:

	check     validity of "w"; suggestions included when "l" > 0
	suggest   ranked corrections of "w", capped by "l" or the configured max
	complete  dictionary words starting with "w"
	stats     dictionary sizes and suggestion cache counters
	health    {"status": "ok"}

Failures are reported with ErrorResponse. Invalid input (empty or overlong
words, unknown actions, undecodable messages) uses code 400, anything else 500.

When started with file watching, the server reloads the dictionary after the
.aff or .dic file changes on disk. Requests keep being answered by the old
dictionary until the new one is fully loaded.
*/
package server

import "github.com/bastiangx/typo/pkg/dictionary"

// Request actions.
const (
	ActionCheck    = "check"
	ActionSuggest  = "suggest"
	ActionComplete = "complete"
	ActionStats    = "stats"
	ActionHealth   = "health"
)

// Request is a single client message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Suggestion is one ranked word; rank 1 is the best match.
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CheckResponse answers a check request.
type CheckResponse struct {
	ID          string       `msgpack:"id"`
	Word        string       `msgpack:"w"`
	Correct     bool         `msgpack:"ok"`
	Suggestions []Suggestion `msgpack:"s,omitempty"`
	TimeTaken   int64        `msgpack:"t"`
}

// SuggestResponse answers a suggest request.
type SuggestResponse struct {
	ID          string       `msgpack:"id"`
	Word        string       `msgpack:"w"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	Cached      bool         `msgpack:"cached,omitempty"`
	TimeTaken   int64        `msgpack:"t"`
}

// CompleteResponse answers a complete request.
type CompleteResponse struct {
	ID          string       `msgpack:"id"`
	Prefix      string       `msgpack:"p"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatsResponse answers a stats request.
type StatsResponse struct {
	ID         string           `msgpack:"id"`
	Locale     string           `msgpack:"locale"`
	Dictionary dictionary.Stats `msgpack:"dict"`
	Cache      map[string]int   `msgpack:"cache,omitempty"`
	Reloads    int              `msgpack:"reloads"`
}

// StatusResponse is sent on startup and for health requests.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

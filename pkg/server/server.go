package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/typo/internal/logger"
	"github.com/bastiangx/typo/internal/utils"
	"github.com/bastiangx/typo/pkg/config"
	"github.com/bastiangx/typo/pkg/suggest"
	"github.com/bastiangx/typo/pkg/typo"
	"github.com/bastiangx/typo/pkg/typoerr"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// state pairs an instance with the suggestion cache filled from it.
type state struct {
	typo  *typo.Typo
	cache *suggest.HotCache
}

// Server handles the IPC for spell checking.
type Server struct {
	current atomic.Pointer[state]
	reloads atomic.Int64

	config  *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates a server on stdin/stdout.
func NewServer(t *typo.Typo, cfg *config.Config) *Server {
	return NewServerWithIO(t, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w.
func NewServerWithIO(t *typo.Typo, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("server"),
	}
	s.Swap(t)
	return s
}

// Typo returns the instance currently answering requests.
func (s *Server) Typo() *typo.Typo {
	return s.current.Load().typo
}

// Swap replaces the active instance. Requests already being handled finish
// on the old one. The suggestion cache is reset with it.
func (s *Server) Swap(t *typo.Typo) {
	next := &state{typo: t, cache: suggest.NewHotCache(s.config.Server.CacheSize)}
	if s.current.Swap(next) != nil {
		s.reloads.Add(1)
	}
}

// Start writes the ready status and serves requests until the input ends or
// ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	s.log.Debug("Starting server", "locale", s.Typo().Locale())

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed, stopping server")
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return fmt.Errorf("read request: %w", err)
		}

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.log.Warnf("Malformed request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case ActionCheck:
		s.handleCheck(req)
	case ActionSuggest:
		s.handleSuggest(req)
	case ActionComplete:
		s.handleComplete(req)
	case ActionStats:
		s.handleStats(req)
	case ActionHealth:
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %q", req.Action), 400)
	}
}

// validateWord rejects words the engine should not see and reports why.
func (s *Server) validateWord(req Request) bool {
	if req.Word == "" {
		s.sendError(req.ID, "missing 'w' parameter", 400)
		return false
	}
	if maxLen := s.config.Server.MaxWordLength; maxLen > 0 && utf8.RuneCountInString(req.Word) > maxLen {
		s.sendError(req.ID, fmt.Sprintf("word exceeds maximum length of %d characters", maxLen), 400)
		return false
	}
	return true
}

func (s *Server) limit(requested int) int {
	maxN := s.config.Server.MaxSuggestions
	if requested <= 0 || (maxN > 0 && requested > maxN) {
		return maxN
	}
	return requested
}

func (s *Server) handleCheck(req Request) {
	if !s.validateWord(req) {
		return
	}
	st := s.current.Load()
	start := time.Now()

	ok, err := st.typo.Check(req.Word)
	if err != nil {
		s.sendEngineError(req.ID, err)
		return
	}
	resp := CheckResponse{ID: req.ID, Word: req.Word, Correct: ok}
	if !ok && req.Limit > 0 {
		words, _, err := st.suggestions(req.Word, s.limit(req.Limit))
		if err != nil {
			s.sendEngineError(req.ID, err)
			return
		}
		resp.Suggestions = ranked(words)
	}
	resp.TimeTaken = time.Since(start).Microseconds()
	s.send(resp)
}

func (s *Server) handleSuggest(req Request) {
	if !s.validateWord(req) {
		return
	}
	start := time.Now()
	words, cached, err := s.current.Load().suggestions(req.Word, s.limit(req.Limit))
	if err != nil {
		s.sendEngineError(req.ID, err)
		return
	}
	s.send(SuggestResponse{
		ID:          req.ID,
		Word:        req.Word,
		Suggestions: ranked(words),
		Count:       len(words),
		Cached:      cached,
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) handleComplete(req Request) {
	if !s.validateWord(req) {
		return
	}
	start := time.Now()
	words := s.Typo().Complete(req.Word, s.limit(req.Limit))
	s.send(CompleteResponse{
		ID:          req.ID,
		Prefix:      req.Word,
		Suggestions: ranked(words),
		Count:       len(words),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) handleStats(req Request) {
	st := s.current.Load()
	s.send(StatsResponse{
		ID:         req.ID,
		Locale:     st.typo.Locale(),
		Dictionary: st.typo.DictionaryStats(),
		Cache:      st.cache.Stats(),
		Reloads:    int(s.reloads.Load()),
	})
}

// suggestions consults the cache first. The key is the word as typed, since
// its casing shapes the result.
func (st *state) suggestions(word string, limit int) ([]string, bool, error) {
	key := fmt.Sprintf("%d:%s", limit, strings.TrimSpace(word))
	if words, ok := st.cache.Get(key); ok {
		return words, true, nil
	}
	words, err := st.typo.SuggestN(word, limit)
	if err != nil {
		return nil, false, err
	}
	st.cache.Put(key, words)
	return words, false, nil
}

func ranked(words []string) []Suggestion {
	ranks := utils.CreateRankList(len(words))
	out := make([]Suggestion, len(words))
	for i, w := range words {
		out[i] = Suggestion{Word: w, Rank: ranks[i]}
	}
	return out
}

// send encodes one response.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return err
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func (s *Server) sendEngineError(id string, err error) {
	code := 500
	if typoerr.IsType(err, typoerr.InvalidInput) {
		code = 400
	}
	s.sendError(id, err.Error(), code)
}

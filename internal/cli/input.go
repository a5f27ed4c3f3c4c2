// Package cli handles cmd line input for spell checking words interactively
// and from files.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/typo/internal/utils"
	"github.com/bastiangx/typo/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Speller is the part of typo.Typo the CLI needs.
type Speller interface {
	Check(word string) (bool, error)
	SuggestN(word string, limit int) ([]string, error)
	Complete(prefix string, limit int) []string
	DictionaryStats() dictionary.Stats
	Locale() string
}

// InputHandler reads lines, checks every word in them and prints verdicts.
// Lines starting with ':' are commands (:stats, :complete <prefix>, :quit).
type InputHandler struct {
	speller      Speller
	suggestLimit int
	maxWordLen   int
	showTimings  bool
	in           io.Reader
	out          io.Writer
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(speller Speller, limit, maxWordLen int, showTimings bool, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		speller:      speller,
		suggestLimit: limit,
		maxWordLen:   maxWordLen,
		showTimings:  showTimings,
		in:           in,
		out:          out,
	}
}

// errQuit ends the loop without error.
var errQuit = errors.New("quit")

// Start begins the interface loop. It returns nil once input ends or :quit
// is entered.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, okStyle.Render("Typo CLI")+" "+dimStyle.Render(h.speller.Locale()))
	fmt.Fprintln(h.out, dimStyle.Render("type words and press Enter (:stats, :complete <prefix>, :quit)"))

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := h.handleInput(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

func (h *InputHandler) handleInput(line string) error {
	if strings.HasPrefix(line, ":") {
		return h.handleCommand(line)
	}
	start := time.Now()
	misspelled := h.CheckText(line)
	log.Debugf("Checked %q: %d misspelled", line, misspelled)
	if h.showTimings {
		fmt.Fprintln(h.out, FormatTiming(time.Since(start)))
	}
	return nil
}

func (h *InputHandler) handleCommand(line string) error {
	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	switch cmd {
	case "q", "quit", "exit":
		return errQuit
	case "stats":
		fmt.Fprint(h.out, FormatStats(h.speller.Locale(), h.speller.DictionaryStats()))
	case "complete", "c":
		arg = strings.TrimSpace(arg)
		if arg == "" {
			fmt.Fprintln(h.out, badStyle.Render("usage: :complete <prefix>"))
			return nil
		}
		words := h.speller.Complete(arg, h.suggestLimit)
		if len(words) == 0 {
			fmt.Fprintln(h.out, dimStyle.Render("no completions for "+arg))
			return nil
		}
		fmt.Fprint(h.out, FormatList(words))
	default:
		fmt.Fprintln(h.out, badStyle.Render("unknown command: "+cmd))
	}
	return nil
}

// CheckText prints a verdict for every word of text and returns how many were
// misspelled. Numbers and overlong tokens are skipped.
func (h *InputHandler) CheckText(text string) int {
	misspelled := 0
	for _, tok := range utils.Tokenize(text) {
		if !utils.IsValidInput(tok.Word, h.maxWordLen) {
			log.Debugf("Skipping token %q", tok.Word)
			continue
		}
		ok, err := h.speller.Check(tok.Word)
		if err != nil {
			log.Warnf("Checking %q: %v", tok.Word, err)
			continue
		}
		var suggestions []string
		if !ok {
			misspelled++
			suggestions, err = h.speller.SuggestN(tok.Word, h.suggestLimit)
			if err != nil {
				log.Warnf("Suggesting for %q: %v", tok.Word, err)
			}
		}
		fmt.Fprintln(h.out, FormatVerdict(tok.Word, ok, suggestions))
	}
	return misspelled
}

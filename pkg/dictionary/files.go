package dictionary

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/htmlindex"
)

// ReadFiles reads an .aff/.dic pair and returns both as UTF-8 text.
//
// The files are read concurrently. Their bytes are decoded with the encoding
// named by the affix file's SET directive; unknown encodings are passed
// through unchanged with a warning. An empty affPath reads the word list only.
func ReadFiles(ctx context.Context, affPath, dicPath string) (aff, dic string, err error) {
	var affRaw, dicRaw []byte

	g, ctx := errgroup.WithContext(ctx)
	if affPath != "" {
		g.Go(func() error {
			b, err := readFile(ctx, affPath)
			affRaw = b
			return err
		})
	}
	g.Go(func() error {
		b, err := readFile(ctx, dicPath)
		dicRaw = b
		return err
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}

	set := detectSet(affRaw)
	if aff, err = decode(affRaw, set); err != nil {
		return "", "", fmt.Errorf("decoding %s as %s: %w", affPath, set, err)
	}
	if dic, err = decode(dicRaw, set); err != nil {
		return "", "", fmt.Errorf("decoding %s as %s: %w", dicPath, set, err)
	}
	log.Debugf("Read dictionary files aff=%s dic=%s (%s, %d+%d bytes)", affPath, dicPath, set, len(affRaw), len(dicRaw))
	return aff, dic, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return b, nil
}

// detectSet scans raw affix bytes for the SET directive. SET values are ASCII
// in every encoding Hunspell supports, so this works before decoding.
func detectSet(raw []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) >= 2 && fields[0] == "SET" {
			return fields[1]
		}
	}
	return DefaultEncoding
}

func decode(raw []byte, set string) (string, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if isUTF8(set) {
		return string(raw), nil
	}
	enc, err := htmlindex.Get(set)
	if err != nil {
		log.Warnf("Unknown dictionary encoding %q, reading as UTF-8", set)
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func isUTF8(set string) bool {
	switch strings.ToUpper(strings.ReplaceAll(set, "-", "")) {
	case "UTF8", "":
		return true
	}
	return false
}

// FindDictionary locates <locale>.aff and <locale>.dic inside dir. Both
// "en_US" and "en-US" spellings are tried. A missing .aff is not an error.
func FindDictionary(dir, locale string) (affPath, dicPath string, err error) {
	names := []string{locale}
	if alt := strings.ReplaceAll(locale, "-", "_"); alt != locale {
		names = append(names, alt)
	}
	if alt := strings.ReplaceAll(locale, "_", "-"); alt != locale {
		names = append(names, alt)
	}
	for _, name := range names {
		dic := filepath.Join(dir, name+".dic")
		if ValidateFileFormat(dic, FormatDic) != nil {
			continue
		}
		aff := filepath.Join(dir, name+".aff")
		if err := ValidateFileFormat(aff, FormatAff); err != nil {
			log.Warnf("No usable affix file next to %s: %v", dic, err)
			aff = ""
		}
		return aff, dic, nil
	}
	return "", "", fmt.Errorf("no dictionary for %q in %s", locale, dir)
}

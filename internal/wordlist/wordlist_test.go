package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Klingon-tech/mnemonicgen/internal/mnemonic"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}
	return path
}

func TestEnglish(t *testing.T) {
	wl := English()
	if len(wl) != mnemonic.WordlistSize {
		t.Fatalf("len = %d, want %d", len(wl), mnemonic.WordlistSize)
	}
	if wl[0] != "abandon" || wl[3] != "about" || wl[2047] != "zoo" {
		t.Errorf("unexpected entries: %q %q %q", wl[0], wl[3], wl[2047])
	}
	if !IsStandardEnglish(wl) {
		t.Error("English() should be recognized as standard")
	}
}

func TestEnglish_ReturnsCopy(t *testing.T) {
	wl := English()
	wl[0] = "changed"
	if English()[0] != "abandon" {
		t.Error("English() should not expose shared state")
	}
}

func TestLoad_Standard(t *testing.T) {
	path := writeList(t, strings.Join(English(), "\n")+"\n")

	wl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(wl) != mnemonic.WordlistSize {
		t.Errorf("len = %d, want %d", len(wl), mnemonic.WordlistSize)
	}
	if !IsStandardEnglish(wl) {
		t.Error("loaded English list should match the built-in fingerprint")
	}
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	words := English()
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = "  " + w + "\r"
	}
	path := writeList(t, strings.Join(lines, "\n"))

	wl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !IsStandardEnglish(wl) {
		t.Error("whitespace should be trimmed from each word")
	}
}

func TestLoad_TooShort(t *testing.T) {
	path := writeList(t, strings.Join(English()[:2000], "\n"))

	_, err := Load(path)
	if !errors.Is(err, mnemonic.ErrWordlistTooShort) {
		t.Errorf("error = %v, want ErrWordlistTooShort", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, mnemonic.ErrWordlistUnreadable) {
		t.Errorf("error = %v, want ErrWordlistUnreadable", err)
	}
}

func TestLoad_Duplicate(t *testing.T) {
	words := English()
	words[10] = words[9]
	path := writeList(t, strings.Join(words, "\n"))

	_, err := Load(path)
	if !errors.Is(err, mnemonic.ErrWordlistUnreadable) {
		t.Errorf("error = %v, want ErrWordlistUnreadable", err)
	}
}

func TestIsStandardEnglish_Reordered(t *testing.T) {
	wl := English()
	wl[0], wl[1] = wl[1], wl[0]
	if IsStandardEnglish(wl) {
		t.Error("reordered list should not match the standard fingerprint")
	}
}

func TestLoad_LongerThan2048(t *testing.T) {
	words := append(English(), "extra", "words")
	path := writeList(t, strings.Join(words, "\n"))

	wl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(wl) != mnemonic.WordlistSize+2 {
		t.Errorf("len = %d, want %d", len(wl), mnemonic.WordlistSize+2)
	}
	if IsStandardEnglish(wl) {
		t.Error("extended list should not match the standard fingerprint")
	}

	// Only indices 0..2047 are reachable, so output matches the standard list.
	e, err := mnemonic.NewEntropy(make([]byte, 32))
	if err != nil {
		t.Fatalf("NewEntropy() error: %v", err)
	}
	for _, list := range []mnemonic.Wordlist{wl, English()} {
		m, err := mnemonic.MapWords(mnemonic.Encode(e), list)
		if err != nil {
			t.Fatalf("MapWords() error: %v", err)
		}
		if got := m.Words()[23]; got != "art" {
			t.Errorf("last word = %q, want art", got)
		}
	}
}

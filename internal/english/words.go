package english

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// defaultWords lists English words that Telex would otherwise mangle. A
// word is only listed when its raw keys do not also spell a Vietnamese word.
var defaultWords = []string{
	// -son, -ton, -ses endings
	"mason", "season", "reason", "person", "poison", "prison", "lesson",
	"lessons", "button", "cotton", "nurse", "nurses", "horse", "horses",
	"verse", "verses", "house", "houses",
	// -tion, -sion
	"action", "nation", "station", "version", "session", "mission", "passion",
	// double consonant endings
	"miss", "pass", "boss", "less", "class", "kiss", "mess", "cross", "dress",
	"press", "grass", "glass", "across", "address", "access", "success",
	"process", "business", "chess", "loss", "moss", "toss", "issue",
	"off", "staff", "stuff", "cliff", "offer", "office", "coffee", "effect",
	"effort", "error", "mirror",
	// common words
	"text", "next", "telex", "release", "user", "users", "sure", "care",
	"more", "store", "share", "your", "yours", "where", "with", "will",
	"what", "when", "which", "would", "word", "words", "work", "world",
	"write", "window", "windows",
}

// LoadWords reads extra guarded words, one per line. Blank lines and lines
// starting with '#' or ';' are skipped; only the first tab-separated field
// is used.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if tab := strings.IndexByte(line, '\t'); tab >= 0 {
			line = strings.TrimSpace(line[:tab])
		}
		if line == "" {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	tracer().Debugf("loaded %d guarded words from %s", len(words), path)
	return words, nil
}

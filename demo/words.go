package demo

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// ErrNoWords is returned when a word list has no words
var ErrNoWords = errors.New("word list is empty")

// ReadWords reads a word list with one word per line. Surrounding
// whitespace is trimmed and blank lines are skipped. The order of
// the file is kept
func ReadWords(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open word list %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read word list %s", path)
	}

	words := lo.Filter(lo.Map(lines, func(line string, _ int) string {
		return strings.TrimSpace(line)
	}), func(word string, _ int) bool {
		return len(word) > 0
	})

	if len(words) == 0 {
		return nil, errors.Wrapf(ErrNoWords, "failed to read word list %s", path)
	}

	return words, nil
}

package reader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/homily-archive/ngram-search/internal/domain"
)

// TextTree reads extracted transcripts laid out as
// {root}/{year}/{month}/{day}/{language}.txt, one directory per homily date.
type TextTree struct {
	root string
}

func NewTextTree(root string) *TextTree {
	return &TextTree{root: root}
}

// Load returns the transcript for date and lang. A missing file is normal
// (most homilies lack one language or the other) and reports found=false
// without an error.
func (t *TextTree) Load(date time.Time, lang domain.Language) (text string, found bool, err error) {
	path := filepath.Join(t.root,
		fmt.Sprintf("%04d", date.Year()),
		fmt.Sprintf("%02d", int(date.Month())),
		fmt.Sprintf("%02d", date.Day()),
		lang.Name()+".txt")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), true, nil
}

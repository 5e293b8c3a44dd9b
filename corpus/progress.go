package corpus

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// LoadFullCorpusWithProgress is LoadFullCorpus with a byte-count progress
// bar on stderr, for the multi-thousand-row corpora this loader is sized
// for. Callers that don't want terminal output should use LoadFullCorpus.
func LoadFullCorpusWithProgress(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingCorpus, path)
		}
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("corpus: stat %s: %w", path, err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "loading corpus")
	defer bar.Finish()

	return LoadFullCorpusFrom(io.TeeReader(f, bar))
}

package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	mb         = 1000000
	maxLogSize = 2.5 * mb
	maxLogs    = 2
)

// rollingFileWriter appends to name.log and moves it to name-1.log once it grows past maxBytes.
// Older archives shift up by one and the oldest are deleted so at most maxFiles exist.
type rollingFileWriter struct {
	dir      string
	name     string
	maxBytes int64
	maxFiles int
}

func NewRollingFileWriter(dir string, name string, maxBytes int64, maxFiles int) (*rollingFileWriter, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(absDir, 0750); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	return &rollingFileWriter{
		dir:      absDir,
		name:     name,
		maxBytes: maxBytes,
		maxFiles: max(maxFiles, 1),
	}, nil
}

func (w *rollingFileWriter) path() string {
	return filepath.Join(w.dir, w.name+".log")
}

func (w *rollingFileWriter) indexedPath(index int) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s-%d.log", w.name, index))
}

func (w *rollingFileWriter) Write(b []byte) (int, error) {
	info, err := os.Stat(w.path())
	if err == nil && info.Size()+int64(len(b)) > w.maxBytes && info.Size() > 0 {
		if err := w.rotate(); err != nil {
			return 0, fmt.Errorf("rotate logs: %w", err)
		}
	}

	logFile, err := os.OpenFile(w.path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer logFile.Close()

	return logFile.Write(b)
}

// archiveIndexes returns the indexes of existing archives, highest first
func (w *rollingFileWriter) archiveIndexes() ([]int, error) {
	matches, err := fs.Glob(os.DirFS(w.dir), w.name+"-*.log")
	if err != nil {
		return nil, err
	}

	indexes := lo.FilterMap(matches, func(match string, _ int) (int, bool) {
		return archiveIndex(w.name, match)
	})
	slices.Sort(indexes)
	slices.Reverse(indexes)

	return indexes, nil
}

func (w *rollingFileWriter) rotate() error {
	if w.maxFiles == 1 {
		return os.Remove(w.path())
	}

	indexes, err := w.archiveIndexes()
	if err != nil {
		return err
	}

	for _, index := range indexes {
		if index+1 >= w.maxFiles {
			if err := os.Remove(w.indexedPath(index)); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(w.indexedPath(index), w.indexedPath(index+1)); err != nil {
			return err
		}
	}

	return os.Rename(w.path(), w.indexedPath(1))
}

// archiveIndex parses the n out of name-n.log. Files that don't fit the pattern are left alone.
func archiveIndex(name string, fileName string) (int, bool) {
	trimmed, ok := strings.CutSuffix(filepath.Base(fileName), ".log")
	if !ok {
		return 0, false
	}
	indexStr, ok := strings.CutPrefix(trimmed, name+"-")
	if !ok {
		return 0, false
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 1 {
		return 0, false
	}

	return index, true
}

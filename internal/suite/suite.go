// Package suite discovers Markdown conformance cases on disk.
//
// Layout:
//
//	tests/
//	├── emphasis.md        reference input
//	├── emphasis.out       reference HTML
//	└── extensions/
//	    └── pandoc/
//	        ├── emphasis.md   empty: reuse tests/emphasis.md
//	        └── footnote.md   engine-only case (+ footnote.out)
//
// An engine case whose .md is empty reads the reference input of the same
// name; a missing .out falls back to the reference output the same way.
package suite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// File extensions of case halves.
const (
	InputExt  = ".md"
	OutputExt = ".out"
)

// extensionsDir holds one sub-directory per engine.
const extensionsDir = "extensions"

// Sentinel errors for suite operations.
var (
	ErrTestsDirNotFound = errors.New("tests directory not found")
	ErrMissingOutput    = errors.New("case has no expected output")
)

// Case is one input/expected-output pair.
type Case struct {
	Path   string // basename without extension
	Input  string
	Output string
}

// Input is one Markdown file found by a recursive walk.
type Input struct {
	Path    string // relative to the tests dir, without extension
	Content string
}

// Suite reads cases rooted at Dir.
type Suite struct {
	Dir string
}

// New returns a Suite rooted at dir, which must exist.
func New(dir string) (*Suite, error) {
	if !fileutil.DirExists(dir) {
		return nil, fmt.Errorf("%w: %s", ErrTestsDirNotFound, dir)
	}
	return &Suite{Dir: dir}, nil
}

// Cases returns the reference pairs, sorted by basename.
func (s *Suite) Cases() ([]Case, error) {
	names, err := inputFiles(s.Dir)
	if err != nil {
		return nil, err
	}

	cases := make([]Case, 0, len(names))
	for _, name := range names {
		inPath := filepath.Join(s.Dir, name)
		input, err := readText(inPath)
		if err != nil {
			return nil, err
		}
		outPath := fileutil.TrimExt(inPath) + OutputExt
		output, err := readText(outPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrMissingOutput, outPath)
			}
			return nil, err
		}
		cases = append(cases, Case{Path: fileutil.TrimExt(name), Input: input, Output: output})
	}
	return cases, nil
}

// EngineIDs returns the sorted engine directory names under extensions/.
// A suite without an extensions directory has no engine cases.
func (s *Suite) EngineIDs() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.Dir, extensionsDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing engines: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// EngineCases returns the cases specific to engine id, excluding the
// reference cases.
func (s *Suite) EngineCases(id string) ([]Case, error) {
	dir := filepath.Join(s.Dir, extensionsDir, id)
	names, err := inputFiles(dir)
	if err != nil {
		return nil, err
	}

	cases := make([]Case, 0, len(names))
	for _, name := range names {
		input, err := readText(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if input == "" {
			if input, err = readText(filepath.Join(s.Dir, name)); err != nil {
				return nil, fmt.Errorf("engine %s: empty %s without reference input: %w", id, name, err)
			}
		}

		outName := fileutil.TrimExt(name) + OutputExt
		outPath := filepath.Join(dir, outName)
		if !fileutil.FileExists(outPath) {
			outPath = filepath.Join(s.Dir, outName)
		}
		output, err := readText(outPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: engine %s: %s", ErrMissingOutput, id, outName)
			}
			return nil, err
		}

		cases = append(cases, Case{Path: fileutil.TrimExt(name), Input: input, Output: output})
	}
	return cases, nil
}

// AllEngineCases concatenates EngineCases for every engine, in EngineIDs order.
func (s *Suite) AllEngineCases() ([]Case, error) {
	ids, err := s.EngineIDs()
	if err != nil {
		return nil, err
	}

	var all []Case
	for _, id := range ids {
		cases, err := s.EngineCases(id)
		if err != nil {
			return nil, err
		}
		all = append(all, cases...)
	}
	return all, nil
}

// Inputs walks the whole tree and returns every non-empty .md file. Within a
// directory its files come first, sorted, then its sub-directories, sorted.
func (s *Suite) Inputs() ([]Input, error) {
	var inputs []Input
	if err := s.walkInputs(s.Dir, &inputs); err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.Dir, err)
	}
	return inputs, nil
}

func (s *Suite) walkInputs(dir string, inputs *[]Input) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var subdirs []string
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, e.Name())
			continue
		}
		path := filepath.Join(dir, e.Name())
		if filepath.Ext(e.Name()) != InputExt || !fileutil.FileExists(path) {
			continue
		}

		content, err := readText(path)
		if err != nil {
			return err
		}
		if content == "" {
			continue
		}
		rel, err := filepath.Rel(s.Dir, path)
		if err != nil {
			return err
		}
		*inputs = append(*inputs, Input{Path: filepath.ToSlash(fileutil.TrimExt(rel)), Content: content})
	}

	for _, sub := range subdirs {
		if err := s.walkInputs(filepath.Join(dir, sub), inputs); err != nil {
			return err
		}
	}
	return nil
}

// inputFiles lists the .md files directly inside dir, sorted. Symlinks count
// when they resolve to a file.
func inputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTestsDirNotFound, dir)
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), InputExt) && fileutil.FileExists(filepath.Join(dir, e.Name())) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- paths come from the tests dir walk
	if err != nil {
		return "", err
	}
	return string(data), nil
}

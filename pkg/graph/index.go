package graph

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/modreport/modreport/pkg/errors"
)

// IndexFileName is the index document looked up in each search path
// directory.
const IndexFileName = "modreport.json"

// ImportRef is one import recorded by a module record.
type ImportRef struct {
	Name     string `json:"name"`
	Optional bool   `json:"optional,omitempty"`
	As       string `json:"as,omitempty"`
}

// Record describes a single module as declared by an index document.
type Record struct {
	Name         string      `json:"name"`
	Kind         string      `json:"kind,omitempty"`
	Distribution string      `json:"distribution,omitempty"`
	Imports      []ImportRef `json:"imports,omitempty"`
}

// Source resolves module names to records. It is the boundary between the
// graph and whatever produced the dependency data.
type Source interface {
	// Resolve returns the record for name, or ok=false when no index
	// defines it.
	Resolve(name string) (Record, bool)
	// Distribution returns the names of all modules owned by the given
	// distribution, in index order.
	Distribution(name string) []string
}

type indexDocument struct {
	Modules []Record `json:"modules"`
}

// PathSource resolves modules against index documents found on an ordered
// list of search directories. Earlier directories take priority.
type PathSource struct {
	records map[string]Record
	dists   map[string][]string
}

// NewPathSource loads the index document from each search directory.
// Directories without an index file are skipped; a malformed index is an
// error. Earlier paths shadow later ones for records with the same name.
func NewPathSource(paths []string) (*PathSource, error) {
	src := &PathSource{
		records: make(map[string]Record),
		dists:   make(map[string][]string),
	}

	for _, dir := range paths {
		if err := errors.ValidateSearchPath(dir); err != nil {
			return nil, err
		}
		doc, err := readIndex(filepath.Join(dir, IndexFileName))
		if err != nil {
			return nil, err
		}
		if doc == nil {
			continue
		}
		src.merge(doc.Modules)
	}

	return src, nil
}

// merge adds records that are not yet defined. First definition wins.
func (s *PathSource) merge(records []Record) {
	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		if _, ok := s.records[rec.Name]; ok {
			continue
		}
		s.records[rec.Name] = rec
		if rec.Distribution != "" {
			s.dists[rec.Distribution] = append(s.dists[rec.Distribution], rec.Name)
		}
	}
}

// Resolve implements [Source].
func (s *PathSource) Resolve(name string) (Record, bool) {
	rec, ok := s.records[name]
	return rec, ok
}

// Distribution implements [Source].
func (s *PathSource) Distribution(name string) []string {
	return s.dists[name]
}

// readIndex parses the index document at path. A missing file yields a nil
// document without error.
func readIndex(path string) (*indexDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read index %s", path)
	}

	var doc indexDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidIndex, err, "parse index %s", path)
	}
	return &doc, nil
}

// ReadScript parses a script entry-point document. The document has the
// same shape as a module record; the name field is ignored in favor of the
// script's path.
func ReadScript(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read script %s", path)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeInvalidIndex, err, "parse script %s", path)
	}
	rec.Name = path
	rec.Kind = "script"
	return rec, nil
}

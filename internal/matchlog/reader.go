package matchlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ParseError reports malformed JSON in a match export file. The load
// is aborted with no partial result.
type ParseError struct {
	Path   string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s at offset %d: %v", e.Path, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// document is one top-level JSON object of the export. Files exported
// in multiple pages concatenate several of these with only whitespace
// between them.
type document struct {
	Items []MatchRecord `json:"items"`
}

// Reader reads match records from an export file containing one or
// more concatenated JSON documents.
type Reader struct {
	path string
	file *os.File
	dec  *json.Decoder
}

// NewReader opens the export file at path.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open match export: %w", err)
	}
	return &Reader{
		path: path,
		file: file,
		dec:  json.NewDecoder(file),
	}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadDocument decodes the next concatenated document and returns its
// items. A document without an items array yields an empty slice. It
// returns io.EOF once only whitespace remains.
func (r *Reader) ReadDocument() ([]MatchRecord, error) {
	var doc document
	if err := r.dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, &ParseError{Path: r.path, Offset: r.dec.InputOffset(), Err: err}
	}
	return doc.Items, nil
}

// ReadAll reads every document in the file and returns all records in
// their original concatenation order.
func (r *Reader) ReadAll() ([]MatchRecord, error) {
	var records []MatchRecord
	for {
		items, err := r.ReadDocument()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, items...)
	}
	return records, nil
}

// ReadFile reads all match records from the export file at path.
func ReadFile(path string) ([]MatchRecord, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.ReadAll()
}

// Package glossary drives batch relation extraction over glossary entries:
// each entry's definitions are run through the extraction core against the
// full term vocabulary, and the results are persisted through the store.
package glossary

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/developer-hhiotsystems/terminology-extraction/errors"
)

// Definition is one definition of a glossary term, with optional
// surrounding context (e.g. the sentence or paragraph it was taken from).
type Definition struct {
	Text    string `json:"text"`
	Context string `json:"context,omitempty"`
}

// Entry is a glossary term with its definitions.
type Entry struct {
	Term        string       `json:"term"`
	Definitions []Definition `json:"definitions"`
}

// BatchResult summarizes one batch run. Per-relationship failures are
// counted, never fatal: a batch always runs to completion once started.
type BatchResult struct {
	Entries              int       `json:"entries"`
	Definitions          int       `json:"definitions"`
	Extracted            int       `json:"extracted"`
	Created              int       `json:"created"`
	SkippedUnknownTarget int       `json:"skipped_unknown_target"`
	SkippedDuplicate     int       `json:"skipped_duplicate"`
	Failures             int       `json:"failures"`
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
}

// Elapsed returns the wall-clock duration of the batch run.
func (r *BatchResult) Elapsed() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// LoadEntries reads glossary entries from a JSON file: an array of
// objects with "term" and "definitions" fields.
func LoadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read glossary file %s", path)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "parse glossary file %s", path)
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Term) == "" {
			return nil, errors.Newf("glossary entry %d has an empty term", i)
		}
	}
	return entries, nil
}

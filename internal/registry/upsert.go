package registry

import (
	"fmt"
	"os"
	"path/filepath"
)

// Outcome reports what an Upsert did to the registry.
type Outcome int

const (
	// OutcomeSkipped means the user declined creation or overwrite and the
	// registry was left untouched. Not an error.
	OutcomeSkipped Outcome = iota
	// OutcomeInserted means the record was appended as a new entry.
	OutcomeInserted
	// OutcomeReplaced means an existing entry with the same key was
	// overwritten in place.
	OutcomeReplaced
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeReplaced:
		return "replaced"
	}
	return "skipped"
}

// ConfirmFunc asks the user a yes/no question. Injected so Upsert can run
// against a real terminal or a scripted answer in tests.
type ConfirmFunc func(question string) (bool, error)

// Upsert installs rec into the registry file at path, keyed by rec.Key.
//
// A missing file prompts for creation; an existing entry with the same key
// prompts for overwrite. Declining either leaves the file untouched and
// returns OutcomeSkipped. Otherwise the whole registry is re-encoded and
// written back: a new key is appended, a known key is replaced at its
// original position so entry order is stable across re-runs.
//
// Decode problems never fail the upsert; they come back as warnings and the
// registry is treated as empty. Write errors propagate.
func Upsert(path string, f Format, rec Record, confirm ConfirmFunc) (Outcome, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return OutcomeSkipped, nil, fmt.Errorf("reading registry %s: %w", path, err)
		}
		ok, err := confirm(fmt.Sprintf("Registry file %s does not exist. Create it?", path))
		if err != nil {
			return OutcomeSkipped, nil, fmt.Errorf("confirming registry creation: %w", err)
		}
		if !ok {
			return OutcomeSkipped, nil, nil
		}
		data = nil
	}

	records, warnings := Decode(data, f)

	outcome := OutcomeInserted
	found := -1
	for i, existing := range records {
		if existing.Key == rec.Key {
			found = i
			break
		}
	}

	if found >= 0 {
		ok, err := confirm(fmt.Sprintf("Registry entry %q already exists. Overwrite it?", rec.Key))
		if err != nil {
			return OutcomeSkipped, warnings, fmt.Errorf("confirming entry overwrite: %w", err)
		}
		if !ok {
			return OutcomeSkipped, warnings, nil
		}
		records[found] = rec
		outcome = OutcomeReplaced
	} else {
		records = append(records, rec)
	}

	out, err := Encode(records, f)
	if err != nil {
		return OutcomeSkipped, warnings, fmt.Errorf("encoding registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return OutcomeSkipped, warnings, fmt.Errorf("creating registry directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return OutcomeSkipped, warnings, fmt.Errorf("writing registry %s: %w", path, err)
	}

	return outcome, warnings, nil
}

package evaluate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/kmateva/hieroconv/internal/corpus"
)

// Pair is one held-out evaluation datapoint.
type Pair struct {
	Source     string
	Reference  string
	Prediction string
}

// LoadPairs loads corpus records from path — a JSON file, or a
// directory whose *.json files are all loaded — and keeps the records
// with both sides of the language pair present and non-empty.
func LoadPairs(path string, sourceCode, targetCode corpus.Code) ([]Pair, error) {
	sourceField, err := corpus.Resolve(sourceCode)
	if err != nil {
		return nil, fmt.Errorf("invalid source code: %w", err)
	}
	targetField, err := corpus.Resolve(targetCode)
	if err != nil {
		return nil, fmt.Errorf("invalid target code: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access corpus path: %w", err)
	}

	var files []string
	if info.IsDir() {
		files, err = filepath.Glob(filepath.Join(path, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to list corpus directory: %w", err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no JSON files found in %s", path)
		}
	} else {
		files = []string{path}
	}

	var pairs []Pair
	for _, file := range files {
		records, err := readRecords(file)
		if err != nil {
			return nil, err
		}
		for i := range records {
			source := records[i].Field(sourceField)
			reference := records[i].Field(targetField)
			if source == "" || reference == "" {
				continue
			}
			pairs = append(pairs, Pair{Source: source, Reference: reference})
		}
	}
	return pairs, nil
}

func readRecords(path string) ([]corpus.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	var records []corpus.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

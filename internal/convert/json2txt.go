package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/kmateva/hieroconv/internal/cleaner"
	"codeberg.org/kmateva/hieroconv/internal/corpus"
	"codeberg.org/kmateva/hieroconv/internal/format"
)

// Stats summarizes one conversion run. Skips are counted, not
// classified; Processed+Skipped always equals Total.
type Stats struct {
	Total     int
	Processed int
	Skipped   int
}

// JSONToText converts records to two aligned line slices for the given
// source/target field codes. Per record: extract both fields, apply the
// target language filter, clean, format — a record that comes up empty
// at any stage is skipped so the two outputs stay aligned.
func JSONToText(records []corpus.Record, sourceCode, targetCode corpus.Code) ([]string, []string, Stats, error) {
	sourceField, err := corpus.Resolve(sourceCode)
	if err != nil {
		return nil, nil, Stats{}, fmt.Errorf("invalid source code: %w", err)
	}
	targetField, err := corpus.Resolve(targetCode)
	if err != nil {
		return nil, nil, Stats{}, fmt.Errorf("invalid target code: %w", err)
	}

	sourceCleaner := cleaner.ForCode(sourceCode)
	targetCleaner := cleaner.ForCode(targetCode)

	var sourceLines, targetLines []string
	stats := Stats{Total: len(records)}

	for i := range records {
		rec := &records[i]

		sourceText := rec.Field(sourceField)
		targetText := rec.Field(targetField)
		if sourceText == "" || targetText == "" {
			stats.Skipped++
			continue
		}

		if tag, ok := corpus.LangFilter(targetCode); ok && rec.Metadata.TargetLang != tag {
			stats.Skipped++
			continue
		}

		sourceCleaned := sourceCleaner.Clean(sourceText)
		targetCleaned := targetCleaner.Clean(targetText)
		if sourceCleaned == "" || targetCleaned == "" {
			stats.Skipped++
			continue
		}

		sourceFormatted := format.Format(sourceCleaned, sourceCode)
		targetFormatted := format.Format(targetCleaned, targetCode)
		if sourceFormatted == "" || targetFormatted == "" {
			stats.Skipped++
			continue
		}

		sourceLines = append(sourceLines, sourceFormatted)
		targetLines = append(targetLines, targetFormatted)
	}

	stats.Processed = len(sourceLines)
	return sourceLines, targetLines, stats, nil
}

// ConvertJSONFile reads a corpus JSON file and writes the paired text
// files `source_<src>2<tgt>_cleaned.txt` and
// `target_<src>2<tgt>_cleaned.txt` next to it, overwriting any previous
// output. Returns the two output paths and run statistics.
func ConvertJSONFile(jsonPath string, sourceCode, targetCode corpus.Code) (string, string, Stats, error) {
	// Validate both codes before touching the filesystem.
	if _, err := corpus.Resolve(sourceCode); err != nil {
		return "", "", Stats{}, fmt.Errorf("invalid source code: %w", err)
	}
	if _, err := corpus.Resolve(targetCode); err != nil {
		return "", "", Stats{}, fmt.Errorf("invalid target code: %w", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return "", "", Stats{}, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var records []corpus.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return "", "", Stats{}, fmt.Errorf("failed to parse corpus JSON: %w", err)
	}

	sourceLines, targetLines, stats, err := JSONToText(records, sourceCode, targetCode)
	if err != nil {
		return "", "", Stats{}, err
	}

	dir := filepath.Dir(jsonPath)
	sourcePath := filepath.Join(dir, fmt.Sprintf("source_%s2%s_cleaned.txt", sourceCode, targetCode))
	targetPath := filepath.Join(dir, fmt.Sprintf("target_%s2%s_cleaned.txt", sourceCode, targetCode))

	if err := os.WriteFile(sourcePath, []byte(strings.Join(sourceLines, "\n")), 0644); err != nil {
		return "", "", Stats{}, fmt.Errorf("failed to write source file: %w", err)
	}
	if err := os.WriteFile(targetPath, []byte(strings.Join(targetLines, "\n")), 0644); err != nil {
		return "", "", Stats{}, fmt.Errorf("failed to write target file: %w", err)
	}

	return sourcePath, targetPath, stats, nil
}

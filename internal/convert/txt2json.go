package convert

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/kmateva/hieroconv/internal/corpus"
	"codeberg.org/kmateva/hieroconv/internal/format"
)

// ErrLineMismatch reports paired text files with different line counts.
// There is no recovery: alignment cannot be inferred.
var ErrLineMismatch = errors.New("line count mismatch between source and target files")

// TextToJSON rebuilds records from aligned line pairs. Only the two
// resolved fields are populated; everything the forward conversion
// discarded (metadata, unselected fields) stays at its empty default.
func TextToJSON(sourceLines, targetLines []string, sourceCode, targetCode corpus.Code) ([]corpus.Record, error) {
	sourceField, err := corpus.Resolve(sourceCode)
	if err != nil {
		return nil, fmt.Errorf("invalid source code: %w", err)
	}
	targetField, err := corpus.Resolve(targetCode)
	if err != nil {
		return nil, fmt.Errorf("invalid target code: %w", err)
	}

	if len(sourceLines) != len(targetLines) {
		return nil, fmt.Errorf("%w: source has %d lines, target has %d lines",
			ErrLineMismatch, len(sourceLines), len(targetLines))
	}

	records := make([]corpus.Record, 0, len(sourceLines))
	for i := range sourceLines {
		var rec corpus.Record
		rec.SetField(sourceField, format.Unformat(sourceLines[i], sourceCode))
		rec.SetField(targetField, format.Unformat(targetLines[i], targetCode))
		records = append(records, rec)
	}
	return records, nil
}

// ReadLines reads a text file into a line slice, newlines stripped.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open text file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}
	return lines, nil
}

// DefaultOutputPath derives `<source-stem>_to_<target-stem>.json` in the
// source file's directory.
func DefaultOutputPath(sourcePath, targetPath string) string {
	return filepath.Join(filepath.Dir(sourcePath),
		fmt.Sprintf("%s_to_%s.json", stem(sourcePath), stem(targetPath)))
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ConvertTextFiles reads two aligned text files and writes the rebuilt
// record array as JSON to outputPath, or to DefaultOutputPath when
// outputPath is empty. All preconditions are checked before the output
// file is created. Returns the output path and the record count.
func ConvertTextFiles(sourcePath, targetPath string, sourceCode, targetCode corpus.Code, outputPath string) (string, int, error) {
	sourceLines, err := ReadLines(sourcePath)
	if err != nil {
		return "", 0, fmt.Errorf("source file: %w", err)
	}
	targetLines, err := ReadLines(targetPath)
	if err != nil {
		return "", 0, fmt.Errorf("target file: %w", err)
	}

	records, err := TextToJSON(sourceLines, targetLines, sourceCode, targetCode)
	if err != nil {
		return "", 0, err
	}

	if outputPath == "" {
		outputPath = DefaultOutputPath(sourcePath, targetPath)
	}
	if err := WriteRecords(outputPath, records); err != nil {
		return "", 0, err
	}
	return outputPath, len(records), nil
}

// WriteRecords writes records as a 4-space-indented JSON array with
// non-ASCII characters left unescaped, matching the corpus format the
// downstream training tools consume.
func WriteRecords(path string, records []corpus.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

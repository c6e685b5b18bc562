package separate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/kmateva/hieroconv/internal/convert"
	"codeberg.org/kmateva/hieroconv/internal/format"
)

// ProcessFile rewrites every line of inputPath with word boundaries
// underscored and one space between every remaining character, writing
// the result to `<base>_separated_cleaned.txt` beside the input.
// Returns the output path and the number of lines processed.
func ProcessFile(inputPath string) (string, int, error) {
	lines, err := convert.ReadLines(inputPath)
	if err != nil {
		return "", 0, err
	}

	base := stem(inputPath)
	outputPath := filepath.Join(filepath.Dir(inputPath), base+"_separated_cleaned.txt")

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(format.Separate(line))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(outputPath, []byte(b.String()), 0644); err != nil {
		return "", 0, fmt.Errorf("failed to write output file: %w", err)
	}
	return outputPath, len(lines), nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

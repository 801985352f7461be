package walker

import (
	"fmt"
	"os"
)

// Process reads each file in order and hands it to fn. The first read or
// callback error stops processing.
func Process(files []CandidateFile, fn ProcessFunc) error {
	for _, file := range files {
		content, err := os.ReadFile(file.Path)
		if err != nil {
			return fmt.Errorf("walker: failed to read '%s': %w", file.Path, err)
		}
		if err := fn(file, content); err != nil {
			return err
		}
	}
	return nil
}

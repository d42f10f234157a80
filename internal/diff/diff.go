// Package diff produces unified diffs between a file on disk and freshly generated
// source, so a run can be reviewed before it overwrites anything.
package diff

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// Patch returns a unified diff that turns the current content of target into generated.
// A target that does not exist yet is diffed as an empty file. name labels the file in
// the diff headers.
func Patch(target, name, generated string) (string, error) {
	original, err := os.ReadFile(target)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to read %s: %w", target, err)
	}

	return godiffpatch.GeneratePatch(name, string(original), generated), nil
}

// WriteDiff appends the patch for target to diffFile, creating diffFile if needed.
func WriteDiff(diffFile, target, name, generated string) error {
	patch, err := Patch(target, name, generated)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(diffFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open diff file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(patch); err != nil {
		return fmt.Errorf("failed to write diff file: %w", err)
	}
	return nil
}

package md2html

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// StdioPath passed as an input or output path selects standard input or output.
const StdioPath = fileutil.StdioPath

// ReadFileContent reads the whole file at path as UTF-8 text.
// Returns ErrInvalidArgument if path is empty or does not name an existing
// regular file. The file is closed even when reading fails.
func ReadFileContent(path string) (string, error) {
	content, err := fileutil.ReadFileContent(path)
	if err != nil {
		if errors.Is(err, fileutil.ErrInvalidPath) {
			return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return "", err
	}
	return content, nil
}

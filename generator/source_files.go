package generator

import (
	"os"
	"path/filepath"

	"github.com/HampterPW/Crypted/utils"
	"github.com/pkg/errors"
)

// ErrSourceFileNotFound indicates the single source file requested for a run does not exist.
var ErrSourceFileNotFound = errors.New("source file not found")

// sourceFiles returns the paths of the source files processed by a run: the configured file if one was named,
// otherwise every file in the source directory carrying the source extension, sorted by name. A directory without
// source files yields an empty list.
func (g *Generator) sourceFiles() ([]string, error) {
	sourceDirectory := g.config.SourceDirectory

	// A single named file must exist
	if g.config.Filename != "" {
		sourcePath := filepath.Join(sourceDirectory, g.config.Filename)
		info, err := os.Stat(sourcePath)
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSourceFileNotFound, "%s", sourcePath)
		} else if err != nil {
			return nil, errors.WithStack(err)
		}
		if info.IsDir() {
			return nil, errors.Wrapf(ErrSourceFileNotFound, "%s is a directory", sourcePath)
		}
		return []string{sourcePath}, nil
	}

	fileNames, err := utils.ListFilesWithExtension(sourceDirectory, g.config.SourceExtension)
	if err != nil {
		return nil, err
	}
	sourcePaths := make([]string, len(fileNames))
	for i, fileName := range fileNames {
		sourcePaths[i] = filepath.Join(sourceDirectory, fileName)
	}
	return sourcePaths, nil
}

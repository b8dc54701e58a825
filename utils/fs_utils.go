package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// DeleteFile deletes the file at the provided path. A file which does not exist is not an error.
func DeleteFile(filePath string) error {
	err := os.Remove(filePath)
	if err != nil && !os.IsNotExist(err) {
		return errors.WithStack(err)
	}
	return nil
}

// GetFileNameWithoutExtension obtains a filename without the extension. This does not contain any preceding directory
// paths.
func GetFileNameWithoutExtension(filePath string) string {
	return GetFilePathWithoutExtension(filepath.Base(filePath))
}

// GetFilePathWithoutExtension obtains a file path without the extension. This retains all preceding directory paths.
func GetFilePathWithoutExtension(filePath string) string {
	return filePath[:len(filePath)-len(filepath.Ext(filePath))]
}

// ListFilesWithExtension returns the names of the regular files directly within a directory which end with the
// provided extension, sorted by name.
func ListFilesWithExtension(directory string, extension string) ([]string, error) {
	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	fileNames := make([]string, 0)
	for _, dirEntry := range dirEntries {
		if dirEntry.Type().IsRegular() && filepath.Ext(dirEntry.Name()) == extension {
			fileNames = append(fileNames, dirEntry.Name())
		}
	}
	slices.Sort(fileNames)
	return fileNames, nil
}

// MakeDirectory creates a directory at the given path, including any parent directories which do not exist.
// Returns an error, if one occurred.
func MakeDirectory(dirToMake string) error {
	dirInfo, err := os.Stat(dirToMake)
	if err != nil {
		// Directory does not exist, as expected.
		if os.IsNotExist(err) {
			return errors.WithStack(os.MkdirAll(dirToMake, 0755))
		}
		// Some other sort of error, throw it
		return errors.WithStack(err)
	}

	// dirToMake is a file, throw an error accordingly
	if !dirInfo.IsDir() {
		return errors.Errorf("there is a file with the same name as %s", dirToMake)
	}

	// Directory already exists, good to go
	return nil
}

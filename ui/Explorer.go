package ui

import (
	"errors"
	"fmt"

	"text-splitter/services"

	"gioui.org/x/explorer"
)

var errNoFilePath = errors.New("selected file has no path on the filesystem")

// fileChooser adapts the native open dialog to services.FileChooser. The
// dialog hands back an open file; only its path is kept.
func fileChooser(exp *explorer.Explorer) services.FileChooser {
	return func() (string, error) {
		file, err := exp.ChooseFile(".txt")
		if err != nil {
			if errors.Is(err, explorer.ErrUserDecline) {
				return "", services.ErrSelectionCancelled
			}
			return "", err
		}
		defer file.Close()
		named, ok := file.(interface{ Name() string })
		if !ok {
			return "", errNoFilePath
		}
		path := named.Name()
		if path == "" {
			return "", fmt.Errorf("%w: empty name", errNoFilePath)
		}
		return path, nil
	}
}

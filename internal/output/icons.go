package output

import (
	"fmt"
	"io"

	"github.com/Diplo2by/riptree/internal/icons"
)

const (
	fileIconsHeader   = "File Icons:"
	folderIconsHeader = "Folder Icons:"
	iconEntryFormat   = "  %s  %s\n"
)

// WriteIconListing prints every file icon, then every folder icon, each ordered by key.
func WriteIconListing(writer io.Writer, set *icons.Set) error {
	if _, writeError := fmt.Fprintln(writer, fileIconsHeader); writeError != nil {
		return writeError
	}
	for _, entry := range set.FileEntries() {
		if _, writeError := fmt.Fprintf(writer, iconEntryFormat, entry.Icon, entry.Key); writeError != nil {
			return writeError
		}
	}
	if _, writeError := fmt.Fprintln(writer, "\n"+folderIconsHeader); writeError != nil {
		return writeError
	}
	for _, entry := range set.FolderEntries() {
		if _, writeError := fmt.Fprintf(writer, iconEntryFormat, entry.Icon, entry.Key); writeError != nil {
			return writeError
		}
	}
	return nil
}

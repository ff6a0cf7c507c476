package tree

import (
	"fmt"
	"io"

	"github.com/Diplo2by/riptree/internal/icons"
)

const (
	// RootLine is the label printed for the repository top.
	RootLine = "."

	branchConnector = "├── "
	lastConnector   = "└── "
	branchPadding   = "│   "
	lastPadding     = "    "
	iconSeparator   = " "
)

// RenderOptions controls how entries are decorated.
type RenderOptions struct {
	Icons     icons.Lookup
	ShowIcons bool
}

// Lines renders the hierarchy below root, starting with RootLine.
func Lines(root *Directory, options RenderOptions) []string {
	lines := []string{RootLine}
	return appendEntryLines(lines, root, "", options)
}

// Render writes the lines produced by Lines, one per row.
func Render(writer io.Writer, root *Directory, options RenderOptions) error {
	for _, line := range Lines(root, options) {
		if _, writeError := fmt.Fprintln(writer, line); writeError != nil {
			return writeError
		}
	}
	return nil
}

func appendEntryLines(lines []string, directory *Directory, prefix string, options RenderOptions) []string {
	entries := directory.SortedEntries()
	for index, entry := range entries {
		isLast := index == len(entries)-1
		connector := branchConnector
		childPadding := branchPadding
		if isLast {
			connector = lastConnector
			childPadding = lastPadding
		}
		lines = append(lines, prefix+connector+entryLabel(entry, options))
		if childDirectory, isDirectory := entry.Node.(*Directory); isDirectory && len(childDirectory.Children) > 0 {
			lines = appendEntryLines(lines, childDirectory, prefix+childPadding, options)
		}
	}
	return lines
}

// EntryIcon resolves the icon for an entry, or "" when icons are hidden.
func EntryIcon(entry Entry, options RenderOptions) string {
	if !options.ShowIcons || options.Icons == nil {
		return ""
	}
	if entry.IsDirectory() {
		return options.Icons.FolderIcon(entry.Name)
	}
	return options.Icons.FileIcon(entry.Name)
}

func entryLabel(entry Entry, options RenderOptions) string {
	icon := EntryIcon(entry, options)
	if icon == "" {
		return entry.Name
	}
	return icon + iconSeparator + entry.Name
}

// Package icons resolves display glyphs for files and folders.
package icons

import (
	"sort"
	"strings"
)

const extensionSeparator = "."

// Lookup resolves icons for tree entries.
type Lookup interface {
	FileIcon(name string) string
	FolderIcon(name string) string
}

// Set is an immutable icon table. File keys are exact names or lowercased
// extensions with the leading dot; folder keys are exact names.
type Set struct {
	files         map[string]string
	folders       map[string]string
	defaultFile   string
	defaultFolder string
}

// Entry pairs a lookup key with its icon.
type Entry struct {
	Key  string
	Icon string
}

// NewSet copies the provided tables into a new Set.
func NewSet(files map[string]string, folders map[string]string, defaultFile string, defaultFolder string) *Set {
	return &Set{
		files:         copyTable(files),
		folders:       copyTable(folders),
		defaultFile:   defaultFile,
		defaultFolder: defaultFolder,
	}
}

// Default returns the built-in icon set.
func Default() *Set {
	return NewSet(defaultFileIcons, defaultFolderIcons, DefaultFileIcon, DefaultFolderIcon)
}

// FileIcon matches the exact name first, then the lowercased extension, then the default.
func (set *Set) FileIcon(name string) string {
	if icon, found := set.files[name]; found {
		return icon
	}
	if extension := strings.ToLower(Extension(name)); extension != "" {
		if icon, found := set.files[extension]; found {
			return icon
		}
	}
	return set.defaultFile
}

// FolderIcon matches the exact folder name, then the default.
func (set *Set) FolderIcon(name string) string {
	if icon, found := set.folders[name]; found {
		return icon
	}
	return set.defaultFolder
}

// DefaultFile returns the fallback file icon.
func (set *Set) DefaultFile() string {
	return set.defaultFile
}

// DefaultFolder returns the fallback folder icon.
func (set *Set) DefaultFolder() string {
	return set.defaultFolder
}

// FileEntries lists file icons ordered by key.
func (set *Set) FileEntries() []Entry {
	return sortedEntries(set.files)
}

// FolderEntries lists folder icons ordered by key.
func (set *Set) FolderEntries() []Entry {
	return sortedEntries(set.folders)
}

// Extension returns the suffix of the final path segment starting at its last dot.
// A dot in the first position or at the end does not start an extension.
func Extension(name string) string {
	if slashIndex := strings.LastIndex(name, "/"); slashIndex >= 0 {
		name = name[slashIndex+1:]
	}
	dotIndex := strings.LastIndex(name, extensionSeparator)
	if dotIndex <= 0 || dotIndex == len(name)-1 {
		return ""
	}
	return name[dotIndex:]
}

func copyTable(source map[string]string) map[string]string {
	copied := make(map[string]string, len(source))
	for key, icon := range source {
		copied[key] = icon
	}
	return copied
}

func sortedEntries(table map[string]string) []Entry {
	entries := make([]Entry, 0, len(table))
	for key, icon := range table {
		entries = append(entries, Entry{Key: key, Icon: icon})
	}
	sort.Slice(entries, func(left, right int) bool {
		return entries[left].Key < entries[right].Key
	})
	return entries
}

var _ Lookup = (*Set)(nil)

// Package tree builds a directory hierarchy from repository-relative paths and renders it.
package tree

import "sort"

const (
	// NodeTypeFile labels a terminal file marker.
	NodeTypeFile = "file"
	// NodeTypeDirectory labels a directory with a children mapping.
	NodeTypeDirectory = "directory"
)

// Node is either a *Directory or a *File.
type Node interface {
	Type() string
}

// Directory holds named children. An empty mapping is still a directory.
type Directory struct {
	Children map[string]Node
}

// File is a terminal marker with no children.
type File struct{}

// NewDirectory returns a directory with an empty children mapping.
func NewDirectory() *Directory {
	return &Directory{Children: map[string]Node{}}
}

// Type reports NodeTypeDirectory.
func (directory *Directory) Type() string {
	return NodeTypeDirectory
}

// Type reports NodeTypeFile.
func (file *File) Type() string {
	return NodeTypeFile
}

// Entry is a named child of a directory.
type Entry struct {
	Name string
	Node Node
}

// IsDirectory reports whether the entry refers to a directory node.
func (entry Entry) IsDirectory() bool {
	_, isDirectory := entry.Node.(*Directory)
	return isDirectory
}

// SortedEntries returns the children with directories first, each group ordered by name.
func (directory *Directory) SortedEntries() []Entry {
	if directory == nil || len(directory.Children) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(directory.Children))
	for name, child := range directory.Children {
		entries = append(entries, Entry{Name: name, Node: child})
	}
	sort.Slice(entries, func(left, right int) bool {
		leftIsDirectory := entries[left].IsDirectory()
		rightIsDirectory := entries[right].IsDirectory()
		if leftIsDirectory != rightIsDirectory {
			return leftIsDirectory
		}
		return entries[left].Name < entries[right].Name
	})
	return entries
}

// CountDirectories returns the number of directory nodes below the receiver, excluding itself.
func (directory *Directory) CountDirectories() int {
	if directory == nil {
		return 0
	}
	total := 0
	for _, child := range directory.Children {
		if childDirectory, isDirectory := child.(*Directory); isDirectory {
			total += 1 + childDirectory.CountDirectories()
		}
	}
	return total
}

// CountFiles returns the number of file markers below the receiver.
func (directory *Directory) CountFiles() int {
	if directory == nil {
		return 0
	}
	total := 0
	for _, child := range directory.Children {
		switch typedChild := child.(type) {
		case *Directory:
			total += typedChild.CountFiles()
		case *File:
			total++
		}
	}
	return total
}

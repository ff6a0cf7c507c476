package tree

import "strings"

const pathSegmentSeparator = "/"

// Build converts repository-relative paths into a hierarchy rooted at an implicit directory.
// Empty paths and empty segments are skipped. When one path names a file where another
// path needs a directory, the directory wins regardless of input order.
func Build(paths []string) *Directory {
	root := NewDirectory()
	for _, path := range paths {
		segments := splitSegments(path)
		if len(segments) == 0 {
			continue
		}
		current := root
		lastIndex := len(segments) - 1
		for _, segment := range segments[:lastIndex] {
			current = current.childDirectory(segment)
		}
		current.addFile(segments[lastIndex])
	}
	return root
}

// childDirectory returns the directory child named segment, creating it or
// replacing a file marker in its place.
func (directory *Directory) childDirectory(segment string) *Directory {
	if existing, found := directory.Children[segment]; found {
		if existingDirectory, isDirectory := existing.(*Directory); isDirectory {
			return existingDirectory
		}
	}
	created := NewDirectory()
	directory.Children[segment] = created
	return created
}

func (directory *Directory) addFile(segment string) {
	if _, found := directory.Children[segment]; found {
		return
	}
	directory.Children[segment] = &File{}
}

func splitSegments(path string) []string {
	if path == "" {
		return nil
	}
	rawSegments := strings.Split(path, pathSegmentSeparator)
	segments := make([]string, 0, len(rawSegments))
	for _, segment := range rawSegments {
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

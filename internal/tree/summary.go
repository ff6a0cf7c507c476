package tree

import (
	"fmt"
	"path"
	"strings"
)

// DirectoryCountMode selects how the summary counts directories.
type DirectoryCountMode string

const (
	// DirectoryCountNodes counts directory nodes in the built hierarchy, excluding the root.
	DirectoryCountNodes DirectoryCountMode = "nodes"
	// DirectoryCountParents counts distinct immediate parents of the input paths,
	// with the repository top counted as one directory.
	DirectoryCountParents DirectoryCountMode = "parents"

	summaryFormat                  = "%d directories, %d files"
	errorUnknownDirectoryCountMode = "unknown directory count mode %q (expected %s or %s)"
)

// ParseDirectoryCountMode validates a mode name. The empty string selects DirectoryCountNodes.
func ParseDirectoryCountMode(value string) (DirectoryCountMode, error) {
	switch DirectoryCountMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", DirectoryCountNodes:
		return DirectoryCountNodes, nil
	case DirectoryCountParents:
		return DirectoryCountParents, nil
	default:
		return "", fmt.Errorf(errorUnknownDirectoryCountMode, value, DirectoryCountNodes, DirectoryCountParents)
	}
}

// Summary holds the totals printed after the tree body.
type Summary struct {
	Directories int `json:"directories" xml:"directories"`
	Files       int `json:"files" xml:"files"`
}

// String formats the summary line.
func (summary Summary) String() string {
	return fmt.Sprintf(summaryFormat, summary.Directories, summary.Files)
}

// Summarize computes totals for the given input paths and the hierarchy built from them.
// Files counts every non-empty input path, duplicates included.
func Summarize(paths []string, root *Directory, mode DirectoryCountMode) Summary {
	summary := Summary{}
	for _, inputPath := range paths {
		if inputPath != "" {
			summary.Files++
		}
	}
	switch mode {
	case DirectoryCountParents:
		summary.Directories = countDistinctParents(paths)
	default:
		summary.Directories = root.CountDirectories()
	}
	return summary
}

func countDistinctParents(paths []string) int {
	parents := map[string]struct{}{}
	for _, inputPath := range paths {
		if inputPath == "" {
			continue
		}
		parents[path.Dir(inputPath)] = struct{}{}
	}
	return len(parents)
}

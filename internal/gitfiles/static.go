package gitfiles

import "context"

// StaticProvider returns a fixed list, for callers that already hold the paths.
type StaticProvider struct {
	Files []string
}

// TrackedFiles returns a copy of Files, or ErrNoTrackedFiles when the list is empty.
func (provider StaticProvider) TrackedFiles(ctx context.Context) ([]string, error) {
	if ctx != nil {
		if contextError := ctx.Err(); contextError != nil {
			return nil, contextError
		}
	}
	if len(provider.Files) == 0 {
		return nil, ErrNoTrackedFiles
	}
	return append([]string(nil), provider.Files...), nil
}

var _ Provider = StaticProvider{}

package loader

import "context"

// Loader fetches the raw bytes of a single locale asset. The path is
// relative and slash-separated, e.g. "en-US/_.json".
//
// Implementations must be safe for concurrent use. A missing asset is
// reported with an error wrapping ErrNotFound; transport failures wrap
// ErrFetchFailed.
type Loader interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Func adapts a plain function to the Loader interface.
type Func func(ctx context.Context, path string) ([]byte, error)

func (f Func) Fetch(ctx context.Context, path string) ([]byte, error) {
	return f(ctx, path)
}

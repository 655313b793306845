// Package loader abstracts where locale asset files come from. A Loader
// fetches the raw bytes of one asset by its relative path ("en-US/_.json");
// implementations cover local and embedded filesystems, HTTP origins,
// S3-compatible object storage, and Redis.
//
// Loaders only read. Publishing assets to the backing store is a deploy
// concern, not a runtime one.
//
// Example:
//
//	src := loader.NewFS(os.DirFS("res/lang"))
//	data, err := src.Fetch(ctx, "en-US/_.json")
//
// Wrap any loader with Cached to deduplicate and memoize fetches:
//
//	src := loader.Cached(loader.NewHTTP("https://cdn.example.com/lang"))
package loader

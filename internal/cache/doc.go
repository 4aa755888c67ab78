// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, *text.FontSource](16)
//	src, err := c.GetOrCreate("go", load)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

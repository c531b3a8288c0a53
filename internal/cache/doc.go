// Package cache provides a bounded, thread-safe LRU cache.
//
//	c := cache.New[string, int](64)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// The raster backend uses it to keep rendered text masks between FillText
// calls.
package cache

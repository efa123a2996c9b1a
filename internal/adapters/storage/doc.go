// Package storage persists the quote client's favorites list.
//
// The list lives under a single key in a string key-value store as a JSON
// array of {"text","author"} objects. In the browser the store is
// window.localStorage; elsewhere MemoryStore stands in for it.
package storage

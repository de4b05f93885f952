package port

// Cache holds loaded values by key. The data-source resolver keeps rows in
// one, keyed by DataSourceRef.Key. Implementations must be safe for
// concurrent use, since loads finish on background goroutines.
type Cache[K comparable, V any] interface {
	// Get returns the cached value and whether it was present.
	Get(key K) (V, bool)
	// Set stores value under key and may evict other entries.
	Set(key K, value V)
	// Remove drops key; removing a missing key is a no-op.
	Remove(key K)
	// Len reports how many entries are held.
	Len() int
}

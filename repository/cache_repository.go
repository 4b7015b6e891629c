package repository

// CacheRepository stores serialized calculation results keyed by a hash of
// the request parameters. Implementations must be safe for concurrent use.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

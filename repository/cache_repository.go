package repository

// CacheRepository is a string key/value cache for encoded quotes. A miss is
// reported through the bool, never an error.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

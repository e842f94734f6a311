package session

// DefaultStore is the process-wide session store. Initialised at
// startup; tests swap in a MemoryStore.
var DefaultStore Store

func InitialiseSessionStore() {
	DefaultStore = &RedisStore{}
}

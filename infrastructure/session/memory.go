package session

import (
	"strconv"
	"sync"
	"time"

	"vaultline.io/application/constants"
)

// MemoryStore is the in-process Store used by tests and single-node
// development runs. Last write wins, mirroring the durable store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string

	// Now is overridable so expiry behaviour can be tested without
	// sleeping.
	Now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: map[string]string{},
		Now:     time.Now,
	}
}

func (ms *MemoryStore) SetTokens(sid string, payload TokenPayload) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	accessToken := payload.AccessToken
	if accessToken == "" {
		accessToken = payload.Token
	}
	if accessToken != "" {
		ms.entries[sid+"-"+constants.AccessTokenKey] = accessToken
	}
	if payload.RefreshToken != "" {
		ms.entries[sid+"-"+constants.RefreshTokenKey] = payload.RefreshToken
	}
	if payload.ExpiresIn != 0 {
		expiresAt := ms.Now().UnixMilli() + payload.ExpiresIn*1000
		ms.entries[sid+"-"+constants.TokenExpiresAt] = strconv.FormatInt(expiresAt, 10)
	}
	return nil
}

func (ms *MemoryStore) GetAccessToken(sid string) *string {
	return ms.lookup(sid + "-" + constants.AccessTokenKey)
}

func (ms *MemoryStore) GetRefreshToken(sid string) *string {
	return ms.lookup(sid + "-" + constants.RefreshTokenKey)
}

func (ms *MemoryStore) IsAuthenticated(sid string) bool {
	if ms.GetAccessToken(sid) == nil {
		return false
	}
	expires := ms.lookup(sid + "-" + constants.TokenExpiresAt)
	if expires == nil {
		return true
	}
	expiresAt, err := strconv.ParseInt(*expires, 10, 64)
	if err != nil {
		return true
	}
	return ms.Now().UnixMilli() < expiresAt
}

func (ms *MemoryStore) ClearTokens(sid string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.entries, sid+"-"+constants.AccessTokenKey)
	delete(ms.entries, sid+"-"+constants.RefreshTokenKey)
	delete(ms.entries, sid+"-"+constants.TokenExpiresAt)
}

func (ms *MemoryStore) lookup(key string) *string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	value, ok := ms.entries[key]
	if !ok {
		return nil
	}
	return &value
}

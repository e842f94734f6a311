package session

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"vaultline.io/application/constants"
	"vaultline.io/infrastructure/cryptography"
	"vaultline.io/infrastructure/database/repository/cache"
	"vaultline.io/infrastructure/logger"
)

// RedisStore keeps the session triple in the shared cache. Keys are
// namespaced by a fixed-salt argon2 hash of the session ID so the raw
// cookie value never appears in cache keys.
type RedisStore struct{}

func (rs *RedisStore) sessionKey(sid string, suffix string) string {
	hashed, err := cryptography.CryptoHasher.HashString(sid, []byte(os.Getenv("HASH_FIXED_SALT")))
	if err != nil {
		// fall back to the raw sid rather than failing the request
		return fmt.Sprintf("%s-%s", sid, suffix)
	}
	return fmt.Sprintf("%s-%s", string(hashed), suffix)
}

func (rs *RedisStore) SetTokens(sid string, payload TokenPayload) error {
	accessToken := payload.AccessToken
	if accessToken == "" {
		accessToken = payload.Token
	}
	if accessToken != "" {
		if !cache.Cache.CreateEntry(rs.sessionKey(sid, constants.AccessTokenKey), accessToken, constants.SessionTTL) {
			return fmt.Errorf("could not persist access token for session")
		}
	}
	if payload.RefreshToken != "" {
		if !cache.Cache.CreateEntry(rs.sessionKey(sid, constants.RefreshTokenKey), payload.RefreshToken, constants.SessionTTL) {
			return fmt.Errorf("could not persist refresh token for session")
		}
	}
	if payload.ExpiresIn != 0 {
		expiresAt := time.Now().UnixMilli() + payload.ExpiresIn*1000
		if !cache.Cache.CreateEntry(rs.sessionKey(sid, constants.TokenExpiresAt), strconv.FormatInt(expiresAt, 10), constants.SessionTTL) {
			return fmt.Errorf("could not persist token expiry for session")
		}
	}
	return nil
}

func (rs *RedisStore) GetAccessToken(sid string) *string {
	return cache.Cache.FindOne(rs.sessionKey(sid, constants.AccessTokenKey))
}

func (rs *RedisStore) GetRefreshToken(sid string) *string {
	return cache.Cache.FindOne(rs.sessionKey(sid, constants.RefreshTokenKey))
}

func (rs *RedisStore) IsAuthenticated(sid string) bool {
	token := rs.GetAccessToken(sid)
	if token == nil {
		return false
	}
	expires := cache.Cache.FindOne(rs.sessionKey(sid, constants.TokenExpiresAt))
	if expires == nil {
		// token present but lifetime unknown
		return true
	}
	expiresAt, err := strconv.ParseInt(*expires, 10, 64)
	if err != nil {
		logger.Warning("unparseable token expiry in session storage", logger.LoggerOptions{
			Key:  "value",
			Data: *expires,
		})
		return true
	}
	return time.Now().UnixMilli() < expiresAt
}

func (rs *RedisStore) ClearTokens(sid string) {
	cache.Cache.DeleteMany(
		rs.sessionKey(sid, constants.AccessTokenKey),
		rs.sessionKey(sid, constants.RefreshTokenKey),
		rs.sessionKey(sid, constants.TokenExpiresAt),
	)
}

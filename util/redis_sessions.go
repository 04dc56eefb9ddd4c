package util

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ariebrainware/clinic-cms/config"
	"github.com/redis/go-redis/v9"
)

func sessionKey(token string) string { return fmt.Sprintf("session:%s", token) }

func userSetKey(userID string) string { return fmt.Sprintf("user_sessions:%s", userID) }

// StoreSession records token as a live session for userID and adds it to the
// per-user set. No-op without Redis.
func StoreSession(ctx context.Context, token, userID string, ttl time.Duration) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	if err := rdb.Set(ctx, sessionKey(token), userID, ttl).Err(); err != nil {
		return err
	}
	return AddSessionToUserSet(ctx, userID, token)
}

// SessionActive reports whether token is still a live session. Without Redis
// every signed token is accepted.
func SessionActive(ctx context.Context, token string) (bool, error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return true, nil
	}
	n, err := rdb.Exists(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeSession deletes the session key and drops token from the user's set.
func RevokeSession(ctx context.Context, token, userID string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	if err := rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return err
	}
	return RemoveSessionTokenFromUserSet(ctx, userID, token)
}

// AddSessionToUserSet adds the session token to the per-user Redis set.
// The set has no TTL and persists until explicitly cleaned up via
// RemoveSessionTokenFromUserSet or InvalidateUserSessions.
func AddSessionToUserSet(ctx context.Context, userID, token string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	key := userSetKey(userID)
	if err := rdb.SAdd(ctx, key, token).Err(); err != nil {
		return err
	}
	return rdb.Persist(ctx, key).Err()
}

const removeTokenScript = `
	local removed = redis.call('SREM', KEYS[1], ARGV[1])
	if removed > 0 then
		local count = redis.call('SCARD', KEYS[1])
		if count == 0 then
			redis.call('DEL', KEYS[1])
		end
	end
	return removed
`

// RemoveSessionTokenFromUserSet removes a single session token from the per-user set.
// If the set becomes empty after removal, it is deleted.
func RemoveSessionTokenFromUserSet(ctx context.Context, userID, token string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	return rdb.Eval(ctx, removeTokenScript, []string{userSetKey(userID)}, token).Err()
}

// InvalidateUserSessions deletes all session:<token> keys for the given user and
// removes the per-user set. Used when an account is deactivated or deleted.
func InvalidateUserSessions(ctx context.Context, userID string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	key := userSetKey(userID)
	members, err := rdb.SMembers(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	for _, tok := range members {
		_ = rdb.Del(ctx, sessionKey(tok)).Err()
	}
	return rdb.Del(ctx, key).Err()
}

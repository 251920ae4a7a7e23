// app/seenmw.go
package app

import (
	"time"

	"toolroom/directory"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// TouchLastSeen stamps the user's last-seen time, throttled through redis
// so the directory is not written on every request.
func TouchLastSeen(dir directory.Directory, rdb *redis.Client, throttle time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		v, ok := c.Get("userID")
		if !ok {
			c.Next()
			return
		}
		uid, _ := v.(string)
		if uid == "" {
			c.Next()
			return
		}

		key := "user:lastseen:" + uid
		if ok, _ := rdb.SetNX(c, key, "1", throttle).Result(); ok {
			_ = dir.TouchUserSeen(c, uid) // best effort, never blocks the request
		}
		c.Next()
	}
}

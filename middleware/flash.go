package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "flash"
	flashKey    = "pending_flashes"
	consumedKey = "flashes_consumed"

	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashDanger  = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// AddFlash queues a message for the next page the visitor sees.
func AddFlash(c *gin.Context, category, message string) {
	pending := append(pendingFlashes(c), Flash{Category: category, Message: message})
	c.Set(flashKey, pending)

	raw, err := json.Marshal(pending)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.URLEncoding.EncodeToString(raw), 0, "/", "", false, true)
}

// Flashes returns and clears the messages queued by the previous request.
func Flashes(c *gin.Context) []Flash {
	flashes := []Flash{}

	if value, err := c.Cookie(flashCookie); err == nil && value != "" {
		if raw, err := base64.URLEncoding.DecodeString(value); err == nil {
			var stored []Flash
			if json.Unmarshal(raw, &stored) == nil {
				flashes = append(flashes, stored...)
			}
		}
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	c.Set(consumedKey, true)
	return flashes
}

func pendingFlashes(c *gin.Context) []Flash {
	if v, ok := c.Get(flashKey); ok {
		if pending, ok := v.([]Flash); ok {
			return pending
		}
	}
	if c.GetBool(consumedKey) {
		return nil
	}
	// Messages from the previous request that nobody displayed yet survive a redirect chain.
	var carried []Flash
	if value, err := c.Cookie(flashCookie); err == nil && value != "" {
		if raw, err := base64.URLEncoding.DecodeString(value); err == nil {
			_ = json.Unmarshal(raw, &carried)
		}
	}
	return carried
}

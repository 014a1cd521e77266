package web

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "helpdesk_flash"

type Flash struct {
	Kind    string
	Message string
}

// setFlash queues a one-shot message for the next rendered page.
func setFlash(c *gin.Context, kind, message string) {
	encoded := base64.URLEncoding.EncodeToString([]byte(kind + "|" + message))
	c.SetCookie(flashCookie, encoded, 60, "/", "", false, true)
}

// popFlashes reads and clears queued flash messages.
func popFlashes(c *gin.Context) []Flash {
	encoded, err := c.Cookie(flashCookie)
	if err != nil || encoded == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	kind, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}
	return []Flash{{Kind: kind, Message: message}}
}

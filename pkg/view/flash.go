package view

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "leafclinic_flash"

// SetFlash stores a one-shot message for the next rendered page.
func SetFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, url.QueryEscape(msg), 60, "/", "", false, true)
}

// TakeFlash reads and clears the pending flash message, if any.
func TakeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}

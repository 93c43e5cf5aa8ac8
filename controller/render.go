package controller

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	messagesCookie = "messages"
	pendingKey     = "flash.pending"
	consumedKey    = "flash.consumed"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelInfo    = "info"
)

// Message is a single-use notice shown on the next rendered page.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Render writes data as JSON, or as the named HTML template when the client
// prefers text/html. Pending flash messages and the current user are added.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["messages"] = consumeMessages(c)
	if user := c.GetString("displayName"); user != "" {
		data["current_user"] = user
	}
	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{gin.MIMEJSON, gin.MIMEHTML},
		HTMLName: name,
		Data:     data,
	})
}

// Flash queues a message for the next rendered page.
func Flash(c *gin.Context, level, text string) {
	pending := pendingMessages(c)
	pending = append(pending, Message{Level: level, Text: text})
	c.Set(pendingKey, pending)
	writeMessages(c, pending)
}

func pendingMessages(c *gin.Context) []Message {
	if v, ok := c.Get(pendingKey); ok {
		return v.([]Message)
	}
	if c.GetBool(consumedKey) {
		return nil
	}
	return readMessages(c)
}

func consumeMessages(c *gin.Context) []Message {
	messages := pendingMessages(c)
	if messages == nil {
		messages = []Message{}
	}
	c.Set(pendingKey, []Message(nil))
	c.Set(consumedKey, true)
	if _, err := c.Cookie(messagesCookie); err == nil || len(messages) > 0 {
		writeMessages(c, nil)
	}
	return messages
}

func readMessages(c *gin.Context) []Message {
	raw, err := c.Cookie(messagesCookie)
	if err != nil || raw == "" {
		return nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var messages []Message
	if err := json.Unmarshal(decoded, &messages); err != nil {
		return nil
	}
	return messages
}

func writeMessages(c *gin.Context, messages []Message) {
	c.SetSameSite(http.SameSiteLaxMode)
	if len(messages) == 0 {
		c.SetCookie(messagesCookie, "", -1, "/", "", false, true)
		return
	}
	encoded, err := json.Marshal(messages)
	if err != nil {
		return
	}
	c.SetCookie(messagesCookie, base64.RawURLEncoding.EncodeToString(encoded), 0, "/", "", false, true)
}

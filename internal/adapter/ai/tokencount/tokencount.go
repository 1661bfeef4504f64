// Package tokencount provides approximate token counting for LLM calls.
//
// It uses tiktoken-go, a Go port of OpenAI's tiktoken library. Gemini does
// not publish its tokenizer, so cl100k_base serves as a close-enough estimate
// for monitoring prompt and answer sizes. Counts feed metrics only; they
// never gate a request.
package tokencount

import (
	"sync"

	"log/slog"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Counter provides thread-safe token counting.
type Counter struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
}

// NewCounter creates a new token counter instance.
func NewCounter() *Counter { return &Counter{} }

// DefaultCounter is a process-wide counter instance.
var DefaultCounter = NewCounter()

func (c *Counter) encoding() *tiktoken.Tiktoken {
	c.once.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			slog.Warn("tiktoken encoding unavailable, token counts will be estimated", slog.Any("error", err))
			return
		}
		c.enc = enc
	})
	return c.enc
}

// CountTokens returns the approximate token count of text. When the encoding
// cannot be loaded it falls back to a rough four-characters-per-token rule.
func (c *Counter) CountTokens(text string) int {
	enc := c.encoding()
	if enc == nil {
		return len(text) / 4
	}
	return len(enc.Encode(text, nil, nil))
}

// CountChatTokens approximates the token footprint of a system+user message
// pair, including per-message overhead used by chat-style APIs.
func (c *Counter) CountChatTokens(systemPrompt, userPrompt string) int {
	// 3 tokens per message plus 1 for the role, plus reply priming.
	const perMessage, perRole, priming = 3, 1, 3
	n := 2*(perMessage+perRole) + priming
	n += c.CountTokens(systemPrompt)
	n += c.CountTokens(userPrompt)
	return n
}

package tokencount_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taracare/askgate/internal/adapter/ai/tokencount"
)

func TestCountTokens(t *testing.T) {
	c := tokencount.NewCounter()

	assert.Equal(t, 0, c.CountTokens(""))

	short := c.CountTokens("tarantula humidity")
	long := c.CountTokens(strings.Repeat("tarantula humidity substrate temperature ", 50))
	assert.Greater(t, long, short, "longer text should not count fewer tokens")
}

func TestCountChatTokens_IncludesOverhead(t *testing.T) {
	c := tokencount.NewCounter()
	bare := c.CountTokens("system") + c.CountTokens("user")
	chat := c.CountChatTokens("system", "user")
	assert.Greater(t, chat, bare, "chat counting must add per-message overhead")
}

func TestCountTokens_SharedCounterIsSafe(t *testing.T) {
	done := make(chan int, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- tokencount.DefaultCounter.CountTokens("ความชื้นในตู้เลี้ยงทารันทูล่า")
		}()
	}
	first := <-done
	for i := 1; i < 8; i++ {
		assert.Equal(t, first, <-done)
	}
}

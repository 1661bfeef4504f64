package gemini

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taracare/askgate/internal/config"
	"github.com/taracare/askgate/internal/domain"
	"github.com/taracare/askgate/internal/usecase"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), config.Config{UpstreamTimeout: time.Second}, usecase.DefaultSystemInstruction)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestResponseSchema_RequiredFields(t *testing.T) {
	assert.ElementsMatch(t, []string{"topic_ok", "answer"}, responseSchema.Required)
	for _, field := range []string{"topic_ok", "style_ok", "answer", "notes"} {
		assert.Contains(t, responseSchema.Properties, field)
	}
}

package usecase

import (
	"strings"

	"github.com/taracare/askgate/pkg/textx"
)

// truncationMarker is appended when an answer is cut at the ceiling.
const truncationMarker = "…"

// ClampWords deterministically bounds the answer length without another model
// call. Under-length text is returned unchanged (no padding); text within
// bounds passes through; anything longer is cut to the first maxWords tokens
// plus a truncation marker. Clamping an already-clamped string is a no-op.
func ClampWords(text string, minWords, maxWords int) string {
	trimmed := strings.TrimSpace(text)
	words := textx.Words(trimmed)
	if len(words) < minWords {
		return trimmed
	}
	if len(words) <= maxWords {
		return trimmed
	}
	return strings.Join(words[:maxWords], " ") + " " + truncationMarker
}

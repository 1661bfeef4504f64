package usecase

import (
	"strings"

	"github.com/taracare/askgate/internal/domain"
	"github.com/taracare/askgate/pkg/textx"
)

// Validate checks a structured result against the topic/style/length contract
// and returns the verdict plus the measured word count of the answer.
//
// Rules apply in order: an off-topic result is terminal and never refined; an
// empty answer, a falsy style_ok, or a word count outside the refine band
// triggers the single refinement pass; everything else is accepted. The
// refine band is looser than the final clamp band on purpose: refinement runs
// at most once, so the tolerance before retrying must be wider than the hard
// ceiling enforced afterwards.
func Validate(res domain.StructuredResult, minWords, maxWords int) (domain.Verdict, int) {
	if !res.TopicOK {
		return domain.VerdictRejectedOffTopic, 0
	}
	answer := strings.TrimSpace(res.Answer)
	wordCount := textx.WordCount(answer)
	if answer == "" || !res.StyleOK || wordCount < minWords || wordCount > maxWords {
		return domain.VerdictNeedsRefinement, wordCount
	}
	return domain.VerdictAccepted, wordCount
}

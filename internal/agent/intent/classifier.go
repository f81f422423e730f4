// Package intent routes each turn into a discrete label. The classifier is
// deterministic rule-first: exact casual matches, dispute and more-detail
// phrasing, deferred-feature keywords, visa keyword scoring, and the short
// follow-up rule all resolve without any model call. Only the general
// remainder is delegated to the pluggable statistical predictor, and a
// low-confidence prediction degrades to the safe casual hand-off.
package intent

import (
	"context"
	"regexp"
	"strings"

	"github.com/rehman-travels/visabot/server/internal/agent/extract"
	"github.com/rehman-travels/visabot/server/internal/agent/model"
	logx "github.com/rehman-travels/visabot/server/pkg/logger"
)

// followUpMaxTokens bounds how short a message must be for the in-context
// country-mention shortcut ("dubai", "i'm pakistani").
const followUpMaxTokens = 3

var casualPatterns = []*regexp.Regexp{
	// greetings
	regexp.MustCompile(`\b(hi|hello|hey|good morning|good afternoon|good evening)\b`),
	regexp.MustCompile(`^(hi|hello|hey)[\s!.,]*$`),
	// thanks
	regexp.MustCompile(`\b(thanks|thank you|thx|appreciate|cheers)\b`),
	// farewell
	regexp.MustCompile(`\b(bye|goodbye|see you|take care|later)\b`),
	// how are you
	regexp.MustCompile(`\bhow are you\b`),
	regexp.MustCompile(`\bhow's it going\b`),
	regexp.MustCompile(`\bwhat's up\b`),
	// bare yes/no
	regexp.MustCompile(`^(yes|yeah|yep|sure|ok|okay|yup|alright)[\s!.,]*$`),
	regexp.MustCompile(`^(no|nope|nah)[\s!.,]*$`),
	// user does not know; the free-form responder handles these contextually
	regexp.MustCompile(`^idk[\s!.,]*$`),
	regexp.MustCompile(`^i\s*don'?t\s*know[\s!.,]*$`),
	regexp.MustCompile(`^not\s*sure[\s!.,]*$`),
	regexp.MustCompile(`^no\s*idea[\s!.,]*$`),
	regexp.MustCompile(`^unsure[\s!.,]*$`),
	regexp.MustCompile(`^no\s*clue[\s!.,]*$`),
	regexp.MustCompile(`^haven'?t\s*decided[\s!.,]*$`),
	regexp.MustCompile(`^i'?m\s*not\s*sure[\s!.,]*$`),
	regexp.MustCompile(`^dunno[\s!.,]*$`),
}

// Challenges to a previous answer. Always casual, even with visa words:
// these need a free-form reply, not another lookup.
var disputePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bbut\s+i\s+heard\b`),
	regexp.MustCompile(`\bbut\s+someone\s+(?:told|said)\b`),
	regexp.MustCompile(`\banother\s+(?:agent|person|friend)\b`),
	regexp.MustCompile(`\bthat'?s\s+(?:not\s+)?(?:right|correct|true|wrong)\b`),
	regexp.MustCompile(`\bare\s+you\s+sure\b`),
	regexp.MustCompile(`\bi\s+don'?t\s+(?:think|believe)\b`),
	regexp.MustCompile(`\breally\?`),
	regexp.MustCompile(`\bactually\b.*\bheard\b`),
}

// Requests to elaborate on an answer already given.
var moreDetailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:tell|give)\s+(?:me\s+)?more\b`),
	regexp.MustCompile(`\bmore\s+(?:info|information|details)\b`),
	regexp.MustCompile(`\bhow\s+(?:do\s+i|can\s+i|to)\s+apply\b`),
	regexp.MustCompile(`\bwhat\s+(?:are\s+the|is\s+the)\s+(?:requirements?|process|steps?)\b`),
	regexp.MustCompile(`\bexplain\b`),
	regexp.MustCompile(`\bwhy\b`),
}

var visaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bvisa\b`),
	regexp.MustCompile(`\bpassport\b`),
	regexp.MustCompile(`\btravel(?:ing|ling)?\b`),
	regexp.MustCompile(`\bvisit(?:ing)?\b`),
	regexp.MustCompile(`\bentry\b`),
	regexp.MustCompile(`\bimmigration\b`),
	regexp.MustCompile(`\b(go|going|went|fly|flying|flew|travel|visit|trip)\s+to\b`),
	regexp.MustCompile(`\bdo i need\b`),
	regexp.MustCompile(`\bam i allowed\b`),
}

// Deferred features: recognized so they get their fixed canned response
// instead of confusing the visa path.
var deferredPatterns = []struct {
	label model.IntentLabel
	re    *regexp.Regexp
}{
	{model.IntentTicketChange, regexp.MustCompile(`\b(?:change|reschedule|cancel)\b.*\b(?:ticket|flight|booking)\b`)},
	{model.IntentTicketChange, regexp.MustCompile(`\bticket\s+change\b`)},
	{model.IntentFlightInfo, regexp.MustCompile(`\bflight\s+(?:status|info|information|schedule|times?)\b`)},
	{model.IntentBooking, regexp.MustCompile(`\b(?:book|booking|reserve|reservation)\b`)},
}

// Bare answers to "is X where you're from, or where you're going?".
var clarifyOriginTokens = map[string]struct{}{
	"origin": {}, "nationality": {}, "my nationality": {}, "from": {}, "from there": {},
}

var clarifyDestinationTokens = map[string]struct{}{
	"destination": {}, "to": {}, "there": {}, "going there": {},
}

type Classifier struct {
	extractor     *extract.Extractor
	predictor     model.IntentPredictor
	minConfidence float64
}

// New builds a classifier. predictor may be nil; the rule paths never need
// it and the general case then defaults to casual.
func New(extractor *extract.Extractor, predictor model.IntentPredictor, cfg model.ClassifierConfig) *Classifier {
	return &Classifier{
		extractor:     extractor,
		predictor:     predictor,
		minConfidence: cfg.MinConfidence,
	}
}

// Classify routes a message into an IntentLabel. hasContext reports whether
// the session is already inside a visa conversation.
func (c *Classifier) Classify(ctx context.Context, text string, hasContext bool) model.IntentLabel {
	lower := strings.ToLower(strings.TrimSpace(text))

	if len(lower) < 2 {
		return model.IntentCasual
	}

	if matchesAny(disputePatterns, lower) || matchesAny(moreDetailPatterns, lower) {
		return model.IntentCasual
	}

	if matchesAny(casualPatterns, lower) && !c.hasVisaWords(lower) {
		return model.IntentCasual
	}

	if lbl, ok := clarificationLabel(lower); ok {
		return lbl
	}

	for _, d := range deferredPatterns {
		if d.re.MatchString(lower) {
			return d.label
		}
	}

	if c.hasVisaWords(lower) {
		return model.IntentVisaQuery
	}

	if c.mentionsCountry(lower) {
		if hasContext && tokenCount(lower) <= followUpMaxTokens {
			return model.IntentFollowUp
		}
		if !hasContext {
			return model.IntentVisaQuery
		}
		// longer in-context messages with a country but no visa words are
		// genuinely ambiguous; let the predictor decide
	}

	return c.predictFallback(ctx, lower)
}

// predictFallback delegates the general case to the statistical predictor.
// Absent predictor, failed calls, and low-confidence guesses all resolve to
// casual: a wrong free-form reply beats a wrong structured route.
func (c *Classifier) predictFallback(ctx context.Context, lower string) model.IntentLabel {
	if c.predictor == nil {
		return model.IntentCasual
	}

	pred, err := c.predictor.Predict(ctx, lower)
	if err != nil {
		logx.Debug().Err(err).Msg("intent predictor unavailable, defaulting to casual")
		return model.IntentCasual
	}
	if pred.Confidence < c.minConfidence {
		logx.Debug().
			Str("intent", string(pred.Intent)).
			Float64("confidence", pred.Confidence).
			Float64("min_confidence", c.minConfidence).
			Msg("low-confidence prediction discarded")
		return model.IntentCasual
	}
	return pred.Intent
}

func (c *Classifier) hasVisaWords(lower string) bool {
	for _, re := range visaPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func (c *Classifier) mentionsCountry(lower string) bool {
	return len(c.extractor.Extract(lower).Mentions) > 0
}

func clarificationLabel(lower string) (model.IntentLabel, bool) {
	trimmed := strings.Trim(lower, " !.,?")
	if _, ok := clarifyOriginTokens[trimmed]; ok {
		return model.IntentClarifyOrigin, true
	}
	if _, ok := clarifyDestinationTokens[trimmed]; ok {
		return model.IntentClarifyDestination, true
	}
	return "", false
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func tokenCount(s string) int {
	return len(strings.Fields(s))
}

// Package extract finds country and nationality mentions in free text and
// classifies each as the origin or destination of a travel query. Matching is
// exact first (word-boundary, longest alias wins), with an edit-distance
// fallback that recovers typos like "pakisatni". No model call is involved.
package extract

import (
	"regexp"
	"strings"

	"github.com/rehman-travels/visabot/server/internal/agent/model"
	"github.com/rehman-travels/visabot/server/internal/agent/registry"
)

const (
	// fuzzyMinWordLen keeps short words out of the typo pass; below five
	// characters almost anything is within edit distance of something.
	fuzzyMinWordLen = 5
	// fuzzyMaxLenDelta bounds the length gap between a word and a candidate
	// alias, so "uk" never competes for "pakistan".
	fuzzyMaxLenDelta = 3
	// fuzzyMinSimilarity is the accept threshold for the best fuzzy match.
	fuzzyMinSimilarity = 0.75
)

// Cues that the country immediately after them is the traveller's origin.
var originIndicators = []*regexp.Regexp{
	regexp.MustCompile(`i'm\s+(?:a\s+)?\s*$`),
	regexp.MustCompile(`i\s+am\s+(?:a\s+)?\s*$`),
	regexp.MustCompile(`as\s+(?:a\s+)?\s*$`),
	regexp.MustCompile(`being\s+(?:a\s+)?\s*$`),
	regexp.MustCompile(`from\s+\s*$`),
	regexp.MustCompile(`my\s+passport\s+is\s+\s*$`),
	regexp.MustCompile(`(?:using|have|hold|with)\s+(?:a\s+)?.*?passport\s*$`),
	regexp.MustCompile(`citizen\s+of\s+\s*$`),
	regexp.MustCompile(`national\s+of\s+\s*$`),
}

// Cues that the country immediately after them is the destination.
var destinationIndicators = []*regexp.Regexp{
	regexp.MustCompile(`to\s+\s*$`),
	regexp.MustCompile(`visit(?:ing)?\s+\s*$`),
	regexp.MustCompile(`go(?:ing)?\s+to\s+\s*$`),
	regexp.MustCompile(`travel(?:ling|ing)?\s+to\s+\s*$`),
	regexp.MustCompile(`fly(?:ing)?\s+to\s+\s*$`),
	regexp.MustCompile(`enter(?:ing)?\s+\s*$`),
	regexp.MustCompile(`into\s+\s*$`),
}

// "Singapore visa for Pakistani": first word is the destination, second the
// origin nationality.
var visaForPattern = regexp.MustCompile(`(\w+)\s+visa\s+for\s+(\w+)`)

// Trailing "for X" / "for Xs?": a demonym there is the origin, a plain
// country name the destination.
var trailingForPattern = regexp.MustCompile(`for\s+(\w+?)(s)?\s*\??$`)

var fuzzyWordPattern = regexp.MustCompile(`\b[a-zA-Z]{5,}\b`)

// Extractor scans text against a shared country registry. Safe for
// concurrent use; all state is built once in New.
type Extractor struct {
	reg          *registry.Registry
	aliasRegexps []aliasMatcher // longest alias first
}

type aliasMatcher struct {
	alias string
	code  model.CountryCode
	re    *regexp.Regexp
}

func New(reg *registry.Registry) *Extractor {
	aliases := reg.Aliases()
	matchers := make([]aliasMatcher, 0, len(aliases))
	for _, alias := range aliases {
		code, _ := reg.Resolve(alias)
		matchers = append(matchers, aliasMatcher{
			alias: alias,
			code:  code,
			re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`),
		})
	}
	return &Extractor{reg: reg, aliasRegexps: matchers}
}

// Extract finds all country mentions in text and assigns origin/destination
// roles. It never fails: text without countries yields a result with both
// slots empty.
func (e *Extractor) Extract(text string) model.ExtractionResult {
	lower := strings.ToLower(text)

	mentions := e.findMentions(lower)
	origin, destination := e.classifyRoles(lower, mentions)

	res := model.ExtractionResult{
		Origin:      origin,
		Destination: destination,
		Mentions:    mentions,
	}
	if !origin.IsZero() {
		res.OriginName = e.reg.NameOf(origin)
		for _, m := range mentions {
			if m.Code == origin && m.IsNationality {
				res.OriginIsNationality = true
				break
			}
		}
	}
	if !destination.IsZero() {
		res.DestinationName = e.reg.NameOf(destination)
	}
	return res
}

// findMentions runs the exact pass over every known alias, longest first,
// rejecting overlaps, then falls back to fuzzy matching only when the exact
// pass found nothing.
func (e *Extractor) findMentions(lower string) []model.Mention {
	var mentions []model.Mention
	taken := make([]bool, len(lower))

	for _, am := range e.aliasRegexps {
		for _, span := range am.re.FindAllStringIndex(lower, -1) {
			start, end := span[0], span[1]
			if overlaps(taken, start, end) {
				continue
			}
			for i := start; i < end; i++ {
				taken[i] = true
			}
			mentions = append(mentions, model.Mention{
				Surface:       am.alias,
				Code:          am.code,
				Start:         start,
				End:           end,
				IsNationality: e.reg.IsDemonym(am.alias),
			})
		}
	}

	if len(mentions) == 0 {
		mentions = e.fuzzyFindMentions(lower)
	}

	// order by position in the text
	for i := 1; i < len(mentions); i++ {
		for j := i; j > 0 && mentions[j].Start < mentions[j-1].Start; j-- {
			mentions[j], mentions[j-1] = mentions[j-1], mentions[j]
		}
	}
	return mentions
}

// fuzzyFindMentions compares each sufficiently long word against aliases of
// comparable length and keeps the best match above the similarity threshold.
func (e *Extractor) fuzzyFindMentions(lower string) []model.Mention {
	var mentions []model.Mention

	for _, span := range fuzzyWordPattern.FindAllStringIndex(lower, -1) {
		word := lower[span[0]:span[1]]

		bestRatio := 0.0
		var best aliasMatcher
		for _, am := range e.aliasRegexps {
			delta := len(am.alias) - len(word)
			if delta > fuzzyMaxLenDelta || delta < -fuzzyMaxLenDelta {
				continue
			}
			if ratio := similarity(word, am.alias); ratio > bestRatio {
				bestRatio = ratio
				best = am
			}
		}

		if bestRatio >= fuzzyMinSimilarity {
			mentions = append(mentions, model.Mention{
				Surface:       best.alias,
				Code:          best.code,
				Start:         span[0],
				End:           span[1],
				Fuzzy:         true,
				Similarity:    bestRatio,
				IsNationality: e.reg.IsDemonym(best.alias),
			})
		}
	}
	return mentions
}

// classifyRoles applies, in priority order: the "X visa for Y" pattern, the
// trailing "for Nationality" pattern, indicator phrases preceding each
// mention, textual order for an unclassified pair, and the lone-mention
// demonym rule. A lone non-demonym mention lands in origin with the
// nationality flag unset so the caller knows it is ambiguous.
func (e *Extractor) classifyRoles(lower string, mentions []model.Mention) (origin, destination model.CountryCode) {
	if len(mentions) == 0 {
		return "", ""
	}

	// "Singapore visa for Pakistani" → destination=SGP, origin=PAK
	if m := visaForPattern.FindStringSubmatch(lower); m != nil && len(mentions) >= 2 {
		if code, ok := e.reg.Resolve(m[1]); ok {
			destination = code
		}
		if code, ok := e.reg.Resolve(m[2]); ok {
			origin = code
		}
		if !origin.IsZero() && !destination.IsZero() {
			return origin, destination
		}
		origin, destination = "", ""
	}

	// "What about UAE for Pakistanis?" → origin=PAK, destination=ARE.
	// "Do I need a visa for France?" → France is a destination, not a demonym.
	if m := trailingForPattern.FindStringSubmatch(lower); m != nil {
		word := m[1]
		withS := word + "s"

		switch {
		case e.reg.IsDemonym(word):
			if code, ok := e.reg.Resolve(word); ok {
				origin = code
			} else if code, ok := e.reg.Resolve(withS); ok {
				origin = code
			}
			if !origin.IsZero() {
				if dest := firstOther(mentions, origin); !dest.IsZero() {
					return origin, dest
				}
			}
		case e.reg.IsDemonym(withS):
			if code, ok := e.reg.Resolve(withS); ok {
				origin = code
				if dest := firstOther(mentions, origin); !dest.IsZero() {
					return origin, dest
				}
			}
		default:
			if code, ok := e.reg.Resolve(word); ok {
				destination = code
			}
		}
	}

	// Indicator phrases directly before each mention.
	for _, mention := range mentions {
		before := lower[:mention.Start]

		isOrigin := matchesAny(originIndicators, before)
		isDestination := !isOrigin && matchesAny(destinationIndicators, before)

		switch {
		case isOrigin && origin.IsZero():
			origin = mention.Code
		case isDestination && destination.IsZero():
			destination = mention.Code
		case origin.IsZero() && destination.IsZero() && mention.IsNationality:
			origin = mention.Code
		}
	}

	// Two mentions left unclassified: first is origin, second destination.
	if len(mentions) >= 2 {
		switch {
		case origin.IsZero() && destination.IsZero():
			origin = mentions[0].Code
			destination = mentions[1].Code
		case !origin.IsZero() && destination.IsZero():
			destination = firstOther(mentions, origin)
		case origin.IsZero() && !destination.IsZero():
			origin = firstOther(mentions, destination)
		}
	}

	// One mention, no cues: a demonym is unambiguously the origin; anything
	// else is stored as origin and flagged ambiguous by the caller.
	if len(mentions) == 1 && origin.IsZero() && destination.IsZero() {
		origin = mentions[0].Code
	}

	return origin, destination
}

func firstOther(mentions []model.Mention, exclude model.CountryCode) model.CountryCode {
	for _, m := range mentions {
		if m.Code != exclude {
			return m.Code
		}
	}
	return ""
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func overlaps(taken []bool, start, end int) bool {
	for i := start; i < end && i < len(taken); i++ {
		if taken[i] {
			return true
		}
	}
	return false
}

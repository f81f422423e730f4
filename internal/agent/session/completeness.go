package session

import "github.com/rehman-travels/visabot/server/internal/agent/model"

// Check inspects the slot state and says whether the structured lookup can
// run, and if not, what to ask next. A pending clarification outranks any
// missing-slot suggestion. Pure read; calling it twice without an Update in
// between returns the same verdict.
func Check(s *State) model.CompletenessResult {
	if s.NeedsClarification() {
		_, name := s.PendingClarification()
		return model.CompletenessResult{
			Suggestion:           model.SuggestClarifyCountry,
			ClarificationCountry: name,
			Missing:              s.Missing(),
		}
	}

	missing := s.Missing()
	if len(missing) == 0 {
		return model.CompletenessResult{Complete: true, Suggestion: model.SuggestNone}
	}

	res := model.CompletenessResult{Missing: missing}
	switch {
	case len(missing) == 2:
		res.Suggestion = model.SuggestNeedBoth
	case missing[0] == model.SlotOrigin:
		res.Suggestion = model.SuggestNeedOrigin
	default:
		res.Suggestion = model.SuggestNeedDestination
	}
	return res
}

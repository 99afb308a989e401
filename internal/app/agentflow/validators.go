package agentflow

import "strings"

var routineSectionMarkers = []string{"morning", "afternoon", "evening", "key principles"}

var sympathyPhrases = []string{
	"don't worry",
	"everything will be okay",
	"everything will be ok",
	"everything will be fine",
	"i'm so sorry",
	"i am so sorry",
	"poor you",
	"it's not your fault",
}

var directnessPhrases = []string{
	"truth",
	"reality",
	"fact",
	"let's be clear",
	"bottom line",
}

func normalize(text string) string {
	text = strings.ToLower(text)
	return strings.NewReplacer("’", "'", "‘", "'").Replace(text)
}

// ValidateRoutine passes iff every section marker appears somewhere in the
// text. Order and formatting are not checked.
func ValidateRoutine(text string) bool {
	lower := normalize(text)
	for _, marker := range routineSectionMarkers {
		if !strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// ValidateBrutalHonesty passes iff the text has no sympathy phrase and at
// least one directness phrase.
func ValidateBrutalHonesty(text string) bool {
	lower := normalize(text)
	for _, p := range sympathyPhrases {
		if strings.Contains(lower, p) {
			return false
		}
	}
	for _, p := range directnessPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

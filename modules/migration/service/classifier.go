package service

import (
	"strings"

	"courtsched/modules/slotconfig/entity"
)

// Legacy block titles carry their intent as literal Italian keywords. The
// matching is case-sensitive because the keywords are content markers in
// stored data, not user input to normalize.
const (
	keywordSchool      = "Scuola"
	keywordLesson      = "Lezione"
	keywordMaintenance = "Manutenzione"
	keywordCourse      = "Corso"
	keywordTraining    = "Allenamento"
)

// recurrenceKeywords mark a block as a disguised weekly pattern rather than
// a one-off exclusion.
var recurrenceKeywords = []string{
	keywordSchool,
	keywordLesson,
	keywordMaintenance,
	keywordCourse,
	keywordTraining,
}

// Classify maps a block's declared type and title to an activity category.
// Rules apply in priority order and the first match wins, so a title
// containing both "Scuola" and "Lezione" classifies as school. Total by
// design: anything unmatched is regular, never an error.
func Classify(declaredType *string, title string) entity.ActivityType {
	dt := ""
	if declaredType != nil {
		dt = *declaredType
	}

	switch {
	case dt == string(entity.ActivitySchool) || strings.Contains(title, keywordSchool):
		return entity.ActivitySchool
	case dt == string(entity.ActivityIndividual) || strings.Contains(title, keywordLesson):
		return entity.ActivityIndividual
	case dt == string(entity.ActivityBlocked) || strings.Contains(title, keywordMaintenance):
		return entity.ActivityBlocked
	default:
		return entity.ActivityRegular
	}
}

// IsRecurringCandidate reports whether a block's title marks it for
// migration into a recurring slot configuration.
func IsRecurringCandidate(title string) bool {
	for _, kw := range recurrenceKeywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

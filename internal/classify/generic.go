// ABOUTME: Detection of auto-generated ("generic") activity names.
// ABOUTME: Exact template membership plus a few known time-of-day substrings.
package classify

import "strings"

// genericNames are the auto-generated activity names Strava assigns when the
// athlete does not name an activity, in French and English.
var genericNames = []string{
	// French
	"Trail le matin",
	"Trail le midi",
	"Trail dans l'après-midi",
	"Trail en soirée",
	"Trail en fin de journée",
	"Course le matin",
	"Course le midi",
	"Course dans l'après-midi",
	"Course en soirée",
	"Course en fin de journée",
	"Sortie vélo le matin",
	"Sortie vélo le midi",
	"Sortie vélo dans l'après-midi",
	"Sortie vélo en soirée",
	"Sortie vélo en fin de journée",
	"VTT le matin",
	"VTT le midi",
	"VTT dans l'après-midi",
	"VTT en soirée",
	"VTT en fin de journée",
	"Randonnée le matin",
	"Randonnée le midi",
	"Randonnée dans l'après-midi",
	"Randonnée en soirée",
	"Randonnée en fin de journée",
	"Marche le matin",
	"Marche le midi",
	"Marche dans l'après-midi",
	"Marche en soirée",
	"Marche en fin de journée",

	// English
	"Morning Run",
	"Lunch Run",
	"Afternoon Run",
	"Evening Run",
	"Night Run",
	"Morning Ride",
	"Lunch Ride",
	"Afternoon Ride",
	"Evening Ride",
	"Night Ride",
	"Morning Walk",
	"Lunch Walk",
	"Afternoon Walk",
	"Evening Walk",
	"Night Walk",
	"Morning Hike",
	"Lunch Hike",
	"Afternoon Hike",
	"Evening Hike",
	"Night Hike",
}

// genericPatterns catch localized near-variants the fixed set misses, such
// as "Morning Trail Run" or "VTT électrique le midi".
var genericPatterns = []string{
	"le matin",
	"le midi",
	"l'après-midi",
	"en soirée",
	"en fin de journée",
	"morning",
	"lunch",
	"afternoon",
	"evening",
	"night",
}

// genericNameSet indexes genericNames by their normalized form.
var genericNameSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(genericNames))
	for _, name := range genericNames {
		set[normalizeName(name)] = struct{}{}
	}
	return set
}()

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsGenericName reports whether name is an auto-generated activity name.
// Matching is case-insensitive and ignores surrounding whitespace. Exact
// template membership is checked first, then the time-of-day substrings.
func IsGenericName(name string) bool {
	n := normalizeName(name)
	if n == "" {
		return false
	}

	if _, ok := genericNameSet[n]; ok {
		return true
	}

	for _, pattern := range genericPatterns {
		if strings.Contains(n, pattern) {
			return true
		}
	}
	return false
}

// GenericNames returns a copy of the known generic-name templates.
func GenericNames() []string {
	out := make([]string, len(genericNames))
	copy(out, genericNames)
	return out
}

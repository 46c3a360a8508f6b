package services

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// suggestionThreshold is the minimum Jaro-Winkler similarity for a suggestion
const suggestionThreshold = 0.8

// QuickPickService holds the preset cities offered as shortcuts
type QuickPickService struct {
	cities []string
}

func NewQuickPickService(cities []string) *QuickPickService {
	seen := make(map[string]bool, len(cities))
	cleaned := make([]string, 0, len(cities))
	for _, city := range cities {
		city = strings.TrimSpace(city)
		key := strings.ToLower(city)
		if city == "" || seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, city)
	}
	return &QuickPickService{cities: cleaned}
}

// List returns the preset cities in configured order
func (s *QuickPickService) List() []string {
	return append([]string(nil), s.cities...)
}

// Suggest returns the preset closest to a misspelled city, if any is close enough
func (s *QuickPickService) Suggest(city string) (string, bool) {
	query := strings.ToLower(strings.TrimSpace(city))
	if query == "" {
		return "", false
	}

	var best string
	var bestScore float32
	for _, candidate := range s.cities {
		lower := strings.ToLower(candidate)
		if lower == query {
			return "", false
		}
		score, err := edlib.StringsSimilarity(query, lower, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}

	if bestScore < suggestionThreshold {
		return "", false
	}
	return best, true
}

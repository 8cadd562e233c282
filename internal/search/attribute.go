package search

import "velvetleash/server/internal/models"

// MatchesAttributes checks zip code and pet acceptance. Unset criteria always match.
func MatchesAttributes(f SitterFilter, s models.Sitter) bool {
	if zip, ok := f.ZipCode(); ok && s.ZipCode != zip {
		return false
	}
	if dogs, ok := f.AcceptsDogs(); ok && s.AcceptsDogs != dogs {
		return false
	}
	if cats, ok := f.AcceptsCats(); ok && s.AcceptsCats != cats {
		return false
	}
	return true
}

func FilterByAttributes(f SitterFilter, sitters []models.Sitter) []models.Sitter {
	out := make([]models.Sitter, 0, len(sitters))
	for _, s := range sitters {
		if MatchesAttributes(f, s) {
			out = append(out, s)
		}
	}
	return out
}

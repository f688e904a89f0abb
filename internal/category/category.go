// Package category derives an athlete's competition bracket from their
// birth date.
package category

import (
	"fmt"
	"time"

	"renova-club/internal/domain"
)

// DateLayout is the wire format for all dates in the system.
const DateLayout = "2006-01-02"

// Classify maps a YYYY-MM-DD birth date to a bracket label.
//
// Age is the plain difference of calendar years: an athlete whose birthday
// has not happened yet this year still counts at the later age. The club
// brackets athletes by birth year, so month and day are deliberately
// ignored.
func Classify(birthDate string, now time.Time) (domain.Category, error) {
	birth, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidDate, birthDate)
	}

	age := now.Year() - birth.Year()

	switch {
	case age <= 12:
		return domain.Sub13, nil
	case age <= 14:
		return domain.Sub15, nil
	case age <= 16:
		return domain.Sub17, nil
	case age <= 18:
		return domain.Sub19, nil
	case age <= 20:
		return domain.Sub21, nil
	case age <= 22:
		return domain.Sub23, nil
	default:
		return domain.Adulto, nil
	}
}

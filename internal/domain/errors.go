package domain

import "errors"

// Sentinel errors shared across the application.
var (
	// ErrInvalidDate is returned when a birth or competition date does not
	// parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	ErrAthleteNotFound     = errors.New("athlete not found")
	ErrCompetitionNotFound = errors.New("competition not found")

	// ErrCEPNotFound is returned by the ViaCEP client when the postal code
	// resolves to no address.
	ErrCEPNotFound = errors.New("cep not found")
)

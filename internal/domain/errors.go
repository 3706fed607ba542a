package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrMissingFields    = errors.New("missing required invoice fields")
	ErrEmptyInvoice     = errors.New("invoice has no valid line items")
	ErrInvalidRate      = errors.New("tax rate is not a valid decimal")
	ErrInvalidDate      = errors.New("invoice date is not a valid calendar date")
	ErrDuplicateTaxID   = errors.New("tax id already exists for another supplier")
	ErrArtifactNotFound = errors.New("invoice file not found")
)

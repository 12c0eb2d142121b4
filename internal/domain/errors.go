package domain

import "errors"

var (
	// ErrNotFound record not found or outside of the actor's scope
	ErrNotFound = errors.New("record not found")

	// ErrForbidden actor is not allowed to perform the operation
	ErrForbidden = errors.New("operation not permitted")

	// ErrDuplicateApplication the store rejected an application for an existing (customer, offer) pair
	ErrDuplicateApplication = errors.New("application for this customer and offer already exists")

	// ErrDuplicateInBatch a computed batch contains the same (customer, offer) pair twice
	ErrDuplicateInBatch = errors.New("duplicate customer/offer pair in application batch")

	// ErrMissingCreditScore customer profile has no credit score
	ErrMissingCreditScore = errors.New("customer credit score is missing")

	// ErrInvalidScoreRange offer min score is greater than max score
	ErrInvalidScoreRange = errors.New("offer min score is greater than max score")

	ErrManualMatchingDisabled = errors.New("customer does not allow manual matching")
	ErrInvalidLenderID        = errors.New(`lender_id must be a lender id or "all"`)
	ErrInvalidStatus          = errors.New("unknown application status")
	ErrStatusTransition       = errors.New("status transition is not allowed")
	ErrInvalidInput           = errors.New("invalid input data")
)

package scoring

import "errors"

var (
	// ErrWeakSecret is returned by NewSigner when the secret is shorter than MinSecretLength.
	ErrWeakSecret = errors.New("score secret is too short")

	// ErrInvalidPayload is returned when a payload cannot be rendered canonically.
	ErrInvalidPayload = errors.New("invalid score payload")
)

// MismatchError is the VerificationResult.Error text for a wrong signature.
const MismatchError = "Signature mismatch"

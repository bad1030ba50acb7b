package launchpad

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized                    = errors.New("Unauthorized")
	ErrWindowNotOpen                   = errors.New("WindowNotOpen")
	ErrWindowClosed                    = errors.New("WindowClosed")
	ErrInvalidProof                    = errors.New("InvalidProof")
	ErrNotEligible                     = errors.New("NotEligible")
	ErrAlreadySubscribed               = errors.New("AlreadySubscribed")
	ErrCapacityExceeded                = errors.New("CapacityExceeded")
	ErrAmountMismatch                  = errors.New("AmountMismatch")
	ErrNotFunded                       = errors.New("NotFunded")
	ErrTooEarly                        = errors.New("TooEarly")
	ErrNoEligibleParticipants          = errors.New("NoEligibleParticipants")
	ErrGuaranteedAllocationUnsupported = errors.New("GuaranteedAllocationNotSupported")
	ErrVestingAlreadyConfigured        = errors.New("VestingAlreadyConfigured")
	ErrVestingNotConfigured            = errors.New("VestingNotConfigured")
	ErrFundsAlreadyClaimed             = errors.New("FundsAlreadyClaimed")
	ErrNothingToClaim                  = errors.New("NothingToClaim")
	ErrCannotBeZero                    = errors.New("CannotBeZero")
	ErrTokenAlreadySet                 = errors.New("TokenAlreadySet")
	ErrInvalidUserAddress              = errors.New("InvalidUserAddress")
)

type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func NewCustomError(code int, message string, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func ErrInvalidPool(poolID uint64) error {
	return fmt.Errorf("InvalidPool for pool ID %d", poolID)
}

func ErrInvalidAmount(entity, value string) error {
	return fmt.Errorf("InvalidAmount for %s with value %s", entity, value)
}

func ErrInvalidTimestamps(first, second uint64) error {
	return fmt.Errorf("InvalidTimestamps: %d must precede %d", first, second)
}

func ErrArraysLengthMismatch(length1, length2 int) error {
	return fmt.Errorf("ArraysLengthMismatch: length1: %d, length2: %d", length1, length2)
}

func ErrTransferFailed(token, reason string) error {
	return fmt.Errorf("TransferFailed for token %s: %s", token, reason)
}

func ErrNotRightOwner(rightID, claimant string) error {
	return fmt.Errorf("NotAllocationRightOwner for right %s and claimant %s", rightID, claimant)
}

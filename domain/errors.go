package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// auction state machine
	ErrAuctionNotFound   = errors.New("auction not found")
	ErrAuctionNotActive  = errors.New("auction not active")
	ErrAuctionNotExpired = errors.New("auction not expired")
	ErrAlreadyEnded      = errors.New("auction already ended")
	ErrBidTooLow         = errors.New("bid too low")
	ErrInvalidParameters = errors.New("invalid parameters")

	// bid normalization
	ErrUnsupportedAsset = errors.New("unsupported asset")
	ErrNoPriceFeed      = errors.New("no price feed")

	// custody
	ErrTransferFailed        = errors.New("transfer failed")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrNotItemOwner          = errors.New("not item owner")

	// access control
	ErrUnauthorized = errors.New("unauthorized")

	// upgrade plumbing
	ErrUnknownLogic = errors.New("unknown logic version")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
)

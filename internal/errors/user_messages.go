package errors

// User-friendly error messages
const (
	MsgListingsUnavailable = "We're unable to load listings right now. Please try again in a few minutes."
	MsgServiceUnavailable  = "The listing service is unavailable right now. Please try again in a few minutes."
	MsgUnauthorized        = "Your session has expired. Please sign in again."
	MsgInvalidCredentials  = "Invalid email or password."
	MsgEmailTaken          = "This email is already registered."
	MsgRateLimited         = "You're searching too quickly! Please wait a moment and try again."
	MsgInvalidParameters   = "The provided parameters are invalid. Please check your input and try again."
	MsgListingNotFound     = "This listing no longer exists."
	MsgInternalError       = "Something went wrong on our end. Please try again later."
)

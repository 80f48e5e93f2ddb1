package domain

import (
	"errors"
	"fmt"
)

// Code classifies a failure. Every error produced by sealbox carries exactly one.
type Code int

const (
	CodeGeneral Code = iota
	CodeBadNonce
	CodeBadPublicKey
	CodeBadSecretKey
	CodeLoadPublicKey
	CodeLoadSecretKey
	CodeLoadPrecompKey
	CodeKeypairFailed
	CodeBoxFailed
	CodeBoxOpenFailed
	CodeBeforenmFailed
	CodeAfternmBoxFailed
	CodeAfternmBoxOpenFailed
)

var codeNames = [...]string{
	CodeGeneral:              "general",
	CodeBadNonce:             "bad nonce",
	CodeBadPublicKey:         "bad public key",
	CodeBadSecretKey:         "bad secret key",
	CodeLoadPublicKey:        "load public key",
	CodeLoadSecretKey:        "load secret key",
	CodeLoadPrecompKey:       "load precomp key",
	CodeKeypairFailed:        "keypair failed",
	CodeBoxFailed:            "box failed",
	CodeBoxOpenFailed:        "box open failed",
	CodeBeforenmFailed:       "beforenm failed",
	CodeAfternmBoxFailed:     "afternm box failed",
	CodeAfternmBoxOpenFailed: "afternm box open failed",
}

// String returns the lower-case name of the code.
func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("code(%d)", int(c))
	}
	return codeNames[c]
}

// Error is the single failure type returned by sealbox operations.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return e.Code.String()
	case e.Err == nil:
		return e.Code.String() + ": " + e.Msg
	case e.Msg == "":
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same code, so the
// sentinels below work with errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks. They carry no message.
var (
	ErrGeneral              = &Error{Code: CodeGeneral}
	ErrBadNonce             = &Error{Code: CodeBadNonce}
	ErrBadPublicKey         = &Error{Code: CodeBadPublicKey}
	ErrBadSecretKey         = &Error{Code: CodeBadSecretKey}
	ErrLoadPublicKey        = &Error{Code: CodeLoadPublicKey}
	ErrLoadSecretKey        = &Error{Code: CodeLoadSecretKey}
	ErrLoadPrecompKey       = &Error{Code: CodeLoadPrecompKey}
	ErrKeypairFailed        = &Error{Code: CodeKeypairFailed}
	ErrBoxFailed            = &Error{Code: CodeBoxFailed}
	ErrBoxOpenFailed        = &Error{Code: CodeBoxOpenFailed}
	ErrBeforenmFailed       = &Error{Code: CodeBeforenmFailed}
	ErrAfternmBoxFailed     = &Error{Code: CodeAfternmBoxFailed}
	ErrAfternmBoxOpenFailed = &Error{Code: CodeAfternmBoxOpenFailed}
)

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches code and msg to err. A nil err yields nil.
func Wrap(code Code, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Msg: msg, Err: err}
}

// CodeOf returns the code carried by err, or CodeGeneral when err was not
// produced by sealbox.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeGeneral
}

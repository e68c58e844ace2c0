package skillmarket

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/skillhours/skillmarket-contract/contracts/skillmarket/marketconst"
)

// Category groups contract failures by their nature.
type Category string

// Failure categories.
const (
	CategoryAuthorization Category = "authorization"
	CategoryResource      Category = "resource"
	CategoryValidation    Category = "validation"
)

// Error is a contract failure recognized by its numeric code.
type Error struct {
	Code     int
	Message  string
	Category Category
}

// Known contract failures.
var (
	ErrOwnerOnly           = newError(marketconst.CodeOwnerOnly, marketconst.ErrOwnerOnly, CategoryAuthorization)
	ErrInsufficientBalance = newError(marketconst.CodeInsufficientBalance, marketconst.ErrInsufficientBalance, CategoryResource)
	ErrInvalidSkill        = newError(marketconst.CodeInvalidSkill, marketconst.ErrInvalidSkill, CategoryValidation)
	ErrInvalidRate         = newError(marketconst.CodeInvalidRate, marketconst.ErrInvalidRate, CategoryValidation)
	ErrReserveLimitReached = newError(marketconst.CodeReserveLimitReached, marketconst.ErrReserveLimitReached, CategoryResource)
	ErrUnauthorizedUser    = newError(marketconst.CodeUnauthorizedUser, marketconst.ErrUnauthorizedUser, CategoryAuthorization)
	ErrArithmeticUnderflow = newError(marketconst.CodeArithmeticUnderflow, marketconst.ErrArithmeticUnderflow, CategoryResource)
)

var (
	knownErrors = map[int]*Error{}

	// Exception text is either the bare message or wrapped by the VM into
	// "... unhandled exception: \"<message>\"".
	codeRe = regexp.MustCompile(`(?:^|"|\s)(2\d\d): `)
)

func newError(code int, msg string, cat Category) *Error {
	e := &Error{Code: code, Message: msg, Category: cat}
	knownErrors[code] = e
	return e
}

func (e *Error) Error() string {
	return e.Message
}

// ErrorByCode returns the known failure with the given code.
func ErrorByCode(code int) (*Error, bool) {
	e, ok := knownErrors[code]
	return e, ok
}

// ParseException extracts the contract failure from the FAULT exception
// message of an invocation. It returns nil if the exception does not carry a
// known code.
func ParseException(exception string) *Error {
	m := codeRe.FindStringSubmatch(exception)
	if m == nil {
		return nil
	}

	code, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	e, _ := ErrorByCode(code)
	return e
}

// FromError unwraps err looking for a contract failure. Errors of RPC client
// calls keep the exception text, so it is matched as well.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return ParseException(err.Error())
}

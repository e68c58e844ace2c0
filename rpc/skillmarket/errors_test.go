package skillmarket

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseException(t *testing.T) {
	for _, tc := range []struct {
		exception string
		expected  *Error
	}{
		{"200: owner only", ErrOwnerOnly},
		{`at instruction 1021 (THROW): unhandled exception: "201: insufficient balance"`, ErrInsufficientBalance},
		{`at instruction 7 (THROW): unhandled exception: "202: invalid skill amount"`, ErrInvalidSkill},
		{`unhandled exception: "203: invalid rate"`, ErrInvalidRate},
		{"204: reserve limit reached", ErrReserveLimitReached},
		{"205: unauthorized user", ErrUnauthorizedUser},
		{"206: arithmetic underflow", ErrArithmeticUnderflow},
		{"299: unknown", nil},
		{"at instruction 200 (THROW): unhandled exception: \"oops\"", nil},
		{"", nil},
	} {
		require.Equal(t, tc.expected, ParseException(tc.exception), tc.exception)
	}
}

func TestFromError(t *testing.T) {
	require.Nil(t, FromError(nil))
	require.Nil(t, FromError(errors.New("connection refused")))

	err := fmt.Errorf("send transaction: %w", ErrOwnerOnly)
	require.Equal(t, ErrOwnerOnly, FromError(err))
	require.ErrorIs(t, err, ErrOwnerOnly)

	err = errors.New(`invocation failed: at instruction 1 (THROW): unhandled exception: "205: unauthorized user"`)
	e := FromError(err)
	require.Equal(t, ErrUnauthorizedUser, e)
	require.Equal(t, CategoryAuthorization, e.Category)
}

func TestErrorByCode(t *testing.T) {
	for code := 200; code <= 206; code++ {
		e, ok := ErrorByCode(code)
		require.True(t, ok)
		require.Equal(t, code, e.Code)
		require.Equal(t, fmt.Sprintf("%d: ", code), e.Error()[:5])
	}

	_, ok := ErrorByCode(207)
	require.False(t, ok)
}

package stopid

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		id   string
		want string
	}{
		{name: "code wins", code: "123", id: "999", want: "123"},
		{name: "empty code falls back to id", code: "", id: "999", want: "999"},
		{name: "blank code falls back to id", code: "   ", id: "999", want: "999"},
		{name: "id kept verbatim", code: "", id: "STOP_4521", want: "STOP_4521"},
		{name: "code kept verbatim", code: "0042", id: "42", want: "0042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCode(tt.code, tt.id))
		})
	}
}

func TestResolve(t *testing.T) {
	ident, err := Resolve("123", "999")
	require.NoError(t, err)
	assert.Equal(t, Identity{Code: "123", ID: 123}, ident)

	ident, err = Resolve("0042", "42")
	require.NoError(t, err)
	assert.Equal(t, Identity{Code: "0042", ID: 42}, ident)
}

func TestResolve_EmptyCodeIsFatal(t *testing.T) {
	// display code falls back to the id, the numeric ID still comes from the code
	assert.Equal(t, "4521", ResolveCode("", "4521"))

	_, err := Resolve("", "4521")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonNumericCode))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "4521", pe.StopID)
	assert.Equal(t, "", pe.Code)
}

func TestResolve_NonNumericCode(t *testing.T) {
	_, err := Resolve("12a", "stop-12a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonNumericCode)

	var ne *strconv.NumError
	require.True(t, errors.As(err, &ne))
	assert.Contains(t, err.Error(), "stop-12a")
}

func TestParseID(t *testing.T) {
	n, err := ParseID(" 1750 ", "x")
	require.NoError(t, err)
	assert.Equal(t, 1750, n)

	_, err = ParseID("", "x")
	assert.Error(t, err)
}

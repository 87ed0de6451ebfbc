package direction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_APIValues(t *testing.T) {
	// values consumed by the RTC real-time API
	assert.Equal(t, 1, int(North))
	assert.Equal(t, 2, int(South))
	assert.Equal(t, 3, int(East))
	assert.Equal(t, 4, int(West))
}

func TestCode_Letter(t *testing.T) {
	assert.Equal(t, "N", North.Letter())
	assert.Equal(t, "S", South.Letter())
	assert.Equal(t, "E", East.Letter())
	assert.Equal(t, "O", West.Letter())
	assert.Equal(t, "", Code(0).Letter())
	assert.False(t, Code(0).Valid())
	assert.Equal(t, "Code(9)", Code(9).String())
}

func TestCode_Text(t *testing.T) {
	b, err := json.Marshal(struct {
		D Code `json:"d"`
	}{D: West})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"O"}`, string(b))

	var c Code
	require.NoError(t, c.UnmarshalText([]byte("E")))
	assert.Equal(t, East, c)
	assert.Error(t, c.UnmarshalText([]byte("W")))

	_, err = Code(0).MarshalText()
	assert.Error(t, err)
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "420.00", Units(420).String())
	assert.Equal(t, "299.99", FromFloat(299.99).String())
	assert.Equal(t, "-10.50", Amount(-1050).String())
	assert.Equal(t, "0.05", Amount(5).String())
}

func TestAmount_JSONRoundtrip(t *testing.T) {
	in := FromFloat(123.45)
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "123.45", string(data))

	var out Amount
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestMaxAmount(t *testing.T) {
	assert.Equal(t, Units(50), MaxAmount(Units(50), 0))
	assert.Equal(t, Units(60), MaxAmount(Units(50), Units(60)))
}

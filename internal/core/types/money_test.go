package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_MarshalKeepsScale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"300.00", `"300.00"`},
		{"1500.00", `"1500.00"`},
		{"1500", `"1500"`},
		{"0.1", `"0.1"`},
		{"25.50", `"25.50"`},
		{"0", `"0"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			data, err := json.Marshal(MustMoney(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	original := MustMoney("1234.56")

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var parsed Money
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(original))

	// A second round trip produces identical bytes.
	again, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestMoney_UnmarshalAcceptsNumbers(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`150.75`), &m))
	assert.True(t, m.Equal(MustMoney("150.75")))

	assert.Error(t, json.Unmarshal([]byte(`"not money"`), &m))
}

func TestMoney_Comparisons(t *testing.T) {
	assert.True(t, MustMoney("300.00").Equal(MustMoney("300")))
	assert.True(t, MustMoney("300.01").GreaterThan(MustMoney("300")))
	assert.True(t, MustMoney("300").GreaterThanOrEqual(MustMoney("300.00")))
	assert.True(t, MustMoney("299.99").LessThanOrEqual(MustMoney("300")))
	assert.True(t, Zero().IsZero())
}

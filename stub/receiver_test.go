package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pystub/errors"
)

func TestParseReceiver(t *testing.T) {
	tests := []struct {
		in       string
		expected Receiver
	}{
		{"", Instance},
		{"instance", Instance},
		{"self", Instance},
		{"class", Class},
		{"classmethod", Class},
		{" Static ", Static},
		{"staticmethod", Static},
	}

	for _, tt := range tests {
		got, err := ParseReceiver(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, got, tt.in)
	}
}

func TestParseReceiverUnknown(t *testing.T) {
	_, err := ParseReceiver("both")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownReceiver))
	assert.Contains(t, err.Error(), `"both"`)
}

func TestReceiverZeroValueIsInstance(t *testing.T) {
	var r Receiver
	assert.Equal(t, Instance, r)
	assert.Equal(t, "instance", r.String())
	assert.Equal(t, "self", r.param())
	assert.Equal(t, "", r.decorator())
}

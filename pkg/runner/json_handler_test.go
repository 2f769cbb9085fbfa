package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/tradein/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHandler_Input(t *testing.T) {
	h := NewJSONHandler(strings.NewReader("\"xbox\"\n  2 \nc"), io.Discard)
	ctx := context.Background()

	got, err := h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "xbox", got)

	got, err = h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	got, err = h.Input(ctx)
	require.NoError(t, err, "a final line without newline is still read")
	assert.Equal(t, "c", got)

	_, err = h.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONHandler_Output(t *testing.T) {
	var out bytes.Buffer
	h := NewJSONHandler(strings.NewReader(""), &out)

	require.NoError(t, h.Output(context.Background(), Screen{
		View: domain.View{SessionID: "s1", Phase: domain.PhaseSelectConsole, Platform: domain.PlatformXbox},
	}))
	require.NoError(t, h.SystemOutput(context.Background(), "hello"))

	dec := json.NewDecoder(&out)
	var screen map[string]any
	require.NoError(t, dec.Decode(&screen))
	view := screen["view"].(map[string]any)
	assert.Equal(t, "s1", view["session_id"])
	assert.Equal(t, "xbox", view["platform"])

	var sys map[string]string
	require.NoError(t, dec.Decode(&sys))
	assert.Equal(t, "hello", sys["system"])
}

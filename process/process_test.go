package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPipeRejectsBadCommands(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{name: "empty", command: ""},
		{name: "blank", command: "   "},
		{name: "unbalanced quote", command: "gnuplot 'persist"},
		{name: "nonexistent binary", command: "/nonexistent/gnuplot-binary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipe, err := StartPipe(tt.command)
			assert.Error(t, err)
			assert.Nil(t, pipe)
		})
	}
}

func TestStartPipeEmptyCommand(t *testing.T) {
	_, err := StartPipe("")
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestStartPipeSingleWordCommand(t *testing.T) {
	// cat exits when its stdin closes, so Close leaves nothing behind.
	pipe, err := StartPipe("cat")
	require.NoError(t, err)
	require.NoError(t, pipe.Close())
}

func TestStartPipeWritesToStdin(t *testing.T) {
	// The quoted argument must reach the process as one word; sh -c expects
	// exactly one script operand.
	pipe, err := StartPipe(`sh -c 'cat > /dev/null'`)
	require.NoError(t, err)

	n, err := pipe.Write([]byte("plot sin(x)\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	require.NoError(t, pipe.Close())
}

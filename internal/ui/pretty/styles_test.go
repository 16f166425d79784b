package pretty

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	t.Run("color enabled", func(t *testing.T) {
		t.Parallel()

		styles := NewStyles(true)
		require.NotNil(t, styles)
		assert.True(t, styles.Bold.GetBold())
	})

	t.Run("color disabled", func(t *testing.T) {
		t.Parallel()

		styles := NewStyles(false)
		require.NotNil(t, styles)

		// Plain styles must not alter the text.
		assert.Equal(t, "hello", styles.Error.Render("hello"))
		assert.Equal(t, "hello", styles.SpanMark.Render("hello"))
		assert.Equal(t, "hello", styles.DiffAdd.Render("hello"))
	})
}

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{name: "always", mode: "always", want: true},
		{name: "never", mode: "never", want: false},
		{name: "auto with non-tty buffer", mode: "auto", want: false},
		{name: "empty mode with non-tty buffer", mode: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsColorEnabled(tt.mode, &bytes.Buffer{})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, IsColorEnabled("auto", os.Stdout))
	assert.True(t, IsColorEnabled("always", os.Stdout))
}

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slashfmt/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	c := config.NewConfig()

	assert.Equal(t, config.DefaultWidth, c.Width)
	assert.Equal(t, config.EOLAuto, c.EOL)
	assert.True(t, c.Spans.MarkBold)
	assert.True(t, c.Spans.MarkSeparator)
	assert.True(t, c.Spans.PlainCommentCode)
	assert.Equal(t, []string{".swift"}, c.Extensions)
	assert.True(t, c.Backups.Enabled)
	assert.Equal(t, "sidecar", c.Backups.Mode)
	assert.Equal(t, config.FormatText, c.Format)
	assert.False(t, c.Fix)
	assert.False(t, c.DryRun)
}

func TestEOLModeMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\n", config.EOLLF.Marker())
	assert.Equal(t, "\r\n", config.EOLCRLF.Marker())
	assert.Equal(t, "", config.EOLAuto.Marker())
	assert.Equal(t, "", config.EOLMode("").Marker())
}

func TestOutputFormatIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FormatText.IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.True(t, config.FormatDiff.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
	assert.False(t, config.OutputFormat("").IsValid())
}

func TestEOLModeIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.EOLAuto.IsValid())
	assert.True(t, config.EOLLF.IsValid())
	assert.True(t, config.EOLCRLF.IsValid())
	assert.True(t, config.EOLMode("").IsValid())
	assert.False(t, config.EOLMode("cr").IsValid())
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal yaml parses", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, 100, parsed.Width)
	})

	t.Run("full yaml parses with defaults", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
		require.NoError(t, err)

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, 100, parsed.Width)
		assert.Equal(t, config.EOLAuto, parsed.EOL)
		assert.True(t, parsed.Spans.MarkBold)
		assert.Equal(t, []string{".swift"}, parsed.Extensions)
		assert.Equal(t, "sidecar", parsed.Backups.Mode)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
		require.NoError(t, err)
		assert.Contains(t, string(data), "{")
	})

	t.Run("unsupported format errors", func(t *testing.T) {
		t.Parallel()

		_, err := config.GenerateTemplate(config.TemplateOptions{Format: "toml"})
		assert.Error(t, err)
	})
}

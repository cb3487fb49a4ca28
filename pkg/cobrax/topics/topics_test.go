package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"dry-run.txt":       {Data: []byte("Information about dry-run mode")},
		"architecture.md":   {Data: []byte("# Architecture\n\nSystem architecture details")},
		"config.txxt":       {Data: []byte("Configuration Guide")},
		"ignore.json":       {Data: []byte("This should be ignored")},
		"option-output.txt": {Data: []byte("Selects the output encoding")},
		"nested/formats.md": {Data: []byte("# Formats")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"architecture", "dry-run", "formats", "option-output"}, tm.ListTopics())

		topic, ok := tm.GetTopic("formats")
		require.True(t, ok)
		assert.Equal(t, "nested/formats.md", topic.FilePath)
		assert.Equal(t, "# Formats", topic.Content)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})

	t.Run("nil filesystem", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		name   string
		query  string
		want   string
		exists bool
	}{
		{"exact", "dry-run", "dry-run", true},
		{"flag style", "--dry-run", "dry-run", true},
		{"single dash", "-dry-run", "dry-run", true},
		{"option prefix", "--output", "option-output", true},
		{"missing", "nope", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.query)
			assert.Equal(t, tt.exists, ok)
			if tt.exists {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestWriteIndex(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	var buf bytes.Buffer
	tm.WriteIndex(&buf, "app")
	out := buf.String()

	assert.Contains(t, out, "General topics:")
	assert.Contains(t, out, "  architecture\n")
	assert.Contains(t, out, "Option topics:")
	assert.Contains(t, out, "  --output\n")
	assert.Contains(t, out, "Use 'app help <topic>'")

	buf.Reset()
	New(fstest.MapFS{}).WriteIndex(&buf, "app")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Short: "test app"}
	root.AddCommand(&cobra.Command{
		Use:   "render",
		Short: "Render things",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	_, err := Initialize(root, testFS())
	require.NoError(t, err)
	return root, &out
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"topic", []string{"help", "dry-run"}, "Information about dry-run mode"},
		{"flag topic", []string{"help", "--output"}, "Selects the output encoding"},
		{"topic list", []string{"help", "topics"}, "Available help topics:"},
		{"command help", []string{"help", "render"}, "Render things"},
		{"root help", []string{"help"}, "test app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestRenderers(t *testing.T) {
	plain := &PlainRenderer{}
	assert.Equal(t, "# Title", plain.Render("# Title", ".md"))

	glam := NewPlainGlamourRenderer()
	assert.Equal(t, "plain text", glam.Render("plain text", ".txt"))

	rendered := glam.Render("# Title\n\nBody text", ".md")
	assert.Contains(t, rendered, "Title")
	assert.Contains(t, rendered, "Body text")
}

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/seed"
	"github.com/tendant/simple-blog/pkg/simpleblog/simpleblogtest"
)

func writeSeed(t *testing.T, s simpleblog.Snapshot) string {
	t.Helper()
	data, err := seed.Encode(s, seed.FormatJSON)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "blog.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return "file://" + path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateCommand(t *testing.T) {
	url := writeSeed(t, simpleblogtest.SiteData())

	out, err := execute(t, "--seed", url, "validate")
	require.NoError(t, err)
	assert.Equal(t, "seed valid: 2 authors, 4 posts, 5 comments\n", out)

	out, err = execute(t, "--seed", url, "-o", "json", "validate")
	require.NoError(t, err)
	var summary SeedSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, SeedSummary{Valid: true, Authors: 2, Posts: 4, Comments: 5}, summary)
}

func TestValidateCommandRejectsBrokenSeed(t *testing.T) {
	broken := simpleblogtest.SiteData()
	broken.Authors = broken.Authors[:1] // drop leeor, whose posts and comments remain

	_, err := execute(t, "--seed", writeSeed(t, broken), "validate")
	assert.ErrorIs(t, err, seed.ErrInvalidSeed)
	assert.ErrorIs(t, err, simpleblog.ErrUnknownAuthor)
}

func TestSeedFromEnvironment(t *testing.T) {
	t.Setenv("SEED_URL", writeSeed(t, simpleblogtest.SiteData()))

	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "2 authors")
}

func TestDumpCommand(t *testing.T) {
	url := writeSeed(t, simpleblogtest.SiteData())

	out, err := execute(t, "--seed", url, "dump", "--format", "yaml")
	require.NoError(t, err)

	got, err := seed.Decode([]byte(out), seed.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, simpleblogtest.SiteData(), got)

	_, err = execute(t, "--seed", url, "dump", "--format", "toml")
	assert.ErrorIs(t, err, seed.ErrUnsupportedSource)
}

func TestCascadeCommand(t *testing.T) {
	url := writeSeed(t, simpleblogtest.SiteData())

	out, err := execute(t, "--seed", url, "cascade", "--author", "frank")
	require.NoError(t, err)
	assert.Equal(t, "deleting frank removes 3 posts and 1 comments\n", out)

	out, err = execute(t, "--seed", url, "-o", "json", "cascade", "--author", "leeor")
	require.NoError(t, err)
	assert.JSONEq(t, `{"authorId":"leeor","postsRemoved":1,"commentsRemoved":2}`, out)

	_, err = execute(t, "--seed", url, "cascade", "--author", "ghost")
	assert.ErrorIs(t, err, simpleblog.ErrNotFound)

	_, err = execute(t, "--seed", url, "cascade")
	assert.Error(t, err)
}

func TestInvalidOutput(t *testing.T) {
	_, err := execute(t, "-o", "xml", "validate")
	assert.ErrorContains(t, err, "invalid output")
}

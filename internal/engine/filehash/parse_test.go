package filehash_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/engine/filehash"
)

const (
	blobA = "3451bccdc831cb43d7a70ed8e628dcf9c7f7f1a5"
	blobB = "a3d2ba6f1e9a8d8e9b0b7e3c8d9f1e2a3b4c5d6e"
	blobC = "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"
)

func TestUnquoteFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "unquoted name is returned as is",
			input:    `some/path/to/a/file.txt`,
			expected: `some/path/to/a/file.txt`,
		},
		{
			name:     "quoted name without escapes",
			input:    `"some/path with space.txt"`,
			expected: `some/path with space.txt`,
		},
		{
			name:     "octal utf-8 bytes",
			input:    `"some/path/to/a/file\347\275\221name"`,
			expected: "some/path/to/a/file网name",
		},
		{
			name:     "escaped backslash before digits is not an octal escape",
			input:    `"some/path/to/a/file\\347\\\347\275\221name"`,
			expected: `some/path/to/a/file\347\` + "网name",
		},
		{
			name:     "escaped backslash followed by two characters",
			input:    `"some/path/to/a/file\\\347\275\221\347\275\221name"`,
			expected: `some/path/to/a/file\` + "网网name",
		},
		{
			name:     "escaped quote and tab",
			input:    `"say \"hi\"\tnow"`,
			expected: "say \"hi\"\tnow",
		},
		{
			name:     "only leading quote is not quoted",
			input:    `"half`,
			expected: `"half`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filehash.UnquoteFilename(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("invalid escapes", func(t *testing.T) {
		for _, input := range []string{`"bad\qescape"`, `"trailing\"`, `"\777"`} {
			_, err := filehash.UnquoteFilename(input)
			require.Error(t, err, input)
			assert.Contains(t, err.Error(), domain.ErrInvalidQuotedFilename.Error())
		}
	})
}

func TestParseTree(t *testing.T) {
	t.Run("parses blobs and submodules", func(t *testing.T) {
		output := "100644 blob " + blobA + "\tpackages/a/index.js\n" +
			"100755 blob " + blobB + "\tscripts/run.sh\n" +
			"160000 commit " + blobC + "\tvendor/sub\n" +
			"100644 blob " + blobC + "\t\"with\\ttab.txt\"\n"

		hashes, err := filehash.ParseTree(output)
		require.NoError(t, err)
		assert.Equal(t, domain.RepoHashes{
			"packages/a/index.js": blobA,
			"scripts/run.sh":      blobB,
			"vendor/sub":          blobC,
			"with\ttab.txt":       blobC,
		}, hashes)
	})

	t.Run("path with spaces", func(t *testing.T) {
		hashes, err := filehash.ParseTree("100644 blob " + blobA + "\ta dir/my file.txt")
		require.NoError(t, err)
		assert.Equal(t, blobA, hashes["a dir/my file.txt"])
	})

	t.Run("sha256 object format", func(t *testing.T) {
		id := strings.Repeat("ab", 32)
		hashes, err := filehash.ParseTree("100644 blob " + id + "\tfile.txt\n")
		require.NoError(t, err)
		assert.Equal(t, id, hashes["file.txt"])
	})

	t.Run("mixed object id lengths", func(t *testing.T) {
		output := "100644 blob " + blobA + "\ta.txt\n" +
			"100644 blob " + strings.Repeat("ab", 32) + "\tb.txt\n"
		_, err := filehash.ParseTree(output)
		require.ErrorContains(t, err, domain.ErrTreeLineObjectID.Error())
	})

	t.Run("empty output", func(t *testing.T) {
		hashes, err := filehash.ParseTree("")
		require.NoError(t, err)
		assert.Empty(t, hashes)
	})

	t.Run("malformed lines", func(t *testing.T) {
		tests := []struct {
			name    string
			line    string
			wantErr error
		}{
			{"free text", "some super malformed input", domain.ErrTreeLineMode},
			{"short mode", "1006 blob " + blobA + "\tfile", domain.ErrTreeLineMode},
			{"unknown kind", "040000 tree " + blobA + "\tdir", domain.ErrTreeLineKind},
			{"short object id", "100644 blob abc123\tfile", domain.ErrTreeLineObjectID},
			{"object id between lengths", "100644 blob " + strings.Repeat("a", 50) + "\tfile", domain.ErrTreeLineObjectID},
			{"upper case object id", "100644 blob 3451BCCDC831CB43D7A70ED8E628DCF9C7F7F1A5\tfile", domain.ErrTreeLineObjectID},
			{"missing path", "100644 blob " + blobA, domain.ErrTreeLinePath},
			{"blank path", "100644 blob " + blobA + "\t  ", domain.ErrTreeLinePath},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				output := "100644 blob " + blobB + "\tok.txt\n" + tt.line
				_, err := filehash.ParseTree(output)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			})
		}
	})
}

func TestParseStatus(t *testing.T) {
	output := " M packages/a/index.js\n" +
		"?? packages/a/new file.js\n" +
		" D packages/b/old.js\n" +
		"D  staged-delete.js\n" +
		"AD added-then-deleted.js\n" +
		"R  before.js -> after.js\n" +
		"?? \"packages/a/\\347\\275\\221.js\"\n"

	entries, err := filehash.ParseStatus(output)
	require.NoError(t, err)
	require.Len(t, entries, 7)

	assert.Equal(t, filehash.StatusEntry{ChangeType: "M", Path: "packages/a/index.js"}, entries[0])
	assert.Equal(t, filehash.StatusEntry{ChangeType: "??", Path: "packages/a/new file.js"}, entries[1])
	assert.Equal(t, filehash.StatusEntry{ChangeType: "D", Path: "packages/b/old.js"}, entries[2])
	assert.Equal(t, filehash.StatusEntry{ChangeType: "D", Path: "staged-delete.js"}, entries[3])
	assert.Equal(t, filehash.StatusEntry{ChangeType: "AD", Path: "added-then-deleted.js"}, entries[4])
	assert.Equal(t, filehash.StatusEntry{ChangeType: "R", Path: "after.js"}, entries[5])
	assert.Equal(t, "packages/a/网.js", entries[6].Path)

	deleted := []bool{false, false, true, true, true, false, false}
	for i, entry := range entries {
		assert.Equal(t, deleted[i], entry.Deleted(), entry.Path)
	}

	t.Run("empty output", func(t *testing.T) {
		entries, err := filehash.ParseStatus("\n")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("line without file name", func(t *testing.T) {
		_, err := filehash.ParseStatus("M\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrStatusLineMalformed.Error())
	})
}

func TestParseHashObjects(t *testing.T) {
	hashes, err := filehash.ParseHashObjects(blobA+"\n"+blobB+"\n", []string{"a.js", "b.js"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a.js": blobA, "b.js": blobB}, hashes)

	_, err = filehash.ParseHashObjects(blobA+"\n", []string{"a.js", "b.js"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrHashCountMismatch.Error())
}

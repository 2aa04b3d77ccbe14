package listing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entryLine builds a file entry with the fixed column layout of a
// real listing: 20 timestamp columns, 18 right-aligned size columns,
// one separator, then the filename.
func entryLine(timestamp string, size int64, name string) string {
	return fmt.Sprintf("%s%18s %s", timestamp, humanize.Comma(size), name)
}

func TestParseLineNoise(t *testing.T) {
	lines := []string{
		"",
		"Volume in drive D is Backup2",
		"Volume Serial Number is 1C3A-2F6D",
		"12/08/2016  02:33 PM    <DIR>          Documents",
		"2 File(s)        241,568 bytes",
		"Total Files Listed:",
		"3 Dir(s)  312,031,975,424 bytes free",
	}
	for _, text := range lines {
		line, err := ParseLine(text)
		require.NoError(t, err, "line %q", text)
		assert.Equal(t, KindNoise, line.Kind, "line %q", text)
	}
}

func TestParseLineFolderHeader(t *testing.T) {
	line, err := ParseLine(`Directory of d:\Photos\2019`)
	require.NoError(t, err)
	assert.Equal(t, KindFolder, line.Kind)
	assert.Equal(t, `d:\Photos\2019`, line.Folder)
}

func TestParseLineFileEntry(t *testing.T) {
	line, err := ParseLine("12/08/2016  02:33 PM           241,561 backup_verifier.py")
	require.NoError(t, err)
	assert.Equal(t, KindFile, line.Kind)
	assert.Equal(t, "backup_verifier.py", line.Name)
	assert.Equal(t, int64(241561), line.Size)
	assert.Equal(t, time.Date(2016, 12, 8, 14, 33, 0, 0, time.UTC), line.Timestamp)
}

func TestParseLineFileEntryMorning(t *testing.T) {
	line, err := ParseLine(entryLine("11/02/2015  09:01 AM", 7, "notes with spaces.txt"))
	require.NoError(t, err)
	assert.Equal(t, KindFile, line.Kind)
	assert.Equal(t, "notes with spaces.txt", line.Name)
	assert.Equal(t, int64(7), line.Size)
	assert.Equal(t, time.Date(2015, 11, 2, 9, 1, 0, 0, time.UTC), line.Timestamp)
}

func TestParseLineCommaFilename(t *testing.T) {
	line, err := ParseLine(entryLine("01/15/2020  11:59 PM", 1234567, "report, final.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, KindFile, line.Kind)
	assert.Equal(t, "report, final.xlsx", line.Name)
	assert.Equal(t, int64(1234567), line.Size)
}

func TestParseLineMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"too short", "12/08/2016  02:33 PM 241"},
		{"bad timestamp", "13/45/2016  02:33 PM           241,561 backup.py"},
		{"bad size", "12/08/2016  02:33 PM        not-a-size backup.py"},
		{"free text", "this line wandered in from some other file format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.text)
			require.Error(t, err)

			var ferr *FormatError
			require.True(t, errors.As(err, &ferr))
			assert.Equal(t, tt.text, ferr.Line)
		})
	}
}

func TestFormatErrorMessage(t *testing.T) {
	err := &FormatError{Line: "x", Reason: "bad size field", Err: errors.New("boom")}
	assert.Contains(t, err.Error(), "bad size field")
	assert.Contains(t, err.Error(), `"x"`)
	assert.EqualError(t, errors.Unwrap(err), "boom")
}

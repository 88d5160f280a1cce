package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/handiism/bikeshare/internal/config"
	"github.com/handiism/bikeshare/internal/model"
	"github.com/stretchr/testify/require"
)

const nycCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
5688089,2017-06-11 14:55:05,2017-06-11 15:08:21,795,Suffolk St & Stanton St,W Broadway & Spring St,Subscriber,Male,1998.0
4096714,2017-05-11 15:30:11,2017-05-11 15:41:43,692,Lexington Ave & E 63 St,1 Ave & E 78 St,Subscriber,Male,1981.0
2173887,2017-03-29 13:26:26,2017-03-29 13:48:31,1325,1 Pl & Clinton St,Henry St & Degraw St,Subscriber,Male,1987.0
3945638,2017-05-08 19:47:18,2017-05-08 19:59:01,703,Barrow St & Hudson St,W 20 St & 8 Ave,Subscriber,Female,1986.0
6208972,2017-06-21 07:49:16,2017-06-21 07:54:46,329,1 Ave & E 44 St,E 53 St & 3 Ave,Customer,,
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
`

func TestRead(t *testing.T) {
	table, err := Read(strings.NewReader(nycCSV), "2006-01-02 15:04:05")

	require.NoError(t, err)
	require.Equal(t, 5, table.Len())
	require.Len(t, table.Records, 5)
	require.True(t, table.HasGender)
	require.True(t, table.HasBirthYear)

	first := table.Trips[0]
	require.Equal(t, "Suffolk St & Stanton St", first.StartStation)
	require.Equal(t, "W Broadway & Spring St", first.EndStation)
	require.Equal(t, 795.0, first.Duration)
	require.Equal(t, 1998, first.BirthYear)
	require.Equal(t, 6, first.Month)
	require.Equal(t, 6, first.Day) // 2017-06-11 was a Sunday
	require.Equal(t, 14, first.Hour)

	last := table.Trips[4]
	require.Equal(t, "Customer", last.UserType)
	require.Empty(t, last.Gender)
	require.Zero(t, last.BirthYear)
	require.Equal(t, "6208972", table.Records[4][0])
}

func TestRead_optionalColumnsAbsent(t *testing.T) {
	table, err := Read(strings.NewReader(washingtonCSV), "2006-01-02 15:04:05")

	require.NoError(t, err)
	require.False(t, table.HasGender)
	require.False(t, table.HasBirthYear)
	require.InDelta(t, 489.066, table.Trips[0].Duration, 1e-9)
}

func TestRead_errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "empty file"},
		{"missing column", ",Start Time,End Time\n0,2017-01-01 00:00:00,2017-01-01 00:01:00\n", "missing column"},
		{
			"bad timestamp",
			washingtonCSV + "1,yesterday,2017-03-11 10:46:00,1,A,B,Subscriber\n",
			"line 4: Start Time",
		},
		{
			"bad duration",
			washingtonCSV + "1,2017-03-11 10:40:00,2017-03-11 10:46:00,long,A,B,Subscriber\n",
			"line 4: Trip Duration",
		},
		{
			"short row",
			washingtonCSV + "1,2017-03-11 10:40:00\n",
			"wrong number of fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), "2006-01-02 15:04:05")
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRead_missingColumnSentinel(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,2\n"), "2006-01-02 15:04:05")

	require.ErrorIs(t, err, ErrMissingColumn)
}

func newSettings(t *testing.T, files map[string]string) *config.Settings {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	s := config.DefaultSettings()
	s.DataDir = dir
	s.DownloadRetryCooldown = 0
	return s
}

func TestLoader_Load_filters(t *testing.T) {
	settings := newSettings(t, map[string]string{"new_york_city.csv": nycCSV})
	loader := NewLoader(settings, nil)

	tests := []struct {
		month, day string
		wantRows   int
	}{
		{"all", "all", 5},
		{"may", "all", 2},
		{"june", "wednesday", 1},
		{"all", "thursday", 1},
		{"january", "all", 0},
	}

	for _, tt := range tests {
		t.Run(tt.month+"/"+tt.day, func(t *testing.T) {
			f, err := model.NewFilter("new york city", tt.month, tt.day)
			require.NoError(t, err)

			table, err := loader.Load(context.Background(), f)

			require.NoError(t, err)
			require.Equal(t, tt.wantRows, table.Len())
			for _, trip := range table.Trips {
				if !f.Month.IsAll() {
					require.Equal(t, f.Month.Number(), trip.Month)
				}
				if !f.Day.IsAll() {
					require.Equal(t, f.Day.Number(), trip.Day)
				}
			}
		})
	}
}

func TestLoader_Load_missingFile(t *testing.T) {
	settings := newSettings(t, nil)
	f, _ := model.NewFilter("chicago", "all", "all")

	_, err := NewLoader(settings, nil).Load(context.Background(), f)

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_downloadsFromMirror(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "try again", http.StatusServiceUnavailable)
			return
		}
		require.Equal(t, "/data/washington.csv", r.URL.Path)
		_, _ = w.Write([]byte(washingtonCSV))
	}))
	defer srv.Close()

	settings := newSettings(t, nil)
	settings.MirrorURL = srv.URL + "/data/"
	f, _ := model.NewFilter("washington", "all", "all")

	table, err := NewLoader(settings, nil).Load(context.Background(), f)

	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	require.EqualValues(t, 2, hits.Load())
	require.FileExists(t, filepath.Join(settings.DataDir, "washington.csv"))
}

func TestLoader_Load_mirrorGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	settings := newSettings(t, nil)
	settings.MirrorURL = srv.URL
	settings.DownloadMaxRetries = 2
	f, _ := model.NewFilter("washington", "all", "all")

	_, err := NewLoader(settings, nil).Load(context.Background(), f)

	require.ErrorContains(t, err, "HTTP 404")
}

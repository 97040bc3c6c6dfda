package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/store"
)

type fakeSource struct {
	results []store.ResultRecord
	counts  []store.ProfileCount
	err     error
	limit   int
}

func (f *fakeSource) QueryResults(_ context.Context, opts store.QueryOpts) ([]store.ResultRecord, error) {
	f.limit = opts.Limit
	return f.results, f.err
}

func (f *fakeSource) CountByProfile(context.Context) ([]store.ProfileCount, error) {
	return f.counts, f.err
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestHistory_Loading(t *testing.T) {
	s := New(&fakeSource{}, catalog.MustBuiltin())
	assert.Contains(t, s.View(100, 30), "Carregando")
}

func TestHistory_Empty(t *testing.T) {
	s := New(&fakeSource{}, catalog.MustBuiltin())
	load(t, s)
	assert.Contains(t, s.View(100, 30), "Nenhuma análise")
}

func TestHistory_Error(t *testing.T) {
	s := New(&fakeSource{err: errors.New("disk full")}, catalog.MustBuiltin())
	load(t, s)
	assert.Contains(t, s.View(100, 30), "disk full")
}

func TestHistory_Rows(t *testing.T) {
	src := &fakeSource{
		results: []store.ResultRecord{
			{Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), ResultData: store.ResultData{
				Profile: "arrojado", Normalized: 82.4, Answered: 10, Total: 10, DurationSecs: 95,
			}},
			{Timestamp: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), ResultData: store.ResultData{
				Profile: "legado", Normalized: 10, Answered: 9, Total: 10,
			}},
		},
		counts: []store.ProfileCount{{Profile: "arrojado", Count: 1}, {Profile: "legado", Count: 1}},
	}
	s := New(src, catalog.MustBuiltin())
	load(t, s)

	assert.Equal(t, Limit, src.limit)

	rows := s.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Portfólio Arrojado", rows[0][1])
	assert.Equal(t, "82/100", rows[0][2])
	assert.Equal(t, "10/10", rows[0][3])
	assert.Equal(t, "1:35", rows[0][4])
	assert.Equal(t, "legado", rows[1][1])

	v := s.View(100, 30)
	assert.Contains(t, v, "Últimas 2 análises")
	assert.Contains(t, v, "Portfólio Arrojado: 1")
}

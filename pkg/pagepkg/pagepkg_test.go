package pagepkg

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID        string
	Status    string
	CreatedAt time.Time
}

func day(n int) time.Time {
	return time.Date(2024, time.January, n, 0, 0, 0, 0, time.UTC)
}

var records = []record{
	{ID: "A", Status: "active", CreatedAt: day(1)},
	{ID: "B", Status: "closed", CreatedAt: day(3)},
	{ID: "C", Status: "active", CreatedAt: day(2)},
	{ID: "D", Status: "active", CreatedAt: day(4)},
}

func createdAt(r record) time.Time { return r.CreatedAt }

func ids(page Page[record]) []string {
	out := make([]string, 0, len(page.Data))
	for _, r := range page.Data {
		out = append(out, r.ID)
	}

	return out
}

func TestPaginate(t *testing.T) {
	activeOnly := func(r record) bool { return r.Status == "active" }
	noneMatch := func(r record) bool { return r.Status == "pending" }

	testCases := []struct {
		name           string
		params         Params[record]
		wantIDs        []string
		wantPagination Pagination
	}{
		{
			name:           "NewestFirstNoFilters",
			params:         Params[record]{Limit: 10, Offset: 0},
			wantIDs:        []string{"D", "B", "C", "A"},
			wantPagination: Pagination{Total: 4, Limit: 10, Offset: 0, HasMore: false},
		},
		{
			name:           "SliceAfterSort",
			params:         Params[record]{Limit: 2, Offset: 1},
			wantIDs:        []string{"B", "C"},
			wantPagination: Pagination{Total: 4, Limit: 2, Offset: 1, HasMore: true},
		},
		{
			name:           "FilterBeforeCount",
			params:         Params[record]{Limit: 2, Offset: 0, Filters: []func(record) bool{activeOnly}},
			wantIDs:        []string{"D", "C"},
			wantPagination: Pagination{Total: 3, Limit: 2, Offset: 0, HasMore: true},
		},
		{
			name:           "FiltersAreConjunctive",
			params:         Params[record]{Limit: 10, Offset: 0, Filters: []func(record) bool{activeOnly, noneMatch}},
			wantIDs:        []string{},
			wantPagination: Pagination{Total: 0, Limit: 10, Offset: 0, HasMore: false},
		},
		{
			name:           "OffsetBeyondEnd",
			params:         Params[record]{Limit: 10, Offset: 40},
			wantIDs:        []string{},
			wantPagination: Pagination{Total: 4, Limit: 10, Offset: 40, HasMore: false},
		},
		{
			name:           "LastFullWindow",
			params:         Params[record]{Limit: 2, Offset: 2},
			wantIDs:        []string{"C", "A"},
			wantPagination: Pagination{Total: 4, Limit: 2, Offset: 2, HasMore: false},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(records, createdAt, tc.params)

			if diff := cmp.Diff(tc.wantIDs, ids(got)); diff != "" {
				t.Errorf("data mismatch (-want +got):\n%s", diff)
			}

			require.Equal(t, tc.wantPagination, got.Pagination)
			require.NotNil(t, got.Data)
		})
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	got := Paginate(nil, createdAt, Params[record]{Limit: 10, Offset: 0})

	require.NotNil(t, got.Data)
	require.Empty(t, got.Data)
	require.Equal(t, Pagination{Total: 0, Limit: 10, Offset: 0, HasMore: false}, got.Pagination)
}

func TestPaginateDoesNotMutateInput(t *testing.T) {
	input := make([]record, len(records))
	copy(input, records)

	Paginate(input, createdAt, Params[record]{Limit: 2, Offset: 0})

	if diff := cmp.Diff(records, input); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

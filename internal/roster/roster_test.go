package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRecipient_Validation(t *testing.T) {
	_, err := NewRecipient("", "b", "c", "photo.png")
	require.ErrorIs(t, err, ErrField1Required)

	_, err = NewRecipient("Ada", "", "", "")
	require.ErrorIs(t, err, ErrImageRequired)

	// field1 is checked first
	_, err = NewRecipient("", "", "", "")
	require.ErrorIs(t, err, ErrField1Required)

	r, err := NewRecipient("Ada", "", "", "photo.png")
	require.NoError(t, err)
	require.Len(t, r.ID, 36)
	require.Equal(t, [3]string{"Ada", "", ""}, r.Fields())
}

func TestRoster_AddGrowsByOneWithUniqueIDs(t *testing.T) {
	ro := New()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		r, err := NewRecipient("Person", "", "", "p.png")
		require.NoError(t, err)
		before := ro.Len()
		require.NoError(t, ro.Add(r))
		require.Equal(t, before+1, ro.Len())
		require.False(t, seen[r.ID], "duplicate identifier %s", r.ID)
		seen[r.ID] = true
	}
}

func TestRoster_AddRejectsDuplicateID(t *testing.T) {
	ro := New()
	r, err := NewRecipient("Ada", "", "", "p.png")
	require.NoError(t, err)
	require.NoError(t, ro.Add(r))
	require.ErrorIs(t, ro.Add(r), ErrDuplicateID)
	require.Equal(t, 1, ro.Len())
}

func TestRoster_RemoveKeepsOrder(t *testing.T) {
	ro := New()
	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		r, err := NewRecipient(name, "", "", "p.png")
		require.NoError(t, err)
		require.NoError(t, ro.Add(r))
		ids = append(ids, r.ID)
	}

	require.NoError(t, ro.Remove(ids[1]))
	list := ro.List()
	require.Len(t, list, 2)
	require.Equal(t, "a", list[0].Field1)
	require.Equal(t, "c", list[1].Field1)

	require.ErrorIs(t, ro.Remove(ids[1]), ErrNotFound)
	_, ok := ro.Get(ids[1])
	require.False(t, ok)
}

func TestRoster_ListIsACopy(t *testing.T) {
	ro := New()
	r, err := NewRecipient("Ada", "", "", "p.png")
	require.NoError(t, err)
	require.NoError(t, ro.Add(r))

	list := ro.List()
	list[0].Field1 = "changed"

	got, ok := ro.Get(r.ID)
	require.True(t, ok)
	require.Equal(t, "Ada", got.Field1)
}

func TestFilter(t *testing.T) {
	recs := []Recipient{
		{ID: "1", Field1: "Ada Lovelace", Field2: "Engineering"},
		{ID: "2", Field1: "Alan Turing", Field3: "Research"},
	}
	require.Len(t, Filter(recs, ""), 2)
	require.Equal(t, "2", Filter(recs, "turing")[0].ID)
	require.Equal(t, "1", Filter(recs, "ada ENGINEERING")[0].ID)
	require.Empty(t, Filter(recs, "ada research"))
}

package conference_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BartMassey/time-scheduler/conference"
)

const validInstanceJSON = `[
  {
    "id": "instance_000",
    "nplaces": 2,
    "ntimes": 3,
    "activities": [
      {"priority": 17, "topic": 2},
      {"priority": 3, "topic": 1}
    ]
  },
  {
    "id": "instance_001",
    "nplaces": 1,
    "ntimes": 1,
    "activities": []
  }
]`

func TestParseInstances_Valid(t *testing.T) {
	got, err := conference.ParseInstances([]byte(validInstanceJSON))
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "instance_000", got[0].ID)
	require.Equal(t, 2, got[0].Places)
	require.Equal(t, 3, got[0].Times)
	require.Equal(t, []conference.Activity{{Priority: 17, Topic: 2}, {Priority: 3, Topic: 1}}, got[0].Activities)

	require.Equal(t, "instance_001", got[1].ID)
	require.Empty(t, got[1].Activities)
}

func TestParseInstances_Malformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"NotJSON", `{]`},
		{"TopLevelObject", `{"id": "x"}`},
		{"RecordNotObject", `[42]`},
		{"MissingID", `[{"nplaces": 1, "ntimes": 1, "activities": []}]`},
		{"NumericID", `[{"id": 7, "nplaces": 1, "ntimes": 1, "activities": []}]`},
		{"NegativePlaces", `[{"id": "x", "nplaces": -1, "ntimes": 1, "activities": []}]`},
		{"MissingTimes", `[{"id": "x", "nplaces": 1, "activities": []}]`},
		{"ActivitiesNotArray", `[{"id": "x", "nplaces": 1, "ntimes": 1, "activities": 3}]`},
		{"NegativePriority", `[{"id": "x", "nplaces": 1, "ntimes": 1, "activities": [{"priority": -1, "topic": 1}]}]`},
		{"ZeroTopic", `[{"id": "x", "nplaces": 1, "ntimes": 1, "activities": [{"priority": 1, "topic": 0}]}]`},
		{"FractionalPlaces", `[{"id": "x", "nplaces": 1.5, "ntimes": 1, "activities": []}]`},
		{"FractionalPriority", `[{"id": "x", "nplaces": 1, "ntimes": 1, "activities": [{"priority": 1.5, "topic": 1}]}]`},
		{"FractionalTopic", `[{"id": "x", "nplaces": 1, "ntimes": 1, "activities": [{"priority": 1, "topic": 2.25}]}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := conference.ParseInstances([]byte(tc.data))
			require.ErrorIs(t, err, conference.ErrBadInstanceFile)
		})
	}
}

// TestWriteLoadInstances: what WriteInstances produces, LoadInstances reads
// back unchanged.
func TestWriteLoadInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instances.json")
	want := []conference.Instance{
		{
			ID:     "round",
			Places: 2,
			Times:  2,
			Activities: []conference.Activity{
				{Priority: 5, Topic: 3},
				{Priority: 1, Topic: 1},
			},
		},
	}

	require.NoError(t, conference.WriteInstances(path, want))

	got, err := conference.LoadInstances(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadInstances_MissingFile(t *testing.T) {
	_, err := conference.LoadInstances(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestNewSchedule verifies the fill contract on an oversubscribed instance.
func TestNewSchedule(t *testing.T) {
	inst := conference.Instance{
		ID:     "over",
		Places: 1,
		Times:  2,
		Activities: []conference.Activity{
			{Priority: 9, Topic: 1},
			{Priority: 8, Topic: 2},
			{Priority: 7, Topic: 3},
		},
	}
	s := inst.NewSchedule()

	require.Equal(t, 3, s.Len())
	require.Equal(t, 1, s.PoolSize())
	require.Equal(t, 0, s.EmptySlotCount())
	require.Equal(t, []conference.Activity{{Priority: 7, Topic: 3}}, s.Unscheduled())
}

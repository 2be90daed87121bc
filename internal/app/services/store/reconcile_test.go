package store

import (
	"hms-console/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppended(t *testing.T) {
	rows := []models.Patient{{ID: "p1"}}

	next := Appended(rows, models.Patient{ID: "p2"})

	assert.Equal(t, []models.Patient{{ID: "p1"}, {ID: "p2"}}, next)
	assert.Len(t, rows, 1, "the source collection is not modified")
}

func TestReplacedByKey(t *testing.T) {
	rows := []models.Staff{{ID: "d1", Name: "Old"}, {ID: "d2", Name: "Other"}}

	next := ReplacedByKey(rows, models.Staff{ID: "d1", Name: "New"})

	assert.Equal(t, "New", next[0].Name)
	assert.Equal(t, "Other", next[1].Name, "only the matching row is replaced")
	assert.Equal(t, "Old", rows[0].Name, "the source collection is not modified")

	unchanged := ReplacedByKey(rows, models.Staff{ID: "missing", Name: "X"})
	assert.Equal(t, rows, unchanged)
}

func TestRemovedByKey(t *testing.T) {
	rows := []models.Appointment{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}

	next := RemovedByKey(rows, "a2")

	assert.Equal(t, []models.Appointment{{ID: "a1"}, {ID: "a3"}}, next)
	assert.Len(t, rows, 3)
}

func TestFindByKey(t *testing.T) {
	rows := []models.Patient{{ID: "p1", Name: "Jane"}}

	found, ok := FindByKey(rows, "p1")
	assert.True(t, ok)
	assert.Equal(t, "Jane", found.Name)

	_, ok = FindByKey(rows, "p2")
	assert.False(t, ok)
}

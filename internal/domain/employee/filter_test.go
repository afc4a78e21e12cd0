package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func rosterFixture() []Employee {
	return []Employee{
		{ID: "1", EmployeeCode: "EMP-001", FullName: "Alice Wong", Email: "alice@spa.test", Department: "Massage", Role: RoleEmployee, HireDate: time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "2", EmployeeCode: "EMP-002", FullName: "Bob Chen", Email: "bob@spa.test", Department: "Reception", Role: RoleHead, HireDate: time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "3", EmployeeCode: "EMP-003", FullName: "Carla Diaz", Email: "carla@spa.test", Department: "Massage", Role: RoleHR, HireDate: time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
}

func TestFilter_EmptyReturnsAllInOrder(t *testing.T) {
	roster := rosterFixture()
	got := Filter{}.Apply(roster)
	assert.Equal(t, roster, got)
}

func TestFilter_SearchMatchesNameCodeAndEmail(t *testing.T) {
	roster := rosterFixture()

	byName := Filter{Search: "alice"}.Apply(roster)
	assert.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byCode := Filter{Search: "emp-002"}.Apply(roster)
	assert.Len(t, byCode, 1)
	assert.Equal(t, "2", byCode[0].ID)

	byEmail := Filter{Search: "carla@"}.Apply(roster)
	assert.Len(t, byEmail, 1)
	assert.Equal(t, "3", byEmail[0].ID)
}

func TestFilter_DepartmentAndRoleAreExact(t *testing.T) {
	roster := rosterFixture()

	massage := Filter{Department: "Massage"}.Apply(roster)
	assert.Len(t, massage, 2)

	heads := Filter{Role: "Head"}.Apply(roster)
	assert.Len(t, heads, 1)
	assert.Equal(t, "2", heads[0].ID)

	both := Filter{Department: "Massage", Role: "HR"}.Apply(roster)
	assert.Len(t, both, 1)
	assert.Equal(t, "3", both[0].ID)
}

func TestFilter_HireDateExactDay(t *testing.T) {
	roster := rosterFixture()
	got := Filter{HireDate: "2023-03-15"}.Apply(roster)
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilter_Idempotent(t *testing.T) {
	roster := rosterFixture()
	f := Filter{Department: "Massage", Search: "a"}
	once := f.Apply(roster)
	twice := f.Apply(once)
	assert.Equal(t, once, twice)
}

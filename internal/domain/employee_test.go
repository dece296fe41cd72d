package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/wms/internal/domain"
	"github.com/vangoframework/wms/internal/listview"
	"github.com/vangoframework/wms/internal/store"
)

func fixtures(t *testing.T) store.Fixtures {
	t.Helper()
	f, err := store.DefaultFixtures()
	require.NoError(t, err)
	return f
}

func names(employees []domain.Employee) []string {
	out := make([]string, len(employees))
	for i, e := range employees {
		out[i] = e.Name
	}
	return out
}

func TestEmployeeList_Mounted(t *testing.T) {
	list := domain.NewEmployeeList(fixtures(t).Employees, listview.DefaultPageSize)

	res := list.Result()
	assert.Equal(t, 8, res.TotalMatches)
	assert.Equal(t, 2, res.TotalPages)
	assert.Len(t, res.Records, 5)
	assert.Equal(t, "홍길동", res.Records[0].Name)

	list.NextPage()
	assert.Len(t, list.Result().Records, 3)
}

func TestEmployeeList_SearchName(t *testing.T) {
	list := domain.NewEmployeeList(fixtures(t).Employees, listview.DefaultPageSize)
	list.SetSearchText("김철수")

	res := list.Result()
	require.Len(t, res.Records, 1)
	assert.Equal(t, "emp002", res.Records[0].ID)
}

func TestEmployeeList_SearchPositionAndContact(t *testing.T) {
	list := domain.NewEmployeeList(fixtures(t).Employees, listview.DefaultPageSize)

	list.SetSearchText("팀장")
	assert.Equal(t, []string{"홍길동", "강지현"}, names(list.Result().Records))

	list.SetSearchText("010-3456")
	assert.Equal(t, []string{"이영희"}, names(list.Result().Records))

	// Department and note are not searched
	list.SetSearchText("행정")
	assert.True(t, list.Result().Empty())
}

func TestEmployeeList_StatusFilter(t *testing.T) {
	list := domain.NewEmployeeList(fixtures(t).Employees, listview.DefaultPageSize)

	resigned, err := domain.ParseEmployeeStatusFilter("퇴사")
	require.NoError(t, err)
	list.SetCategoryFilter(resigned)
	assert.Equal(t, []string{"정주원", "윤서연"}, names(list.Result().Records))

	active, err := domain.ParseEmployeeStatusFilter("재직중")
	require.NoError(t, err)
	list.SetCategoryFilter(active)
	assert.Equal(t, 6, list.Result().TotalMatches)

	_, err = domain.ParseEmployeeStatusFilter("휴직")
	assert.ErrorIs(t, err, listview.ErrUnknownValue)
}

// Searching from page 2 for a name on page 1 leaves the view on an empty
// page until the user navigates.
func TestEmployeeList_SearchFromSecondPage(t *testing.T) {
	list := domain.NewEmployeeList(fixtures(t).Employees, listview.DefaultPageSize)
	list.SetCurrentPage(2)
	list.SetSearchText("김철수")

	res := list.Result()
	assert.True(t, res.Empty())
	assert.Equal(t, 1, res.TotalMatches)
	assert.Equal(t, 2, res.CurrentPage)

	list.SetCurrentPage(1)
	assert.Equal(t, []string{"김철수"}, names(list.Result().Records))
}

func TestEmployee_Validate(t *testing.T) {
	valid := domain.Employee{
		Name:       "홍길동",
		Birthdate:  "1980-05-15",
		Contact:    "010-1234-1234",
		Position:   domain.PositionTeamLead,
		Department: domain.DepartmentFacilities,
		Status:     domain.EmployeeActive,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		edit  func(*domain.Employee)
		field string
		want  error
	}{
		{"one rune name", func(e *domain.Employee) { e.Name = "홍" }, "name", domain.ErrNameTooShort},
		{"birthdate slashes", func(e *domain.Employee) { e.Birthdate = "1980/05/15" }, "birthdate", domain.ErrBirthdateFormat},
		{"birthdate short", func(e *domain.Employee) { e.Birthdate = "80-05-15" }, "birthdate", domain.ErrBirthdateFormat},
		{"contact without dashes", func(e *domain.Employee) { e.Contact = "01012341234" }, "contact", domain.ErrContactFormat},
		{"position missing", func(e *domain.Employee) { e.Position = "" }, "position", domain.ErrPositionRequired},
		{"position unknown", func(e *domain.Employee) { e.Position = "인턴" }, "position", domain.ErrPositionRequired},
		{"department missing", func(e *domain.Employee) { e.Department = "" }, "department", domain.ErrDepartmentRequired},
		{"status unknown", func(e *domain.Employee) { e.Status = "휴직" }, "status", domain.ErrStatusRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.edit(&e)

			err := e.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var fieldErrs domain.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.want.Error(), fieldErrs.Get(tt.field))
		})
	}
}

func TestFieldErrors_Error(t *testing.T) {
	err := domain.Employee{}.Validate()
	require.Error(t, err)

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 6)
	assert.Equal(t, "", fieldErrs.Get("note"))
	assert.Contains(t, err.Error(), "birthdate: YYYY-MM-DD 형식으로 입력해주세요.; contact:")
}

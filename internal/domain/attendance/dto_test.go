package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitRequestQuantitiesCoercion(t *testing.T) {
	cases := []struct {
		name string
		body string
		want [4]float64 // hours_extra, despalillo, escogida, monado
	}{
		{
			name: "plain numbers",
			body: `{"employee_id":1,"hours_extra":2.5,"despalillo":3,"escogida":1,"monado":10}`,
			want: [4]float64{2.5, 3, 1, 10},
		},
		{
			name: "numeric strings",
			body: `{"employee_id":1,"hours_extra":"4","despalillo":"2.5"}`,
			want: [4]float64{4, 2.5, 0, 0},
		},
		{
			name: "missing fields default to zero",
			body: `{"employee_id":1}`,
			want: [4]float64{0, 0, 0, 0},
		},
		{
			name: "garbage defaults to zero",
			body: `{"employee_id":1,"hours_extra":"lots","despalillo":true,"escogida":null}`,
			want: [4]float64{0, 0, 0, 0},
		},
		{
			name: "negatives are clamped",
			body: `{"employee_id":1,"hours_extra":-3,"monado":"-1"}`,
			want: [4]float64{0, 0, 0, 0},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var req ExitRequest
			assert.NoError(t, json.Unmarshal([]byte(c.body), &req))

			he, d, e, m := req.Quantities()
			assert.Equal(t, c.want[0], he)
			assert.Equal(t, c.want[1], d)
			assert.Equal(t, c.want[2], e)
			assert.Equal(t, c.want[3], m)
		})
	}
}

func TestEntryRequestValidate(t *testing.T) {
	req := EntryRequest{}
	assert.Error(t, req.Validate())

	req.EmployeeID = 42
	assert.NoError(t, req.Validate())
}

func TestRecordStatus(t *testing.T) {
	r := Record{}
	assert.Equal(t, StatusActive, r.Status())

	exit := r.EntryTime.Add(1)
	r.ExitTime = &exit
	assert.Equal(t, StatusCompleted, r.Status())
}

package plan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gpxplan/internal/domain"
	"gpxplan/internal/plan"
)

func builtPlan(t *testing.T) domain.PlanFile {
	t.Helper()
	p, err := plan.Build(testPoints(3), defaultParams())
	require.NoError(t, err)
	return p
}

func TestValidate_BuiltPlanIsValid(t *testing.T) {
	require.NoError(t, plan.Validate(builtPlan(t)))
}

func TestValidate_Rejections(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	cases := []struct {
		name   string
		mutate func(*domain.PlanFile)
	}{
		{"wrong fileType", func(p *domain.PlanFile) { p.FileType = "Mission" }},
		{"wrong plan version", func(p *domain.PlanFile) { p.Version = 2 }},
		{"wrong mission version", func(p *domain.PlanFile) { p.Mission.Version = 1 }},
		{"wrong firmware", func(p *domain.PlanFile) { p.Mission.FirmwareType = 12 }},
		{"wrong vehicle", func(p *domain.PlanFile) { p.Mission.VehicleType = 2 }},
		{"bad home", func(p *domain.PlanFile) { p.Mission.PlannedHomePosition = []float64{1, 2} }},
		{"no items", func(p *domain.PlanFile) { p.Mission.Items = nil }},
		{"wrong item type", func(p *domain.PlanFile) { p.Mission.Items[0].Type = "ComplexItem" }},
		{"wrong command", func(p *domain.PlanFile) { p.Mission.Items[1].Command = 22 }},
		{"wrong frame", func(p *domain.PlanFile) { p.Mission.Items[1].Frame = 0 }},
		{"short params", func(p *domain.PlanFile) { p.Mission.Items[0].Params = p.Mission.Items[0].Params[:5] }},
		{"nil lat", func(p *domain.PlanFile) { p.Mission.Items[0].Params[4] = nil }},
		{"lat out of range", func(p *domain.PlanFile) { p.Mission.Items[0].Params[4] = f(95) }},
		{"lon out of range", func(p *domain.PlanFile) { p.Mission.Items[0].Params[5] = f(-181) }},
		{"jump ids not increasing", func(p *domain.PlanFile) { p.Mission.Items[2].DoJumpID = 1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := builtPlan(t)
			tc.mutate(&p)
			err := plan.Validate(p)
			require.ErrorIs(t, err, plan.ErrInvalidPlan)
		})
	}
}

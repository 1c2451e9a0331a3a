package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/riskgridgo/internal/testutil"
)

// The two-root diamond grid: routes must resolve cheapest target first and
// reuse links zeroed by earlier routes.
const diamondGrid = `
sensor "0" {}
sensor "1" {}
sensor "2" { depends_on = [0, 1] }
sensor "3" { depends_on = [0, 1] }
sensor "4" { depends_on = [2, 3] }
sensor "5" { depends_on = [2, 3] }
sensor "6" { depends_on = [4, 5] }

risk {
  from  = 0
  to    = 2
  value = 6
}
risk {
  from  = 1
  to    = 2
  value = 1
}
risk {
  from  = 0
  to    = 3
  value = 4
}
risk {
  from  = 1
  to    = 3
  value = 4
}
risk {
  from  = 2
  to    = 4
  value = 3
}
risk {
  from  = 3
  to    = 4
  value = 5
}
risk {
  from  = 2
  to    = 5
  value = 6
}
risk {
  from  = 3
  to    = 5
  value = 6
}
risk {
  from  = 4
  to    = 6
  value = 2
}
risk {
  from  = 5
  to    = 6
  value = 9
}

targets = [4, 5, 6]
`

func TestFullSweep(t *testing.T) {
	result := testutil.RunPlannerTest(t, map[string]string{"grid.hcl": diamondGrid})
	require.NoError(t, result.Err)

	assert.Equal(t,
		"route to 4: 1 -> 2 -> 4 (risk 4)\n"+
			"route to 6: 1 -> 2 -> 4 -> 6 (risk 2)\n"+
			"route to 5: 1 -> 2 -> 5 (risk 6)\n"+
			"planned 3 of 3 targets\n",
		result.PlanOutput)
}

func TestGridSplitAcrossFiles(t *testing.T) {
	result := testutil.RunPlannerTest(t, map[string]string{
		"sensors.hcl": `
sensor "0" {}
sensor "1" { depends_on = [0] }
`,
		"risks.hcl": `
risk {
  from  = 0
  to    = 1
  value = 2
}
targets = [1]
`,
	})
	require.NoError(t, result.Err)

	assert.Equal(t,
		"route to 1: 0 -> 1 (risk 2)\n"+
			"planned 1 of 1 targets\n",
		result.PlanOutput)
}

func TestUnreachableTargetIsSkipped(t *testing.T) {
	result := testutil.RunPlannerTest(t, map[string]string{"grid.hcl": `
sensor "0" {}
sensor "1" { depends_on = [0] }
risk {
  from  = 0
  to    = 1
  value = 3
}
targets = [1, 42]
`})
	require.NoError(t, result.Err)

	// Target 42 was never declared; it yields no route line, the rest of
	// the plan is unaffected, and the run is still a success.
	assert.Equal(t,
		"route to 1: 0 -> 1 (risk 3)\n"+
			"planned 1 of 2 targets\n",
		result.PlanOutput)
	assert.Contains(t, result.LogOutput, "unreachable")
}

func TestNoTargetsPlansNothing(t *testing.T) {
	result := testutil.RunPlannerTest(t, map[string]string{"grid.hcl": `
sensor "0" {}
sensor "1" { depends_on = [0] }
`})
	require.NoError(t, result.Err)
	assert.Empty(t, result.PlanOutput)
	assert.Contains(t, result.LogOutput, "nothing to plan")
}

func TestRepeatedRunsAreIdentical(t *testing.T) {
	first := testutil.RunPlannerTest(t, map[string]string{"grid.hcl": diamondGrid})
	second := testutil.RunPlannerTest(t, map[string]string{"grid.hcl": diamondGrid})
	require.NoError(t, first.Err)
	require.NoError(t, second.Err)
	assert.Equal(t, first.PlanOutput, second.PlanOutput)
}

package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in     string
		wantId string
		wantOk bool
	}{
		{"zap", "lucide:zap", true},
		{"lucide:bar-chart-3", "lucide:bar-chart-3", true},
		{"LuBarChart3", "lucide:bar-chart-3", true},
		{"HiOutlineChartBar", "heroicons:chart-bar", true},
		{"FaRobot", "fontawesome:robot", true},
		{"MdOutlineSupportAgent", "material:support-agent", true},
		{"fontawesome:robot", "fontawesome:robot", true},
		{"unknown-icon", "", false},
		{"XyThing", "", false},
		{"nolib:zap", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			icon, ok := Resolve(tt.in)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantId, icon.Id)
		})
	}
}

func TestSearch(t *testing.T) {
	res := Search("lucide", "chart", 0)
	require.NotEmpty(t, res)
	for _, icon := range res {
		assert.Equal(t, "lucide", icon.Library)
		assert.Contains(t, icon.Name, "chart")
	}

	limited := Search("", "", 5)
	assert.Len(t, limited, 5)

	assert.Empty(t, Search("nope", "", 0))
}

func TestLibraries(t *testing.T) {
	libs := Libraries()
	require.Len(t, libs, 4)
	assert.Equal(t, "fontawesome", libs[0].Key)
	for _, l := range libs {
		assert.Greater(t, l.Count, 0)
	}
}

package suggest

import "testing"

func TestTrigger(t *testing.T) {
	type obs struct {
		date      string
		day, goal int
		want      bool
	}

	tests := []struct {
		name  string
		steps []obs
	}{
		{
			name: "first observation with enough activities",
			steps: []obs{
				{"2024-05-01", 2, 0, true},
			},
		},
		{
			name: "first observation below threshold",
			steps: []obs{
				{"2024-05-01", 1, 0, false},
				{"2024-05-01", 0, 0, false},
			},
		},
		{
			name: "unchanged inputs do not fire",
			steps: []obs{
				{"2024-05-01", 3, 0, true},
				{"2024-05-01", 3, 0, false},
			},
		},
		{
			name: "second activity crosses threshold",
			steps: []obs{
				{"2024-05-01", 1, 0, false},
				{"2024-05-01", 2, 0, true},
			},
		},
		{
			name: "a goal alone is enough",
			steps: []obs{
				{"2024-05-01", 0, 0, false},
				{"2024-05-01", 0, 1, true},
			},
		},
		{
			name: "date change fires when gate passes",
			steps: []obs{
				{"2024-05-01", 0, 1, true},
				{"2024-05-02", 0, 1, true},
				{"2024-05-03", 1, 0, false},
			},
		},
		{
			name: "removal below threshold does not fire",
			steps: []obs{
				{"2024-05-01", 2, 0, true},
				{"2024-05-01", 1, 0, false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Trigger
			for i, s := range tt.steps {
				if got := tr.Observe(s.date, s.day, s.goal); got != s.want {
					t.Errorf("step %d: Observe(%s, %d, %d) = %v, want %v", i, s.date, s.day, s.goal, got, s.want)
				}
			}
		})
	}
}

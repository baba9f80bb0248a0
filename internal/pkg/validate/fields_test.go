package validate

import (
	"reflect"
	"testing"
)

func TestRequiredFields(t *testing.T) {
	cases := []struct {
		name        string
		record      map[string]any
		required    []string
		wantOK      bool
		wantMissing []string
	}{
		{
			name:     "all present",
			record:   map[string]any{"name": "Jane", "source": "Manual"},
			required: []string{"name", "source"},
			wantOK:   true,
		},
		{
			name:        "one missing",
			record:      map[string]any{"name": "Jane"},
			required:    []string{"name", "source"},
			wantMissing: []string{"source"},
		},
		{
			name:        "empty record keeps request order",
			record:      map[string]any{},
			required:    []string{"source", "name"},
			wantMissing: []string{"source", "name"},
		},
		{
			name:        "nil record",
			record:      nil,
			required:    []string{"name"},
			wantMissing: []string{"name"},
		},
		{
			name:     "null and empty values count as present",
			record:   map[string]any{"name": "", "source": nil},
			required: []string{"name", "source"},
			wantOK:   true,
		},
		{
			name:     "nothing required",
			record:   map[string]any{"x": 1},
			required: nil,
			wantOK:   true,
		},
		{
			name:     "extra keys ignored",
			record:   map[string]any{"name": "Jane", "source": "Other", "stage": "Won"},
			required: []string{"name", "source"},
			wantOK:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, missing := RequiredFields(tc.record, tc.required...)
			if ok != tc.wantOK {
				t.Errorf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !reflect.DeepEqual(missing, tc.wantMissing) {
				t.Errorf("missing = %v, want %v", missing, tc.wantMissing)
			}
		})
	}
}

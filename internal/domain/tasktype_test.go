package domain

import "testing"

func TestTaskTypeLabel(t *testing.T) {
	tests := []struct {
		name   string
		input  int
		want   string
		wantOK bool
	}{
		{
			name:   "feature",
			input:  1,
			want:   "FEATURE",
			wantOK: true,
		},
		{
			name:   "bug",
			input:  2,
			want:   "BUG",
			wantOK: true,
		},
		{
			name:   "testing",
			input:  6,
			want:   "TESTING",
			wantOK: true,
		},
		{
			name:   "unknown id",
			input:  42,
			want:   "",
			wantOK: false,
		},
		{
			name:   "zero id",
			input:  0,
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := TaskTypeLabel(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("TaskTypeLabel() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTaskTypeID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{
			name:   "feature",
			input:  "FEATURE",
			want:   1,
			wantOK: true,
		},
		{
			name:   "research",
			input:  "RESEARCH",
			want:   5,
			wantOK: true,
		},
		{
			name:   "unknown label",
			input:  "CHORE",
			want:   0,
			wantOK: false,
		},
		{
			name:   "labels are case sensitive",
			input:  "bug",
			want:   0,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := TaskTypeID(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("TaskTypeID() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

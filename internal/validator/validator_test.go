package validator

import "testing"

type sample struct {
	Total int    `query:"total" validate:"gte=0"`
	Max   int    `query:"max" validate:"omitempty,gte=3,lte=50"`
	Style string `query:"style" validate:"omitempty,oneof=bootstrap tailwind"`
	Plain string `validate:"required"`
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		in        sample
		wantValid bool
		wantField string
		wantMsg   string
	}{
		{"valid", sample{Total: 10, Max: 5, Plain: "x"}, true, "", ""},
		{"negative total", sample{Total: -1, Plain: "x"}, false, "total", "must be at least 0"},
		{"max too small", sample{Max: 2, Plain: "x"}, false, "max", "must be at least 3"},
		{"max too large", sample{Max: 51, Plain: "x"}, false, "max", "must be at most 50"},
		{"unknown style", sample{Style: "bulma", Plain: "x"}, false, "style", "must be one of: bootstrap tailwind"},
		{"field without query tag", sample{}, false, "Plain", "is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Check(tt.in)
			if result.Valid != tt.wantValid {
				t.Fatalf("Check() valid = %v, want %v (%+v)", result.Valid, tt.wantValid, result.Errors)
			}
			if tt.wantValid {
				return
			}
			if len(result.Errors) != 1 {
				t.Fatalf("expected 1 error, got %+v", result.Errors)
			}
			if result.Errors[0].Field != tt.wantField || result.Errors[0].Message != tt.wantMsg {
				t.Errorf("got %+v, want field %q message %q", result.Errors[0], tt.wantField, tt.wantMsg)
			}
		})
	}
}

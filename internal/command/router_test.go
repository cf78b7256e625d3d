package command

import "testing"

func TestRoute(t *testing.T) {
	tests := []struct {
		input     string
		typecheck func(t *testing.T, a ArgParser)
	}{
		{
			input:     "register",
			typecheck: func(t *testing.T, a ArgParser) { _ = a.(*RegisterArgs) },
		},
		{
			input:     "refresh",
			typecheck: func(t *testing.T, a ArgParser) { _ = a.(*RefreshArgs) },
		},
		{
			input: "karma",
			typecheck: func(t *testing.T, a ArgParser) {
				if a != nil {
					t.Errorf("want nil, got %T", a)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			router := NewRouter()

			tt.typecheck(t, router.Route(tt.input))
		})
	}
}

func TestRouteReturnsFreshArgs(t *testing.T) {
	router := NewRouter()

	a := router.Route(Register).(*RegisterArgs)
	a.PlayerID = "someone#1"

	b := router.Route(Register).(*RegisterArgs)
	if b.PlayerID != "" {
		t.Errorf("want fresh args, got %+v", b)
	}
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	if len(defs) != 2 {
		t.Fatalf("want 2 commands, got %d", len(defs))
	}

	register := defs[0]
	if register.Name != "register" {
		t.Errorf("want register, got %q", register.Name)
	}
	if register.DMPermission == nil || *register.DMPermission {
		t.Errorf("register must not be allowed in DMs")
	}
	if len(register.Options) != 1 {
		t.Fatalf("want 1 option, got %d", len(register.Options))
	}

	opt := register.Options[0]
	if opt.Name != "riotid" || !opt.Required {
		t.Errorf("want required riotid option, got %+v", opt)
	}
	if opt.Description != "Your Riot ID (e.g., MazeyJessica#EU)" {
		t.Errorf("unexpected description %q", opt.Description)
	}

	for _, def := range defs {
		if router := NewRouter(); router.Route(def.Name) == nil {
			t.Errorf("%s has no route", def.Name)
		}
	}
}

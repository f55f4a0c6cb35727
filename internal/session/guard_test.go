package session

import "testing"

func TestGuard_InitializingAlwaysLoads(t *testing.T) {
	users := []*User{
		nil,
		{ID: "u1", Role: RoleUser},
		{ID: "u2", Role: RoleAdmin},
	}
	for _, u := range users {
		in := GuardInput{Initializing: true, User: u}
		if got := Evaluate(in); got != DecisionLoading {
			t.Errorf("Evaluate(initializing, user=%+v) = %v, want loading", u, got)
		}
		if got := EvaluateRole(in, RoleAdmin); got != DecisionLoading {
			t.Errorf("EvaluateRole(initializing, user=%+v) = %v, want loading", u, got)
		}
	}
}

func TestGuard_Transitions(t *testing.T) {
	cases := []struct {
		name     string
		in       GuardInput
		required Role
		want     Decision
	}{
		{"resolved nil user redirects", GuardInput{User: nil}, "", DecisionRedirect},
		{"resolved user allowed", GuardInput{User: &User{Role: RoleUser}}, "", DecisionAllow},
		{"admin route rejects user role", GuardInput{User: &User{Role: RoleUser}}, RoleAdmin, DecisionRedirect},
		{"admin route allows admin", GuardInput{User: &User{Role: RoleAdmin}}, RoleAdmin, DecisionAllow},
		{"admin route rejects anonymous", GuardInput{User: nil}, RoleAdmin, DecisionRedirect},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EvaluateRole(tc.in, tc.required); got != tc.want {
				t.Errorf("EvaluateRole() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGuard_StateOf(t *testing.T) {
	if got := StateOf(GuardInput{Initializing: true}); got != StateInitializing {
		t.Errorf("StateOf(initializing) = %v", got)
	}
	if got := StateOf(GuardInput{}); got != StateUnauthenticated {
		t.Errorf("StateOf(no user) = %v", got)
	}
	if got := StateOf(GuardInput{User: &User{}}); got != StateAuthenticated {
		t.Errorf("StateOf(user) = %v", got)
	}
}

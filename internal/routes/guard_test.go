package routes_test

import (
	"testing"

	"github.com/SyedZohaibTech/hackathon-todo/internal/routes"
)

type stubSession struct {
	authenticated bool
}

func (s *stubSession) IsAuthenticated() bool { return s.authenticated }

func TestDecide_Matrix(t *testing.T) {
	tests := []struct {
		name          string
		access        routes.Access
		authenticated bool
		wantAllow     bool
		wantRedirect  string
	}{
		{"protected unauthenticated", routes.AccessProtected, false, false, routes.LoginRoute},
		{"protected authenticated", routes.AccessProtected, true, true, ""},
		{"public-only unauthenticated", routes.AccessPublicOnly, false, true, ""},
		{"public-only authenticated", routes.AccessPublicOnly, true, false, routes.HomeRoute},
		{"open unauthenticated", routes.AccessOpen, false, true, ""},
		{"open authenticated", routes.AccessOpen, true, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := routes.NewGuard(&stubSession{authenticated: tt.authenticated})
			decision := guard.Decide("target", tt.access)
			if decision.Allow != tt.wantAllow {
				t.Errorf("Allow = %t, want %t", decision.Allow, tt.wantAllow)
			}
			if decision.RedirectTo != tt.wantRedirect {
				t.Errorf("RedirectTo = %q, want %q", decision.RedirectTo, tt.wantRedirect)
			}
		})
	}
}

func TestDecide_PreservesOriginalTarget(t *testing.T) {
	guard := routes.NewGuard(&stubSession{authenticated: false})
	decision := guard.Decide("rm", routes.AccessProtected)
	if decision.Target != "rm" {
		t.Errorf("expected original target preserved, got %q", decision.Target)
	}
}

func TestDecide_ReEvaluatesSessionState(t *testing.T) {
	sess := &stubSession{authenticated: false}
	guard := routes.NewGuard(sess)

	if d := guard.Decide("list", routes.AccessProtected); d.Allow {
		t.Fatal("expected denial while unauthenticated")
	}

	// State changes between navigations; the guard must see it.
	sess.authenticated = true
	if d := guard.Decide("list", routes.AccessProtected); !d.Allow {
		t.Fatal("expected admission after authentication")
	}
}

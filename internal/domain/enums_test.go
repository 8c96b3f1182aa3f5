package domain

import "testing"

func TestRole_AtLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role     Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleManager, true},
		{RoleAdmin, RoleMember, true},
		{RoleManager, RoleAdmin, false},
		{RoleManager, RoleManager, true},
		{RoleManager, RoleMember, true},
		{RoleMember, RoleManager, false},
		{RoleMember, RoleMember, true},
		{Role("guest"), RoleMember, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+">="+string(tt.required), func(t *testing.T) {
			t.Parallel()
			if got := tt.role.AtLeast(tt.required); got != tt.want {
				t.Errorf("Role(%q).AtLeast(%q) = %v, want %v", tt.role, tt.required, got, tt.want)
			}
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	for _, r := range []Role{RoleMember, RoleManager, RoleAdmin} {
		if !r.IsValid() {
			t.Errorf("Role(%q).IsValid() = false", r)
		}
	}
	if Role("owner").IsValid() {
		t.Error(`Role("owner").IsValid() = true`)
	}
}

func TestRequestKind_InitialStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind RequestKind
		want Status
	}{
		{RequestKindJig, JigStatusRequest},
		{RequestKindProduction, ProductionStatusRequested},
		{RequestKindSample, SampleStatusReceived},
		{RequestKind("OTHER"), ""},
	}
	for _, tt := range tests {
		if got := tt.kind.InitialStatus(); got != tt.want {
			t.Errorf("%s.InitialStatus() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRequestKind_HasStatus(t *testing.T) {
	t.Parallel()

	if !RequestKindJig.HasStatus(JigStatusReceiving) {
		t.Error("jig should accept RECEIVING")
	}
	if RequestKindSample.HasStatus(JigStatusHold) {
		t.Error("sample should not accept HOLD")
	}
	if RequestKindProduction.HasStatus(SampleStatusOnHold) {
		t.Error("production should not accept ON_HOLD")
	}
	for _, k := range []RequestKind{RequestKindJig, RequestKindProduction, RequestKindSample} {
		if !k.HasStatus(k.InitialStatus()) {
			t.Errorf("%s should accept its initial status", k)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	terminal := []Status{
		JigStatusCompleted, JigStatusRejected,
		ProductionStatusCompleted, ProductionStatusRejected,
		SampleStatusCompleted, SampleStatusRejected,
	}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = false", s)
		}
	}
	open := []Status{
		JigStatusRequest, JigStatusInProgress, JigStatusReceiving, JigStatusHold,
		ProductionStatusRequested, ProductionStatusInProgress, ProductionStatusHold,
		SampleStatusReceived, SampleStatusInProgress, SampleStatusOnHold,
	}
	for _, s := range open {
		if s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = true", s)
		}
	}
}

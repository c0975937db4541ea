package health

import (
	"testing"
)

func TestChecker_AllHealthy(t *testing.T) {
	c := NewChecker()
	c.RegisterCheck("graph", func() Check {
		return Check{Name: "graph", Status: StatusHealthy}
	})
	c.RegisterCheck("sessions", func() Check {
		return Check{Name: "sessions", Status: StatusHealthy}
	})

	resp := c.Check()
	if resp.Status != StatusHealthy {
		t.Errorf("expected healthy, got %s", resp.Status)
	}
	if len(resp.Checks) != 2 {
		t.Errorf("expected 2 checks, got %d", len(resp.Checks))
	}
}

func TestChecker_WorstStatusWins(t *testing.T) {
	c := NewChecker()
	c.RegisterCheck("ok", func() Check {
		return Check{Name: "ok", Status: StatusHealthy}
	})
	c.RegisterCheck("slow", func() Check {
		return Check{Name: "slow", Status: StatusDegraded}
	})

	if resp := c.Check(); resp.Status != StatusDegraded {
		t.Errorf("expected degraded, got %s", resp.Status)
	}

	c.RegisterCheck("down", func() Check {
		return Check{Name: "down", Status: StatusUnhealthy, Message: "empty graph"}
	})
	if resp := c.Check(); resp.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy, got %s", resp.Status)
	}
}

func TestChecker_ReadinessIsSeparate(t *testing.T) {
	c := NewChecker()
	c.RegisterCheck("health-only", func() Check {
		return Check{Name: "health-only", Status: StatusUnhealthy}
	})
	c.RegisterReadinessCheck("ready", func() Check {
		return Check{Name: "ready", Status: StatusHealthy}
	})

	if resp := c.CheckReadiness(); resp.Status != StatusHealthy {
		t.Errorf("readiness must not see health-only checks, got %s", resp.Status)
	}
}

package coaching

import (
	"math"
	"testing"
)

func TestStaticProvider(t *testing.T) {
	p := Static{"t1": {Offense: 0.05}}
	b, ok := p.Bonus("t1")
	if !ok || math.Abs(b.OffenseFactor()-1.05) > 1e-9 {
		t.Fatalf("unexpected bonus %+v ok=%v", b, ok)
	}
	if _, ok := p.Bonus("missing"); ok {
		t.Fatalf("expected missing team to report no bonus")
	}
}

func TestFactorsAreClamped(t *testing.T) {
	b := Bonus{Offense: 4, Defense: -3, Development: math.NaN()}
	if b.OffenseFactor() != 1+MaxBonus {
		t.Fatalf("expected offense capped, got %v", b.OffenseFactor())
	}
	if b.DefenseFactor() != 1+MinBonus {
		t.Fatalf("expected defense floored, got %v", b.DefenseFactor())
	}
	if b.DevelopmentFactor() != 1 {
		t.Fatalf("expected NaN to be neutral, got %v", b.DevelopmentFactor())
	}
	if b.BallSecurityFactor() != 1 {
		t.Fatalf("expected NaN ball security to be neutral, got %v", b.BallSecurityFactor())
	}
	if got := (Bonus{Development: 1}).BallSecurityFactor(); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("expected ball security capped at 0.75, got %v", got)
	}
	var zero Bonus
	if zero.OffenseFactor() != 1 || zero.DefenseFactor() != 1 {
		t.Fatalf("expected zero bonus to be neutral")
	}
}

func TestCoachBonusFromRatingsAndExperience(t *testing.T) {
	c := Coach{ID: "c1", Offense: 100, Defense: 50, Development: 0, Experience: 40}
	b := c.Bonus()

	if math.Abs(b.Offense-0.15) > 1e-9 {
		t.Fatalf("expected offense 0.15, got %v", b.Offense)
	}
	if math.Abs(b.Defense-0.05) > 1e-9 {
		t.Fatalf("expected defense 0.05 from experience alone, got %v", b.Defense)
	}
	if math.Abs(b.Development-(-0.05)) > 1e-9 {
		t.Fatalf("expected development -0.05, got %v", b.Development)
	}
}

func TestStaffAdapter(t *testing.T) {
	staff := Staff{"t1": {ID: "c1", Offense: 75}}
	b, ok := staff.Bonus("t1")
	if !ok || math.Abs(b.Offense-0.05) > 1e-9 {
		t.Fatalf("unexpected staff bonus %+v ok=%v", b, ok)
	}
	if _, ok := staff.Bonus("t2"); ok {
		t.Fatalf("expected no bonus for team without staff")
	}
}

package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Vec(3.0, 4.0), Pt(4.0, 6.0).Sub(Pt(1.0, 2.0)))
	diff(t, Pt(4.0, 6.0), Pt(1.0, 2.0).Translate(Vec(3.0, 4.0)))
	diff(t, Pt(2.5, 4.0), Pt(1.0, 2.0).Midpoint(Pt(4.0, 6.0)))
	diff(t, Pt(1.75, 3.0), Pt(1.0, 2.0).Lerp(Pt(4.0, 6.0), 0.25))
}

func TestPointDistance(t *testing.T) {
	diff(t, 5.0, Pt(0.0, 0.0).Distance(Pt(3.0, 4.0)))
	diff(t, 25.0, Pt(0.0, 0.0).DistanceSquared(Pt(3.0, 4.0)))
}

func TestPointClose(t *testing.T) {
	if !Pt(1.0, 1.0).Close(Pt(1.0, 1.0+1e-9), 1e-7) {
		t.Error("nearby points: want close")
	}
	if Pt(1.0, 1.0).Close(Pt(1.0, 1.1), 1e-7) {
		t.Error("distant points: want not close")
	}
}

func TestVec2(t *testing.T) {
	diff(t, 11.0, Vec(1.0, 2.0).Dot(Vec(3.0, 4.0)))
	diff(t, -2.0, Vec(1.0, 2.0).Cross(Vec(3.0, 4.0)))
	diff(t, 5.0, Vec(3.0, 4.0).Hypot())
	diff(t, Vec(-4.0, 3.0), Vec(3.0, 4.0).Turn90())
	diff(t, Vec(0.6, 0.8), Vec(3.0, 4.0).Normalize(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Vec(1.0, 0.0), VecFromAngle(0.0), cmpopts.EquateApprox(0, 1e-12))
}

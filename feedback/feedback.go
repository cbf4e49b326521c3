package feedback

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"sysid/dataset"
)

// Result is the synthesized feedback gain pair. Kd is always zero for a
// velocity-loop Result.
type Result struct {
	Mode dataset.FeedbackMode
	Kp   float64
	Kd   float64
}

func (r Result) String() string {
	if r.Mode == dataset.Velocity {
		return fmt.Sprintf("feedback(velocity): Kp=%.6g", r.Kp)
	}
	return fmt.Sprintf("feedback(position): Kp=%.6g Kd=%.6g", r.Kp, r.Kd)
}

// settlingPeriods is how many loop periods the placed closed-loop pole
// is tuned to settle within, for the PolePlacement method, before
// settlingPole stretches that budget by the preset's ObservationDelay.
// Fixed rather than preset-driven since spec.md's Preset carries no
// explicit bandwidth field (see DESIGN.md).
const settlingPeriods = 20

// Compute synthesizes (Kp, Kd) from the feedforward plant parameters
// (Kv, Ka) under settings, per spec.md §4.D.
func Compute(kv, ka float64, settings dataset.Settings) (Result, error) {
	if kv <= 0 || ka <= 0 {
		return Result{}, ErrNonPhysicalPlant
	}

	a := -kv / ka
	b := 1 / ka
	period := settings.Preset.LoopPeriod
	if period <= 0 {
		period = 0.02
	}
	pole := settlingPole(period, settings.Preset.ObservationDelay)

	var result Result
	if settings.Type == dataset.Velocity {
		ad, bd := discretizeScalar(a, b, period)
		result = Result{Mode: dataset.Velocity, Kp: velocityGain(ad, bd, pole, settings)}
	} else {
		ad, bd := discretizePosition(a, b, period)
		kp, kd := positionGains(ad, bd, pole, settings)
		result = Result{Mode: dataset.Position, Kp: kp, Kd: kd}
	}

	if settings.ConvertToEncoderTicks {
		factor := settings.Gearing * settings.CountsPerRevolution
		result.Kp *= factor
		result.Kd *= factor
	}
	return result, nil
}

// settlingPole places the closed-loop pole so the plant settles within
// settlingPeriods loop periods, stretched by the preset's ObservationDelay
// (measurement + control delay): the controller cannot react to a
// measurement until the delay has elapsed, so the same settlingPeriods
// budget must cover a longer real-time window, which means a slower
// (closer-to-1) discrete pole.
func settlingPole(period, observationDelay float64) float64 {
	tau := settlingPeriods*period + observationDelay
	return math.Exp(-period / tau)
}

// effortWeight is the LQR effort cost 1/qEffort², normalized by Bryson's
// rule against the preset's MaxControlEffort so that presets sharing the
// same QEffort weight but differing in how much control authority is
// actually available synthesize different gains. Left unnormalized when
// MaxControlEffort isn't set.
func effortWeight(qEffort, maxControlEffort float64) float64 {
	r := 1 / (qEffort * qEffort)
	if maxControlEffort > 0 {
		r /= maxControlEffort * maxControlEffort
	}
	return r
}

func discretizeScalar(a, b, period float64) (ad, bd float64) {
	if a == 0 {
		return 1, b * period
	}
	ad = math.Exp(a * period)
	bd = b * (ad - 1) / a
	return ad, bd
}

// discretizePosition discretizes the plant A = [[0,1],[0,a]], B = [0;b]
// (position-velocity state, a drag-damped double integrator) via the
// closed-form matrix exponential for this Jordan structure.
func discretizePosition(a, b, period float64) (ad, bd *mat.Dense) {
	if a == 0 {
		ad = mat.NewDense(2, 2, []float64{1, period, 0, 1})
		bd = mat.NewDense(2, 1, []float64{b * period * period / 2, b * period})
		return ad, bd
	}
	ead := math.Exp(a * period)
	term := (ead - 1) / a
	ad = mat.NewDense(2, 2, []float64{1, term, 0, ead})
	bd = mat.NewDense(2, 1, []float64{b / a * (term - period), b * term})
	return ad, bd
}

func velocityGain(ad, bd, pole float64, settings dataset.Settings) float64 {
	if settings.GainMethod == dataset.LQR {
		q := 1 / (settings.LQR.QVelocity * settings.LQR.QVelocity)
		r := effortWeight(settings.LQR.QEffort, settings.Preset.MaxControlEffort)
		p := riccatiScalar(ad, bd, q, r)
		return (ad * bd * p) / (r + bd*bd*p)
	}
	return (ad - pole) / bd
}

func positionGains(ad, bd *mat.Dense, pole float64, settings dataset.Settings) (kp, kd float64) {
	if settings.GainMethod == dataset.LQR {
		q := mat.NewDense(2, 2, []float64{
			1 / (settings.LQR.QPosition * settings.LQR.QPosition), 0,
			0, 1 / (settings.LQR.QVelocity * settings.LQR.QVelocity),
		})
		r := effortWeight(settings.LQR.QEffort, settings.Preset.MaxControlEffort)
		p := riccatiDouble(ad, bd, q, r)
		k := lqrGain(ad, bd, p, r)
		return k.At(0, 0), k.At(0, 1)
	}
	k := ackermann(ad, bd, pole)
	return k.At(0, 0), k.At(0, 1)
}

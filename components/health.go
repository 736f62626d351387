package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Apply subtracts damage and clamps the result to [0, Max]. It returns the
// amount actually removed.
func (h *HealthData) Apply(damage float64) float64 {
	before := h.Current
	h.Current = clamp(h.Current-damage, 0, h.Max)
	return before - h.Current
}

func (h *HealthData) Reset() {
	h.Current = h.Max
}

type StaminaData struct {
	Current float64
	Max     float64
}

// Spend deducts cost if enough stamina is left.
func (s *StaminaData) Spend(cost float64) bool {
	if s.Current < cost {
		return false
	}
	s.Current -= cost
	return true
}

func (s *StaminaData) Regen(amount float64) {
	s.Current = clamp(s.Current+amount, 0, s.Max)
}

var Health = donburi.NewComponentType[HealthData]()
var Stamina = donburi.NewComponentType[StaminaData]()

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

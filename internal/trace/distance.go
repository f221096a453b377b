package trace

import (
	"encoding/json"
	"math"
	"strconv"
)

// Inf is the "no path" distance.
var Inf = math.Inf(1)

// Distance is a path cost. +Inf encodes to JSON null.
type Distance float64

func (d Distance) IsInf() bool { return math.IsInf(float64(d), 1) }

func (d Distance) String() string { return FormatNumber(float64(d)) }

func (d Distance) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(d), 0) || math.IsNaN(float64(d)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(d))
}

func (d *Distance) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Distance(Inf)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = Distance(v)
	return nil
}

// Distances is a per-node cost vector; +Inf entries encode as null.
type Distances []float64

func NewDistances(n int) Distances {
	d := make(Distances, n)
	for i := range d {
		d[i] = Inf
	}
	return d
}

func (d Distances) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	out := make([]*float64, len(d))
	for i, v := range d {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		out[i] = &v
	}
	return json.Marshal(out)
}

func (d *Distances) UnmarshalJSON(b []byte) error {
	var raw []*float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*d = nil
		return nil
	}
	out := make(Distances, len(raw))
	for i, p := range raw {
		if p == nil {
			out[i] = Inf
			continue
		}
		out[i] = *p
	}
	*d = out
	return nil
}

// Matrix is a dense all-pairs distance table.
type Matrix []Distances

// FormatNumber prints v without trailing zeros; +Inf prints as ∞.
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package trace

// Recorder accumulates snapshots for one generator run.
type Recorder struct {
	t Trace
}

func NewRecorder(algorithm string, kind Kind, pseudocode []string) *Recorder {
	code := make([]string, len(pseudocode))
	copy(code, pseudocode)
	return &Recorder{t: Trace{Algorithm: algorithm, Kind: kind, Pseudocode: code}}
}

// Array records an array snapshot. st is deep-copied.
func (r *Recorder) Array(ev Event, line int, desc string, st ArrayState) {
	a := st.Clone()
	r.t.Snapshots = append(r.t.Snapshots, Snapshot{
		Description: desc,
		CodeLine:    line,
		Kind:        r.t.Kind,
		Event:       ev,
		Array:       &a,
	})
}

// Graph records a graph snapshot. st is deep-copied.
func (r *Recorder) Graph(ev Event, line int, desc string, st GraphState) {
	g := st.Clone()
	r.t.Snapshots = append(r.t.Snapshots, Snapshot{
		Description: desc,
		CodeLine:    line,
		Kind:        r.t.Kind,
		Event:       ev,
		Graph:       &g,
	})
}

func (r *Recorder) Len() int { return len(r.t.Snapshots) }

// Trace returns the finished trace. The recorder must not be used afterwards.
func (r *Recorder) Trace() Trace {
	return r.t
}

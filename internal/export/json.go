package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/trace"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Envelope is the serialized form of a run.
type Envelope struct {
	ID          string           `json:"id"`
	Algorithm   string           `json:"algorithm"`
	Kind        trace.Kind       `json:"kind"`
	Pseudocode  []string         `json:"pseudocode"`
	Steps       int              `json:"steps"`
	Snapshots   []trace.Snapshot `json:"snapshots"`
	Metrics     []metrics.Result `json:"metrics,omitempty"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

func NewEnvelope(run *catalog.Run) Envelope {
	return Envelope{
		ID:          run.ID,
		Algorithm:   run.Algorithm,
		Kind:        run.Trace.Kind,
		Pseudocode:  run.Trace.Pseudocode,
		Steps:       run.Trace.Len(),
		Snapshots:   run.Trace.Snapshots,
		Metrics:     metrics.Collect(run.Trace),
		GeneratedAt: run.GeneratedAt,
	}
}

// Trace rebuilds the trace carried by the envelope.
func (e Envelope) Trace() trace.Trace {
	return trace.Trace{
		Algorithm:  e.Algorithm,
		Kind:       e.Kind,
		Pseudocode: e.Pseudocode,
		Snapshots:  e.Snapshots,
	}
}

// WriteJSON encodes env, zstd-compressed when compress is set.
func WriteJSON(w io.Writer, env Envelope, compress bool) error {
	if !compress {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(env)
	}

	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	defer enc.Close()
	_, err = w.Write(enc.EncodeAll(data, nil))
	return err
}

// ReadJSON decodes an envelope, plain or zstd-compressed.
func ReadJSON(r io.Reader) (Envelope, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Envelope{}, err
	}
	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return Envelope{}, err
		}
		defer dec.Close()
		if data, err = dec.DecodeAll(data, nil); err != nil {
			return Envelope{}, fmt.Errorf("decompress: %w", err)
		}
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

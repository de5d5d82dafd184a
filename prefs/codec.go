package prefs

import (
	"bytes"
	"encoding/json"
	"io"
)

// flatJSON is a gache codec that stores only the cached map, without
// gache's timestamp envelope, so the file stays hand-editable.
type flatJSON struct{}

// envelope mirrors the parts of gache's cache record that preferences use.
type envelope struct {
	Internal map[string]string
}

func (flatJSON) Encode(w io.Writer, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		return err
	}
	if e.Internal == nil {
		e.Internal = make(map[string]string)
	}

	return json.NewEncoder(w).Encode(e.Internal)
}

func (flatJSON) Decode(r io.Reader, data any) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	// freshly created file
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	values := make(map[string]string)
	if err := json.Unmarshal(raw, &values); err != nil {
		return err
	}

	wrapped, err := json.Marshal(envelope{Internal: values})
	if err != nil {
		return err
	}
	return json.Unmarshal(wrapped, data)
}

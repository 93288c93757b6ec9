// Package render turns generated datasets into output artifacts. Building
// the structured value and rendering it as text are kept separate so the
// generators never depend on the target format.
package render

import (
	"bytes"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/grilldesk/sampledata/errors"
)

type Renderer interface {
	Render(w io.Writer, v any) error
}

// JSModule renders v as a directly-importable ES module. With a Binding it
// emits `export const <Binding> = <json>;`, without one
// `export default <json>;`.
type JSModule struct {
	Binding string
}

func (m JSModule) Render(w io.Writer, v any) error {
	prefix := "export default "
	if m.Binding != "" {
		prefix = "export const " + m.Binding + " = "
	}
	if _, err := io.WriteString(w, prefix); err != nil {
		return errors.Wrap(err, "cannot write module prefix")
	}
	if err := marshalInto(w, v); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ";\n"); err != nil {
		return errors.Wrap(err, "cannot write module suffix")
	}
	return nil
}

// JSON renders v as a plain indented JSON document.
type JSON struct{}

func (JSON) Render(w io.Writer, v any) error {
	if err := marshalInto(w, v); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrap(err, "cannot write trailing newline")
	}
	return nil
}

func marshalInto(w io.Writer, v any) error {
	data, err := jsoniter.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot marshal dataset")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "cannot write dataset")
	}
	return nil
}

// Bytes runs r against v in memory.
func Bytes(r Renderer, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

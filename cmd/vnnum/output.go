package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/FuandB/vn-numtext/internal/reading"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// record is one result as written in json and yaml output.
type record struct {
	Input string `json:"input"           yaml:"input"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Text  string `json:"text,omitempty"  yaml:"text,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newRecord(res reading.Result, err error) record {
	r := record{Input: res.Input, Value: res.Value, Text: res.Text}
	if err != nil {
		r.Error = reading.Message(err)
	}
	return r
}

// printer writes results in the selected format. json output is one object
// per line; yaml output is a stream of documents.
type printer struct {
	format string
	out    io.Writer
	errOut io.Writer

	// textField selects what text mode prints for a success.
	textField func(reading.Result) string

	yaml *yaml.Encoder
}

func newPrinter(format string, out, errOut io.Writer, textField func(reading.Result) string) *printer {
	p := &printer{format: format, out: out, errOut: errOut, textField: textField}
	if format == formatYAML {
		p.yaml = yaml.NewEncoder(out)
		p.yaml.SetIndent(2)
	}
	return p
}

func (p *printer) print(res reading.Result, err error) error {
	switch p.format {
	case formatJSON:
		return json.NewEncoder(p.out).Encode(newRecord(res, err))
	case formatYAML:
		return p.yaml.Encode(newRecord(res, err))
	}

	if err != nil {
		_, werr := fmt.Fprintln(p.errOut, reading.Message(err))
		return werr
	}
	_, werr := fmt.Fprintln(p.out, p.textField(res))
	return werr
}

func (p *printer) close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}

func resultText(res reading.Result) string  { return res.Text }
func resultValue(res reading.Result) string { return res.Value }

package format

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Namespaces declared on the root element, in output order.
var Namespaces = []xml.Attr{
	{Name: xml.Name{Local: "xmlns:jcr"}, Value: "http://www.jcp.org/jcr/1.0"},
	{Name: xml.Name{Local: "xmlns:nt"}, Value: "http://www.jcp.org/jcr/nt/1.0"},
	{Name: xml.Name{Local: "xmlns:sling"}, Value: "http://sling.apache.org/jcr/sling/1.0"},
	{Name: xml.Name{Local: "xmlns:granite"}, Value: "http://www.adobe.com/jcr/granite/1.0"},
	{Name: xml.Name{Local: "xmlns:cq"}, Value: "http://www.day.com/jcr/cq/1.0"},
}

// XMLEncoder writes a target tree as a JCR .content.xml document. Names
// are written verbatim, prefixes included, so the output keeps the
// jcr:/sling: spelling the platform expects.
type XMLEncoder struct {
	w      io.Writer
	indent string
}

func NewXMLEncoder(w io.Writer) *XMLEncoder {
	return &XMLEncoder{w: w, indent: "    "}
}

func (e *XMLEncoder) Encode(t *target.Target) error {
	text, err := e.MarshalText(t)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *XMLEncoder) MarshalText(t *target.Target) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	enc := xml.NewEncoder(&sb)
	enc.Indent("", e.indent)
	if err := e.encodeNode(enc, t, true); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

func (e *XMLEncoder) encodeNode(enc *xml.Encoder, t *target.Target, root bool) error {
	start := xml.StartElement{Name: xml.Name{Local: t.Name()}}
	if root {
		start.Attr = append(start.Attr, Namespaces...)
	}
	for _, a := range t.Attributes() {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Key}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range t.Children() {
		if err := e.encodeNode(enc, child, false); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

package eccang

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const envelopeOpen = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
	`<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/" xmlns:ns1="http://www.example.org/Ec/">` +
	`<SOAP-ENV:Body><ns1:callService>`

const envelopeClose = `</ns1:callService></SOAP-ENV:Body></SOAP-ENV:Envelope>`

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EncodeEnvelope builds the request envelope for one carrier call. The
// JSON-serialized params travel verbatim inside a CDATA section; the
// credentials and the service name are XML-entity escaped.
func EncodeEnvelope(service string, params any, appToken, appKey string) ([]byte, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encoding call parameters: %w", err)
	}

	var b strings.Builder
	b.WriteString(envelopeOpen)
	fmt.Fprintf(&b, "<paramsJson><![CDATA[%s]]></paramsJson>", paramsJSON)
	fmt.Fprintf(&b, "<appToken>%s</appToken>", xmlEscaper.Replace(appToken))
	fmt.Fprintf(&b, "<appKey>%s</appKey>", xmlEscaper.Replace(appKey))
	fmt.Fprintf(&b, "<service>%s</service>", xmlEscaper.Replace(service))
	b.WriteString(envelopeClose)

	return []byte(b.String()), nil
}

// The legacy endpoint nests the payload string under different wrappers
// depending on gateway version. Candidate locations are tried in this order,
// first relative to each known container element, then to the body itself.
var (
	payloadContainers = []string{"callServiceResponse", "response"}
	payloadFields     = []string{"response", "return", "Response"}
)

// DecodeEnvelope locates the embedded JSON payload in a response envelope.
// Element names match on their local part, so namespaced and plain documents
// decode the same way.
func DecodeEnvelope(data []byte) (json.RawMessage, error) {
	root, err := parseXML(data)
	if err != nil {
		return nil, &DecodeError{Reason: "malformed envelope", Cause: err}
	}

	body := root
	if root.name != "Body" {
		if b := root.child("Body"); b != nil {
			body = b
		}
	}

	var containers []*xmlNode
	for _, name := range payloadContainers {
		if c := body.child(name); c != nil {
			containers = append(containers, c)
		}
	}
	containers = append(containers, body)

	for _, container := range containers {
		for _, field := range payloadFields {
			n := container.child(field)
			if n == nil {
				continue
			}

			if len(n.children) > 0 {
				return nil, &DecodeError{Reason: fmt.Sprintf("payload field %q is not a string", field)}
			}

			var payload json.RawMessage
			if err := json.Unmarshal([]byte(n.text), &payload); err != nil {
				return nil, &DecodeError{Reason: "payload is not valid JSON", Cause: err}
			}

			return payload, nil
		}
	}

	return nil, &DecodeError{Reason: "no payload field found in envelope"}
}

type xmlNode struct {
	name     string
	text     string
	children []*xmlNode
}

func (n *xmlNode) child(name string) *xmlNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func parseXML(data []byte) (*xmlNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	root := &xmlNode{}
	stack := []*xmlNode{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &xmlNode{name: t.Name.Local}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, n)
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			stack[len(stack)-1].text += string(t)
		}
	}

	if len(root.children) == 0 {
		return nil, fmt.Errorf("document has no root element")
	}

	return root.children[0], nil
}

package http

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	charsetpkg "golang.org/x/net/html/charset"
)

// ErrTransport matches every failure to exchange a request with the server.
var ErrTransport = errors.New("http: transport failure")

// TransportError wraps a network level failure.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTransport) hold for every TransportError.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode  int
	Header      http.Header
	Body        []byte
	contentType string
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the body into target based on the response content type.
func (r *Response) Decode(target any) error {
	mainContentType := strings.TrimSpace(strings.Split(r.contentType, ";")[0])

	switch mainContentType {
	case MIMEApplicationXML, MIMETextXML:
		dec := xml.NewDecoder(bytes.NewReader(r.Body))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case MIMETextPlain:
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(r.Body)
			return nil
		}
		return json.Unmarshal(r.Body, target)
	case MIMEOctetStream:
		if bytePtr, ok := target.(*[]byte); ok {
			*bytePtr = r.Body
			return nil
		}
		return json.Unmarshal(r.Body, target)
	default:
		return json.Unmarshal(r.Body, target)
	}
}

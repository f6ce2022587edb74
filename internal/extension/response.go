package extension

import "fmt"

// Response is the single JSON value written back to the host. Exactly one
// shape is ever populated: {result}, {code, explanation} or {error}.
type Response struct {
	Result      string `json:"result,omitempty"`
	Code        string `json:"code,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ResultResponse wraps a descriptive string from the file analyzer.
func ResultResponse(result string) Response {
	return Response{Result: result}
}

// CodeResponse wraps generated code plus its explanation.
func CodeResponse(code, explanation string) Response {
	return Response{Code: code, Explanation: explanation}
}

// ErrorResponse wraps a failure message. All errors cross the wire in this
// one flat shape; there is no structured kind field.
func ErrorResponse(format string, args ...interface{}) Response {
	return Response{Error: fmt.Sprintf(format, args...)}
}

// IsError reports whether the response carries an error.
func (r Response) IsError() bool {
	return r.Error != ""
}

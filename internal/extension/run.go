package extension

import (
	"encoding/json"
	"io"
)

// Run executes one request/response cycle: read everything from r, parse,
// dispatch, and write exactly one compact JSON value to w with no trailing
// newline. Failures at any stage are folded into an {error} response, so
// the caller always gets one JSON value and never a non-zero exit. The
// returned error covers only write failures on w itself, where no output
// channel is left to report on.
func Run(r io.Reader, w io.Writer) error {
	resp := runPipeline(r)

	out, err := json.Marshal(resp)
	if err != nil {
		// Response is a plain string struct; this does not happen. Keep
		// the contract anyway.
		out, _ = json.Marshal(ErrorResponse("%s", err))
	}

	_, err = w.Write(out)
	return err
}

func runPipeline(r io.Reader) Response {
	data, err := io.ReadAll(r)
	if err != nil {
		return ErrorResponse("%s", err)
	}

	req, err := ParseRequest(data)
	if err != nil {
		return ErrorResponse("%s", err)
	}

	return Dispatch(req)
}

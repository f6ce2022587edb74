package extension

// Dispatch routes a request to the handler named by its tool field. An
// unrecognized (or missing) tool name produces an error response; routing
// itself has no side effects.
func Dispatch(req Request) Response {
	switch req.Tool {
	case ToolFileAnalyzer:
		return AnalyzeFile(req)
	case ToolCodeGenerator:
		return GenerateCode(req)
	default:
		return ErrorResponse("Unknown tool: %s", req.Tool)
	}
}

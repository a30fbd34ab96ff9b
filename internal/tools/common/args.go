package common

// QueryFromArgs extracts the search filter from tool arguments, if present.
// Returns "" when the tool takes no filter or the argument is not a string.
func QueryFromArgs(args map[string]interface{}) string {
	if v, ok := args["filter"].(string); ok {
		return v
	}
	return ""
}

// ThreadFromArgs extracts a single thread ID from tool arguments, if
// present. Batch invocations pass an array instead; those are attributed
// per item by the handler, not here.
func ThreadFromArgs(args map[string]interface{}) string {
	if v, ok := args["threadIds"].(string); ok {
		return v
	}
	return ""
}

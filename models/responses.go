package models

// ErrorResponse is the JSON body written for every failed API request.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// AppInfo is the JSON body returned by the API root.
type AppInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// DeleteResult reports whether a delete request removed a record.
type DeleteResult struct {
	Status bool `json:"status"`
}

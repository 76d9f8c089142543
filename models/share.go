package models

// ShareRequest represents the request body for sharing an invitation link
type ShareRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ShareResult reports the outcome of the clipboard fallback
type ShareResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ShareResponse represents the response for a share request
// CopyText is what the client should place on its clipboard.
type ShareResponse struct {
	ShareResult
	CopyText string `json:"copyText,omitempty"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

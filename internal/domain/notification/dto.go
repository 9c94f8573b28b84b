package notification

// NoticeListResponse is the employee's current notice list.
type NoticeListResponse struct {
	Notices []Notice `json:"notices"`
	Total   int      `json:"total"`
}

// PendingDigest is pushed to admins by the digest job.
type PendingDigest struct {
	PendingCount int      `json:"pending_count"`
	OldestIDs    []string `json:"oldest_ids"`
}

// SSEEvent represents a Server-Sent Event
type SSEEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

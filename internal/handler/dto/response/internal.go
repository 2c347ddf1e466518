package response

import "clinic-booking/internal/usecase/commands"

type DispatchResponse struct {
	Status         string `json:"status"`
	Reason         string `json:"reason,omitempty"`
	Date           string `json:"date,omitempty"`
	Checked        int    `json:"checked"`
	Sent           int    `json:"sent"`
	Failed         int    `json:"failed"`
	SkippedNoPhone int    `json:"skipped_no_phone"`
}

func FromDispatchResult(r *commands.DispatchResult) *DispatchResponse {
	return &DispatchResponse{
		Status:         string(r.Status),
		Reason:         r.Reason,
		Date:           r.Date,
		Checked:        r.Checked,
		Sent:           r.Sent,
		Failed:         r.Failed,
		SkippedNoPhone: r.SkippedNoPhone,
	}
}

type ReapResponse struct {
	Expired int64 `json:"expired"`
}

func FromReapResult(r *commands.ReapResult) *ReapResponse {
	return &ReapResponse{Expired: r.Expired}
}

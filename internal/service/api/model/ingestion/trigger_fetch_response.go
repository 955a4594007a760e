package ingestion

// TriggerFetchResponse 기사 수집 작업 예약 응답
type TriggerFetchResponse struct {
	// 결과 메시지
	Message string `json:"message" example:"Article fetching job has been scheduled successfully."`
}

package dto

type SubmitContactRequest struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required"`
	Message string `form:"message" validate:"required"`
}

type SubmitContactResponse struct {
	Id int64 `json:"id"`
}

type SubmitScheduleRequest struct {
	ClientName    string `form:"client_name" validate:"required"`
	Email         string `form:"email" validate:"required"`
	PreferredDate string `form:"preferred_date"`
	Notes         string `form:"notes"`
}

// SubmitScheduleResponse reports the persistence and notification outcomes
// separately: the record is committed before the notifier runs, so Notified
// can be false while Id is set.
type SubmitScheduleResponse struct {
	Id       int64 `json:"id"`
	Notified bool  `json:"notified"`
}

package dto

import "encoding/json"

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProfileRequest struct {
	Gender         *string `json:"gender"`
	Country        *string `json:"country"`
	Phone          *string `json:"phone"`
	Language       *string `json:"language"`
	GoogleEmail    *string `json:"google_email"`
	GoogleName     *string `json:"google_name"`
	GithubEmail    *string `json:"github_email"`
	GithubName     *string `json:"github_name"`
	FacebookEmail  *string `json:"facebook_email"`
	FacebookName   *string `json:"facebook_name"`
	ProfilePicture *string `json:"profile_picture"`
}

type CreateProjectRequest struct {
	Title          string  `json:"title"`
	Status         string  `json:"status"`
	RoomID         *string `json:"room_id"`
	ExcalidrawLink *string `json:"excalidraw_link"`
	TeamMemberIDs  []uint  `json:"team_member_ids"`
}

type UpdateProjectRequest struct {
	Title          string  `json:"title"`
	RoomID         *string `json:"room_id"`
	ExcalidrawLink *string `json:"excalidraw_link"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type MembersRequest struct {
	UserIDs []uint `json:"user_ids"`
}

// Dates use the 2006-01-02 layout.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	AssigneeIDs []uint `json:"assigned_to"`
}

type UpdateTaskRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type WhiteboardRequest struct {
	DrawingData json.RawMessage `json:"drawing_data"`
}

type CreateNotificationRequest struct {
	UserID  uint    `json:"user_id"`
	Message string  `json:"message"`
	Link    *string `json:"link"`
}

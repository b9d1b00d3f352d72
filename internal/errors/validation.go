package errors

import "net/http"

var ErrInvalidProjectStatus = &Exception{
	Message:    "status must be one of: Planning, In Progress, Completed",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidTaskStatus = &Exception{
	Message:    "status must be one of: Backlog, Doing, On Hold, Done, Unfinished",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidGender = &Exception{
	Message:    "gender must be Male or Female",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidDateRange = &Exception{
	Message:    "end date must not be before start date",
	StatusCode: http.StatusBadRequest,
}

var ErrTitleRequired = &Exception{
	Message:    "title is required",
	StatusCode: http.StatusBadRequest,
}

var ErrUnknownMembers = &Exception{
	Message:    "one or more users do not exist",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidDrawing = &Exception{
	Message:    "drawing data must be a JSON object",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidLimit = &Exception{
	Message:    "limit must be positive",
	StatusCode: http.StatusBadRequest,
}

var ErrUsernameRequired = &Exception{
	Message:    "username is required",
	StatusCode: http.StatusBadRequest,
}

var ErrMessageRequired = &Exception{
	Message:    "message is required",
	StatusCode: http.StatusBadRequest,
}

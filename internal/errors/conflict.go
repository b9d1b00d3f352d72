package errors

import "net/http"

var ErrProfileExists = &Exception{
	Message:    "user already has a profile",
	StatusCode: http.StatusConflict,
}

var ErrUsernameTaken = &Exception{
	Message:    "username already taken",
	StatusCode: http.StatusConflict,
}

// ErrStatusConflict means the project status changed between read and write.
var ErrStatusConflict = &Exception{
	Message:    "project status was changed concurrently",
	StatusCode: http.StatusConflict,
}

var ErrRoomTaken = &Exception{
	Message:    "room id is already used by another project",
	StatusCode: http.StatusConflict,
}

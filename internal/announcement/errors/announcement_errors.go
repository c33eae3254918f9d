package announcementerrors

import (
	"net/http"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
)

var (
	ErrAnnouncementNotFound = apperror.New(
		apperror.CodeNotFound,
		"Announcement not found",
		http.StatusNotFound,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid announcement id",
		http.StatusBadRequest,
	)
)

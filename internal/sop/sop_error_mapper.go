package sop

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
)

func mapRepositoryError(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}
	return apperror.FromStore(err, notFound)
}

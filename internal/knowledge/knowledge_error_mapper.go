package knowledge

import (
	knowledgeerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/knowledge/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	return apperror.FromStore(err, knowledgeerrors.ErrKnowledgeNotFound)
}

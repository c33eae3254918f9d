package agent

import (
	"errors"
	"strings"

	agenterrors "github.com/ccparagoncorp/customercare-web-sub001/internal/agent/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_agent_email" {
		return agenterrors.ErrEmailTaken
	}
	if strings.Contains(strings.ToLower(err.Error()), "agents.email") {
		return agenterrors.ErrEmailTaken
	}

	return apperror.FromStore(err, notFound)
}
